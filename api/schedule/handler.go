package schedule

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/clinicops/pmplan/core/model"
	"github.com/clinicops/pmplan/core/planner"
)

// NewHandler returns an HTTP handler computing a schedule via
// GET /api/schedule?start=YYYY-MM-DD. The start parameter defaults to the
// current day. Requests must include an Authorization header with
// "Bearer <token>" when token is non-empty.
func NewHandler(tasks []model.Task, p planner.Planner, token string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if token != "" {
			auth := r.Header.Get("Authorization")
			if auth != "Bearer "+token {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
		}
		start := time.Now()
		if s := r.URL.Query().Get("start"); s != "" {
			t, err := time.ParseInLocation("2006-01-02", s, time.Local)
			if err != nil {
				http.Error(w, "invalid start date", http.StatusBadRequest)
				return
			}
			start = t
		}
		sched := p.Plan(tasks, start)
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(sched); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	})
}
