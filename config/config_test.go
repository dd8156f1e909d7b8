package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `planner:
  daily_capacity_minutes: 240
  day_start_hour: 8
metrics:
  prometheus_enabled: true
  prometheus_port: ":9091"
api:
  addr: ":8088"
  token: "secret"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	checks := []struct {
		name string
		got  any
		want any
	}{
		{"daily_capacity_minutes", cfg.Planner.DailyCapacityMinutes, 240},
		{"day_start_hour", cfg.Planner.DayStartHour, 8},
		{"max_weekdays default", cfg.Planner.MaxWeekdays, 60},
		{"lookahead_days default", cfg.Planner.LookaheadDays, 90},
		{"prometheus_enabled", cfg.Metrics.PrometheusEnabled, true},
		{"prometheus_port", cfg.Metrics.PrometheusPort, ":9091"},
		{"api.addr", cfg.API.Addr, ":8088"},
		{"api.token", cfg.API.Token, "secret"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s: expected %v got %v", c.name, c.want, c.got)
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.Planner.DailyCapacityMinutes != 300 || cfg.Planner.DayStartHour != 16 {
		t.Fatalf("bad planner defaults %+v", cfg.Planner)
	}
	if cfg.API.Addr != ":8080" || cfg.Metrics.PrometheusPort != ":9090" {
		t.Fatalf("bad defaults %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load("missing.yaml"); err == nil {
		t.Fatalf("expected error for missing file")
	}
	path := filepath.Join(t.TempDir(), "config.txt")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
}

func TestLoadInvalidPlanner(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "planner:\n  daily_capacity_minutes: -10\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected validation error")
	}
}
