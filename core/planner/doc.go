package planner

// Package planner turns a flat list of preventive-maintenance tasks into a
// dated, timed work schedule. Tasks are ordered by system, recurrence
// interval and size, candidate weekdays are enumerated over a bounded
// lookahead, and work is packed greedily under a fixed daily time budget.
// Planning is a pure function of its inputs: no state survives a call and
// concurrent callers need no coordination.
