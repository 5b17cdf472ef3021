// Package state provides run history and baseline storage using SQLite.
package state

import (
	"fmt"
	"time"
)

// RunStatus describes the lifecycle of an analysis run.
type RunStatus string

// Run statuses.
const (
	RunStatusRunning   RunStatus = "running"
	RunStatusCompleted RunStatus = "completed"
	RunStatusFailed    RunStatus = "failed"
)

// Run is one recorded analysis run.
type Run struct {
	ID          string     `json:"id"`
	Status      RunStatus  `json:"status"`
	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Files       int        `json:"files"`
	Errors      int        `json:"errors"`
	Warnings    int        `json:"warnings"`
	Infos       int        `json:"infos"`
	Error       string     `json:"error,omitempty"`
}

// RunCounts carries the finding totals recorded when a run completes.
type RunCounts struct {
	Files    int
	Errors   int
	Warnings int
	Infos    int
}

// BaselineEntry identifies one accepted finding. Findings matching a
// baseline entry are suppressed on later runs.
type BaselineEntry struct {
	Path   string
	RuleID string
	Line   int
	Column int
}

// Key returns the lookup key for baseline matching.
func (e BaselineEntry) Key() string {
	return fmt.Sprintf("%s|%s|%d|%d", e.Path, e.RuleID, e.Line, e.Column)
}
