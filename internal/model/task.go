package model

import (
	"strings"
	"time"
)

// FetchTask is the record of a single background fetch
type FetchTask struct {
	ID         string
	URL        string
	Status     TaskStatus
	Percent    float64   // 0 to 100
	LastError  string    // last error message if any
	OutputPath string    // path the engine writes to
	StartedAt  time.Time // when the engine was called
	FinishedAt time.Time // when the terminal outcome was produced
}

// Duration returns how long the task ran, or zero if it has not finished
func (ft *FetchTask) Duration() time.Duration {
	if ft.StartedAt.IsZero() || ft.FinishedAt.IsZero() {
		return 0
	}
	return ft.FinishedAt.Sub(ft.StartedAt)
}

// GetDisplayName returns the file name of OutputPath, or the URL when unknown
func (ft *FetchTask) GetDisplayName() string {
	if ft.OutputPath != "" && !strings.Contains(ft.OutputPath, ExtensionTemplate) {
		// Support both / and \ separators
		parts := strings.FieldsFunc(ft.OutputPath, func(r rune) bool {
			return r == '/' || r == '\\'
		})
		if len(parts) > 0 {
			return parts[len(parts)-1]
		}
	}
	return ft.URL
}
