package types

import "time"

// Alert is the payload dispatched to alert sinks when an import run
// ends in Failure or Fault.
type Alert struct {
	AlertID   string                 `json:"alertId,omitempty"`
	Level     AlertLevel             `json:"level"`
	RunID     string                 `json:"runId,omitempty"`
	BoardID   string                 `json:"boardId,omitempty"`
	ItemID    string                 `json:"itemId,omitempty"`
	Message   string                 `json:"message"`
	Details   map[string]interface{} `json:"details,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}
