package schema

import "time"

// RunRecord is one recorded selection run in the catalogue store.
type RunRecord struct {
	ID                    int64         `json:"id"`
	RunAt                 time.Time     `json:"run_at"`
	Role                  string        `json:"role"`
	Topic                 string        `json:"topic"`
	SelectionMode         SelectionMode `json:"selection_mode"`
	TotalModules          int           `json:"total_modules"`
	TotalECTS             float64       `json:"total_ects"`
	TargetECTS            float64       `json:"target_ects"`
	ECTSEfficiencyPercent float64       `json:"ects_efficiency_percent"`
	TopicCoveragePercent  float64       `json:"topic_coverage_percent"`
}

// StoreStatus describes the state of the catalogue store.
type StoreStatus struct {
	Backend     DatabaseBackend `json:"backend"`
	Location    string          `json:"location,omitempty"`
	ModuleCount int             `json:"module_count"`
	RunCount    int             `json:"run_count"`
	SizeBytes   int64           `json:"size_bytes,omitempty"` // sqlite only
}
