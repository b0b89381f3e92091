package schema

// RequirementMatch reports how one competency requirement resolved against
// the catalogue. Unmatched requirements carry empty module fields.
type RequirementMatch struct {
	Competency  string  `json:"competency,omitempty"`
	Requirement string  `json:"requirement"`
	Matched     bool    `json:"matched"`
	ModuleID    string  `json:"module_id,omitempty"`
	ModuleTitle string  `json:"module_title,omitempty"`
	ECTS        float64 `json:"ects,omitempty"`
	EQFLevel    int     `json:"eqf_level,omitempty"`
}
