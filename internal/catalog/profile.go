package catalog

import (
	"encoding/json"
	"os"
	"sort"

	"github.com/dietmarja/curricula/schema"
)

// legacyProfile is the educational-profile export shape, with competencies
// keyed by name under competency_module_mapping.
type legacyProfile struct {
	Mapping map[string]struct {
		RequiredModules  []string `json:"required_modules"`
		LearningOutcomes []string `json:"learning_outcomes"`
	} `json:"competency_module_mapping"`
	RequiredTopics []string `json:"required_topics"`
}

// LoadProfileFile reads a competency profile from a JSON file. Both the
// native shape (a competencies list) and the legacy educational-profile
// export shape are accepted. Unreadable or invalid sources are fatal
// LoadErrors, same as catalogue sources.
func LoadProfileFile(path string) (*schema.CompetencyProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}

	var native schema.CompetencyProfile
	if err := json.Unmarshal(data, &native); err == nil && len(native.Competencies) > 0 {
		return &native, nil
	}

	var legacy legacyProfile
	if err := json.Unmarshal(data, &legacy); err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}

	profile := &schema.CompetencyProfile{RequiredTopics: legacy.RequiredTopics}

	// Keyed mappings are ordered by competency name so requirement
	// resolution order, and with it module assignment, is deterministic.
	names := make([]string, 0, len(legacy.Mapping))
	for name := range legacy.Mapping {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		comp := legacy.Mapping[name]
		profile.Competencies = append(profile.Competencies, schema.CompetencyRequirement{
			Name:                 name,
			RequiredModuleTopics: comp.RequiredModules,
			LearningOutcomes:     comp.LearningOutcomes,
		})
	}
	return profile, nil
}
