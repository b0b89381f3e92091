package core

import (
	"errors"
	"time"

	"github.com/dietmarja/curricula/internal/catalog"
	"github.com/dietmarja/curricula/internal/contract"
	"github.com/dietmarja/curricula/internal/outwriter"
	"github.com/dietmarja/curricula/schema"
)

// ErrNoCatalogue is returned when neither a catalogue path nor a stored
// snapshot is available.
var ErrNoCatalogue = errors.New("no catalogue given and no stored snapshot available")

// GetSelectionResult runs a full selection against the configured catalogue
// and records the run in the store. This is the compute half of the 'select'
// command; MCP handlers call it directly.
func GetSelectionResult(cfg *contract.Config, mgr contract.StoreManager) (schema.SelectionResult, error) {
	modules, err := loadCatalogue(cfg, mgr)
	if err != nil {
		return schema.SelectionResult{}, err
	}

	var profile *schema.CompetencyProfile
	if cfg.ProfilePath != "" {
		profile, err = catalog.LoadProfileFile(cfg.ProfilePath)
		if err != nil {
			return schema.SelectionResult{}, err
		}
	}

	sel := newSelectorFromConfig(modules, cfg)
	result := sel.Select(Request{
		Role:       cfg.Role,
		Topic:      cfg.Topic,
		EQFLevel:   cfg.EQFLevel,
		TargetECTS: cfg.TargetECTS,
		Profile:    profile,
	})

	if store := mgr.GetCatalogStore(); store != nil {
		if err := store.RecordRun(time.Now(), cfg.Role, cfg.Topic, result.Metadata); err != nil {
			contract.LogWarn("Could not record selection run", err)
		}
	}
	return result, nil
}

// GetScoredModules ranks catalogue modules by relevance to the configured
// topic and role, for catalogue inspection.
func GetScoredModules(cfg *contract.Config, mgr contract.StoreManager) ([]schema.ScoredModule, error) {
	modules, err := loadCatalogue(cfg, mgr)
	if err != nil {
		return nil, err
	}

	scored := ScoreModules(modules, cfg.Topic, cfg.Role, JaccardSimilar)
	return RankModules(scored, cfg.ResultLimit), nil
}

// GetRequirementMatches resolves every competency requirement in the
// configured profile against the catalogue.
func GetRequirementMatches(cfg *contract.Config, mgr contract.StoreManager) ([]schema.RequirementMatch, error) {
	modules, err := loadCatalogue(cfg, mgr)
	if err != nil {
		return nil, err
	}

	profile, err := catalog.LoadProfileFile(cfg.ProfilePath)
	if err != nil {
		return nil, err
	}

	sel := newSelectorFromConfig(modules, cfg)
	return sel.MatchRequirements(profile, cfg.EQFLevel), nil
}

// ExecuteSelect runs a selection and writes the result in the configured
// output format. It serves as the main entry point for the 'select' command.
func ExecuteSelect(cfg *contract.Config, mgr contract.StoreManager) error {
	start := time.Now()
	result, err := GetSelectionResult(cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.WriteSelection(result, cfg, time.Since(start))
}

// ExecuteScore ranks and prints catalogue modules. It serves as the main
// entry point for the 'score' command.
func ExecuteScore(cfg *contract.Config, mgr contract.StoreManager) error {
	start := time.Now()
	ranked, err := GetScoredModules(cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.WriteScores(ranked, cfg, time.Since(start))
}

// ExecuteMatch resolves the profile requirements and prints the assignment.
// It serves as the main entry point for the 'match' command.
func ExecuteMatch(cfg *contract.Config, mgr contract.StoreManager) error {
	start := time.Now()
	matches, err := GetRequirementMatches(cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.WriteMatches(matches, cfg, time.Since(start))
}

// MatchRequirements resolves each requirement in the profile to at most one
// module, accumulating used IDs so no module is assigned twice.
func (s *Selector) MatchRequirements(profile *schema.CompetencyProfile, eqfLevel int) []schema.RequirementMatch {
	used := make(map[string]struct{})
	var matches []schema.RequirementMatch

	record := func(competency, requirement string) {
		m, ok := s.findBestModuleForRequirement(requirement, eqfLevel, used)
		match := schema.RequirementMatch{
			Competency:  competency,
			Requirement: requirement,
			Matched:     ok,
		}
		if ok {
			used[m.ID] = struct{}{}
			match.ModuleID = m.ID
			match.ModuleTitle = m.Title
			match.ECTS = m.ECTS
			match.EQFLevel = m.EQFLevel
		}
		matches = append(matches, match)
	}

	for _, comp := range profile.Competencies {
		for _, reqTopic := range comp.RequiredModuleTopics {
			record(comp.Name, reqTopic)
		}
	}
	for _, reqTopic := range profile.RequiredTopics {
		record("", reqTopic)
	}
	return matches
}

// loadCatalogue resolves the catalogue source: an explicit path wins and
// refreshes the stored snapshot; otherwise the stored snapshot serves as
// the source.
func loadCatalogue(cfg *contract.Config, mgr contract.StoreManager) ([]schema.Module, error) {
	store := mgr.GetCatalogStore()

	if cfg.CataloguePath != "" {
		modules, err := catalog.LoadFile(cfg.CataloguePath)
		if err != nil {
			return nil, err
		}
		if store != nil {
			if err := store.SaveModules(modules); err != nil {
				contract.LogWarn("Could not snapshot catalogue to store", err)
			}
		}
		return modules, nil
	}

	if store != nil {
		modules, err := store.LoadModules()
		if err != nil {
			return nil, err
		}
		if len(modules) > 0 {
			return modules, nil
		}
	}
	return nil, ErrNoCatalogue
}

// newSelectorFromConfig applies any custom weight overrides from the
// config file.
func newSelectorFromConfig(modules []schema.Module, cfg *contract.Config) *Selector {
	if cfg.CustomWeights != nil {
		return NewSelector(modules, WithWeights(cfg.CustomWeights))
	}
	return NewSelector(modules)
}
