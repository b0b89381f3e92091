// Package catalog loads module catalogues and normalizes them into the
// strict schema.Module record type. Downstream components never see raw
// maps; every optional field is defaulted here and nowhere else.
package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/dietmarja/curricula/internal/contract"
	"github.com/dietmarja/curricula/schema"
)

// LoadError is the only fatal loading failure: the source is unreadable or
// is not valid structured data. Per-record problems are logged skips, never
// errors.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("cannot load catalogue from %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// LoadFile reads and normalizes a catalogue from a JSON file.
func LoadFile(path string) ([]schema.Module, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	defer func() { _ = f.Close() }()
	return Load(f, path)
}

// Load reads and normalizes a catalogue from a reader. The source string
// appears in error messages only.
func Load(r io.Reader, source string) ([]schema.Module, error) {
	var raw any
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, &LoadError{Source: source, Err: err}
	}
	return Normalize(raw, source)
}

// Normalize accepts the two catalogue shapes in the wild - a list of
// records, or a map of records (optionally wrapped in a "modules" or
// "data" envelope) - and produces the normalized module list. Map-shape
// sources are ordered by key so that catalogue order, and with it
// tie-breaking, is deterministic.
func Normalize(raw any, source string) ([]schema.Module, error) {
	var records []any

	switch v := raw.(type) {
	case []any:
		records = v
	case map[string]any:
		if inner, ok := v["modules"].([]any); ok {
			records = inner
		} else if inner, ok := v["data"].([]any); ok {
			records = inner
		} else {
			keys := make([]string, 0, len(v))
			for k := range v {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				records = append(records, v[k])
			}
		}
	default:
		return nil, &LoadError{Source: source, Err: fmt.Errorf("unsupported catalogue shape %T", raw)}
	}

	modules := make([]schema.Module, 0, len(records))
	for i, rec := range records {
		m, ok := normalizeRecord(rec, i)
		if !ok {
			continue
		}
		modules = append(modules, m)
	}
	return modules, nil
}

// normalizeRecord converts one raw record into a Module, filling defaults.
// Records that are not mappings or lack both title and name are skipped
// with a warning.
func normalizeRecord(rec any, index int) (schema.Module, bool) {
	fields, ok := rec.(map[string]any)
	if !ok {
		contract.LogWarn(fmt.Sprintf("Skipping record %d: not a mapping", index), nil)
		return schema.Module{}, false
	}

	title := getString(fields, "title")
	if title == "" {
		title = getString(fields, "name")
	}
	if title == "" {
		contract.LogWarn(fmt.Sprintf("Skipping record %d: missing 'title' or 'name' field", index), nil)
		return schema.Module{}, false
	}

	id := getString(fields, "id")
	if id == "" {
		id = fmt.Sprintf("M%d", index+1)
	}

	m := schema.Module{
		ID:                  id,
		Title:               title,
		Description:         getString(fields, "description"),
		ExtendedDescription: getString(fields, "extended_description"),
		Topics:              getStringSlice(fields["topics"]),
		Skills:              getStringSlice(fields["skills"]),
		ThematicArea:        getString(fields, "thematic_area"),
		ECTS:                getFloat(fields, "ects_points", getFloat(fields, "ects", schema.DefaultECTS)),
		EQFLevel:            getInt(fields, "eqf_level", schema.DefaultEQFLevel),
		RoleRelevance:       getRoleRelevance(fields["role_relevance"]),
		LearningOutcomes:    normalizeOutcomes(fields["learning_outcomes"]),
	}
	m.Keywords = normalizeKeywords(fields["keywords"], m.Skills)

	return m, true
}

// normalizeKeywords accepts a comma-separated string or a list, then unions
// in the skills list for better matching.
func normalizeKeywords(raw any, skills []string) []string {
	var keywords []string
	switch v := raw.(type) {
	case string:
		for _, part := range strings.Split(v, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				keywords = append(keywords, trimmed)
			}
		}
	default:
		keywords = getStringSlice(raw)
	}
	keywords = append(keywords, skills...)
	return keywords
}

// normalizeOutcomes accepts a keyed mapping, a bare string, or a list.
// Mappings become "<Key>: <value>" entries ordered by key; anything else
// that is not already a list becomes empty.
func normalizeOutcomes(raw any) []string {
	switch v := raw.(type) {
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		var outcomes []string
		for _, k := range keys {
			val := getAnyString(v[k])
			if val == "" {
				continue
			}
			outcomes = append(outcomes, fmt.Sprintf("%s: %s", titleCase(k), val))
		}
		return outcomes
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	default:
		return getStringSlice(raw)
	}
}

// getRoleRelevance converts a raw role table into the map consumed by the
// scorer. JSON numbers arrive as float64.
func getRoleRelevance(raw any) map[string]int {
	fields, ok := raw.(map[string]any)
	if !ok || len(fields) == 0 {
		return nil
	}
	out := make(map[string]int, len(fields))
	for role, v := range fields {
		if f, ok := v.(float64); ok {
			out[role] = int(f)
		}
	}
	return out
}

func getString(fields map[string]any, key string) string {
	s, _ := fields[key].(string)
	return s
}

func getAnyString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", x)
	}
}

func getStringSlice(raw any) []string {
	items, ok := raw.([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func getFloat(fields map[string]any, key string, fallback float64) float64 {
	if f, ok := fields[key].(float64); ok {
		return f
	}
	return fallback
}

func getInt(fields map[string]any, key string, fallback int) int {
	if f, ok := fields[key].(float64); ok {
		return int(f)
	}
	return fallback
}

// titleCase uppercases the first rune, matching the "<Key>: <value>"
// outcome format of upstream catalogue tooling.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
