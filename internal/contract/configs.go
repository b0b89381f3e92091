package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dietmarja/curricula/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit = 25
	MaxResultLimit     = 1000
	DefaultPrecision   = 1
	DefaultTargetECTS  = 30.0
	DefaultTopic       = "Digital Sustainability"
)

// WeightsRaw holds custom weight overrides for a single selection mode.
// Float pointers distinguish "unset" from an explicit zero.
type WeightsRaw struct {
	Topic *float64 `mapstructure:"topic"`
	Role  *float64 `mapstructure:"role"`
	EQF   *float64 `mapstructure:"eqf"`
}

// WeightsRawInput holds all custom weight definitions from the config file.
type WeightsRawInput struct {
	CompetencyDriven *WeightsRaw `mapstructure:"competency_driven"`
	DirectTopicRole  *WeightsRaw `mapstructure:"direct_topic_role"`
}

// Config holds the runtime configuration for a curricula invocation.
// This struct remains the "final, validated" config.
type Config struct {
	CataloguePath string
	ProfilePath   string

	Role       string
	Topic      string
	EQFLevel   int
	TargetECTS float64

	ResultLimit int
	Precision   int
	Output      schema.OutputMode
	OutputFile  string
	Width       int // Terminal width override (0 = auto-detect)
	UseColors   bool

	StoreBackend   schema.DatabaseBackend
	StoreDBConnect string // Please use env var as this is plaintext

	// CustomWeights holds per-mode weight overrides from the config file.
	// Modes absent here keep schema.DefaultSelectionWeights.
	CustomWeights map[schema.SelectionMode]map[schema.WeightKey]float64
}

// Clone returns a deep copy of the config for per-request mutation.
func (c *Config) Clone() *Config {
	clone := *c
	if c.CustomWeights != nil {
		clone.CustomWeights = make(map[schema.SelectionMode]map[schema.WeightKey]float64, len(c.CustomWeights))
		for mode, w := range c.CustomWeights {
			inner := make(map[schema.WeightKey]float64, len(w))
			for k, v := range w {
				inner[k] = v
			}
			clone.CustomWeights[mode] = inner
		}
	}
	return &clone
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	CataloguePathStr string

	Role           string  `mapstructure:"role"`
	Topic          string  `mapstructure:"topic"`
	EQF            int     `mapstructure:"eqf"`
	ECTS           float64 `mapstructure:"ects"`
	Profile        string  `mapstructure:"profile"`
	Limit          int     `mapstructure:"limit"`
	Precision      int     `mapstructure:"precision"`
	Output         string  `mapstructure:"output"`
	OutputFile     string  `mapstructure:"output-file"`
	Width          int     `mapstructure:"width"`
	Color          string  `mapstructure:"color"`
	StoreBackend   string  `mapstructure:"store-backend"`
	StoreDBConnect string  `mapstructure:"store-db-connect"`

	Weights *WeightsRawInput `mapstructure:"weights"`
}

// ProcessAndValidate converts the raw input into a validated Config.
// It fills defaults, bounds-checks numeric inputs, and rejects values
// outside their enumerations.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	cataloguePath := input.CataloguePathStr
	if cataloguePath != "" {
		abs, err := filepath.Abs(cataloguePath)
		if err != nil {
			return fmt.Errorf("invalid catalogue path %q: %w", cataloguePath, err)
		}
		cataloguePath = abs
	}
	cfg.CataloguePath = cataloguePath
	cfg.ProfilePath = input.Profile

	cfg.Role = strings.ToUpper(strings.TrimSpace(input.Role))
	if cfg.Role != "" {
		if _, ok := schema.Roles[cfg.Role]; !ok {
			LogWarn(fmt.Sprintf("Unknown role code %q; role relevance will score 0", cfg.Role), nil)
		}
	}

	cfg.Topic = strings.TrimSpace(input.Topic)
	if cfg.Topic == "" {
		cfg.Topic = DefaultTopic
	}

	cfg.EQFLevel = input.EQF
	if cfg.EQFLevel == 0 {
		cfg.EQFLevel = schema.DefaultEQFLevel
	}
	if cfg.EQFLevel < schema.MinEQFLevel || cfg.EQFLevel > schema.MaxEQFLevel {
		return fmt.Errorf("EQF level must be between %d and %d, got %d", schema.MinEQFLevel, schema.MaxEQFLevel, cfg.EQFLevel)
	}

	cfg.TargetECTS = input.ECTS
	if cfg.TargetECTS == 0 {
		cfg.TargetECTS = DefaultTargetECTS
	}
	if cfg.TargetECTS < 0 {
		return fmt.Errorf("target ECTS must be positive, got %g", cfg.TargetECTS)
	}

	cfg.ResultLimit = input.Limit
	if cfg.ResultLimit <= 0 {
		cfg.ResultLimit = DefaultResultLimit
	}
	if cfg.ResultLimit > MaxResultLimit {
		return fmt.Errorf("limit cannot exceed %d", MaxResultLimit)
	}

	cfg.Precision = input.Precision
	if cfg.Precision < 1 {
		cfg.Precision = 1
	}
	if cfg.Precision > 2 {
		cfg.Precision = 2
	}

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if cfg.Output == "" {
		cfg.Output = schema.TableOut
	}
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output mode %q. Must be table, csv, json, or parquet", input.Output)
	}
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width
	cfg.UseColors = parseBoolish(input.Color, true)

	cfg.StoreBackend = schema.DatabaseBackend(strings.ToLower(input.StoreBackend))
	if cfg.StoreBackend == "" {
		cfg.StoreBackend = schema.SQLiteBackend
	}
	if _, ok := schema.ValidStoreBackends[cfg.StoreBackend]; !ok {
		return fmt.Errorf("invalid store backend %q. Must be sqlite, mysql, postgresql, or none", input.StoreBackend)
	}
	cfg.StoreDBConnect = input.StoreDBConnect
	if err := ValidateDatabaseConnectionString(cfg.StoreBackend, cfg.StoreDBConnect); err != nil {
		return err
	}

	weights, err := processWeights(input.Weights)
	if err != nil {
		return err
	}
	cfg.CustomWeights = weights

	return nil
}

// processWeights converts raw weight overrides into the per-mode maps the
// selector consumes, starting from the defaults so partial overrides work.
func processWeights(raw *WeightsRawInput) (map[schema.SelectionMode]map[schema.WeightKey]float64, error) {
	if raw == nil {
		return nil, nil
	}
	out := make(map[schema.SelectionMode]map[schema.WeightKey]float64)

	apply := func(mode schema.SelectionMode, w *WeightsRaw) error {
		if w == nil {
			return nil
		}
		merged := schema.DefaultSelectionWeights(mode)
		if w.Topic != nil {
			merged[schema.TopicWeight] = *w.Topic
		}
		if w.Role != nil {
			merged[schema.RoleWeight] = *w.Role
		}
		if w.EQF != nil {
			merged[schema.EQFWeight] = *w.EQF
		}
		for key, v := range merged {
			if v < 0 {
				return fmt.Errorf("weight %s.%s must not be negative", mode, key)
			}
		}
		out[mode] = merged
		return nil
	}

	if err := apply(schema.CompetencyDrivenMode, raw.CompetencyDriven); err != nil {
		return nil, err
	}
	if err := apply(schema.DirectTopicRoleMode, raw.DirectTopicRole); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}

// ValidateDatabaseConnectionString checks that server backends have a
// connection string. SQLite and none work without one.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.MySQLBackend, schema.PostgreSQLBackend:
		if strings.TrimSpace(connStr) == "" {
			return fmt.Errorf("store backend %s requires a connection string (set --store-db-connect or CURRICULA_STORE_DB_CONNECT)", backend)
		}
	}
	return nil
}

// parseBoolish interprets the yes/no style values accepted on color flags.
func parseBoolish(s string, fallback bool) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "true", "1", "on":
		return true
	case "no", "false", "0", "off":
		return false
	default:
		return fallback
	}
}

// GetDBFilePath returns the path to the SQLite DB file for the catalogue store.
func GetDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".curricula_store.db"
	}
	return filepath.Join(homeDir, ".curricula_store.db")
}
