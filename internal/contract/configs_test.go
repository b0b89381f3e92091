package contract

import (
	"testing"

	"github.com/dietmarja/curricula/schema"
	"github.com/stretchr/testify/assert"
)

// TestProcessAndValidateDefaults verifies defaults fill in for zero input.
func TestProcessAndValidateDefaults(t *testing.T) {
	cfg := &Config{}
	err := ProcessAndValidate(cfg, &ConfigRawInput{})
	assert.NoError(t, err)

	assert.Equal(t, DefaultTopic, cfg.Topic)
	assert.Equal(t, schema.DefaultEQFLevel, cfg.EQFLevel)
	assert.Equal(t, DefaultTargetECTS, cfg.TargetECTS)
	assert.Equal(t, DefaultResultLimit, cfg.ResultLimit)
	assert.Equal(t, 1, cfg.Precision)
	assert.Equal(t, schema.TableOut, cfg.Output)
	assert.Equal(t, schema.SQLiteBackend, cfg.StoreBackend)
	assert.True(t, cfg.UseColors, "Colors default to on")
	assert.Nil(t, cfg.CustomWeights)
}

// TestProcessAndValidateBounds verifies the rejection cases.
func TestProcessAndValidateBounds(t *testing.T) {
	tests := []struct {
		name  string
		input ConfigRawInput
	}{
		{name: "EQF too low", input: ConfigRawInput{EQF: 3}},
		{name: "EQF too high", input: ConfigRawInput{EQF: 9}},
		{name: "negative ECTS", input: ConfigRawInput{ECTS: -10}},
		{name: "limit over max", input: ConfigRawInput{Limit: MaxResultLimit + 1}},
		{name: "bad output mode", input: ConfigRawInput{Output: "xml"}},
		{name: "bad store backend", input: ConfigRawInput{StoreBackend: "oracle"}},
		{name: "mysql without connection string", input: ConfigRawInput{StoreBackend: "mysql"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ProcessAndValidate(&Config{}, &tt.input)
			assert.Error(t, err)
		})
	}
}

// TestProcessAndValidateNormalization verifies case and whitespace handling.
func TestProcessAndValidateNormalization(t *testing.T) {
	cfg := &Config{}
	err := ProcessAndValidate(cfg, &ConfigRawInput{
		Role:      " dan ",
		Topic:     "  Green Software  ",
		Output:    "JSON",
		Precision: 5,
		Color:     "no",
	})
	assert.NoError(t, err)

	assert.Equal(t, "DAN", cfg.Role, "Role codes are upper-cased")
	assert.Equal(t, "Green Software", cfg.Topic)
	assert.Equal(t, schema.JSONOut, cfg.Output, "Output mode is lower-cased")
	assert.Equal(t, 2, cfg.Precision, "Precision clamps to 2")
	assert.False(t, cfg.UseColors)
}

// TestProcessAndValidateCataloguePath verifies path resolution to absolute.
func TestProcessAndValidateCataloguePath(t *testing.T) {
	cfg := &Config{}
	err := ProcessAndValidate(cfg, &ConfigRawInput{CataloguePathStr: "catalogue.json"})
	assert.NoError(t, err)
	assert.NotEqual(t, "catalogue.json", cfg.CataloguePath)
	assert.Contains(t, cfg.CataloguePath, "catalogue.json")
}

// TestProcessWeights verifies partial weight overrides merge with defaults.
func TestProcessWeights(t *testing.T) {
	t.Run("nil input", func(t *testing.T) {
		got, err := processWeights(nil)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("partial override", func(t *testing.T) {
		topic := 0.7
		got, err := processWeights(&WeightsRawInput{
			CompetencyDriven: &WeightsRaw{Topic: &topic},
		})
		assert.NoError(t, err)
		assert.Len(t, got, 1)
		merged := got[schema.CompetencyDrivenMode]
		assert.Equal(t, 0.7, merged[schema.TopicWeight])
		assert.Equal(t, 0.4, merged[schema.RoleWeight], "Unset keys keep defaults")
	})

	t.Run("negative weight rejected", func(t *testing.T) {
		bad := -0.1
		_, err := processWeights(&WeightsRawInput{
			DirectTopicRole: &WeightsRaw{Role: &bad},
		})
		assert.Error(t, err)
	})

	t.Run("empty overrides collapse to nil", func(t *testing.T) {
		got, err := processWeights(&WeightsRawInput{})
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}

// TestValidateDatabaseConnectionString verifies per-backend requirements.
func TestValidateDatabaseConnectionString(t *testing.T) {
	assert.NoError(t, ValidateDatabaseConnectionString(schema.SQLiteBackend, ""))
	assert.NoError(t, ValidateDatabaseConnectionString(schema.NoneBackend, ""))
	assert.Error(t, ValidateDatabaseConnectionString(schema.MySQLBackend, ""))
	assert.Error(t, ValidateDatabaseConnectionString(schema.PostgreSQLBackend, "   "))
	assert.NoError(t, ValidateDatabaseConnectionString(schema.MySQLBackend, "user:pass@tcp(host:3306)/db"))
}

// TestParseBoolish verifies the yes/no style values and fallback.
func TestParseBoolish(t *testing.T) {
	for _, s := range []string{"yes", "true", "1", "on", "YES", " True "} {
		assert.True(t, parseBoolish(s, false), "parseBoolish(%q) should be true", s)
	}
	for _, s := range []string{"no", "false", "0", "off", "NO"} {
		assert.False(t, parseBoolish(s, true), "parseBoolish(%q) should be false", s)
	}
	assert.True(t, parseBoolish("garbage", true), "Unknown values keep the fallback")
	assert.False(t, parseBoolish("", false))
}

// TestConfigClone verifies the deep copy of custom weights.
func TestConfigClone(t *testing.T) {
	original := &Config{
		Topic: "Green Software",
		CustomWeights: map[schema.SelectionMode]map[schema.WeightKey]float64{
			schema.DirectTopicRoleMode: {schema.TopicWeight: 0.5},
		},
	}

	clone := original.Clone()
	clone.Topic = "Changed"
	clone.CustomWeights[schema.DirectTopicRoleMode][schema.TopicWeight] = 0.9

	assert.Equal(t, "Green Software", original.Topic)
	assert.Equal(t, 0.5, original.CustomWeights[schema.DirectTopicRoleMode][schema.TopicWeight],
		"Mutating the clone must not touch the original")
}
