package schema

// Custom string types for type safety.
type (
	// SelectionMode represents how the selector chose modules.
	SelectionMode string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for the catalogue store.
	DatabaseBackend string

	// WeightKey represents keys used in the combined relevance score.
	WeightKey string

	// CoverageBand represents a coarse topic coverage verdict.
	CoverageBand string
)

// All selection modes supported.
const (
	CompetencyDrivenMode SelectionMode = "competency_driven" // primary
	DirectTopicRoleMode  SelectionMode = "direct_topic_role" // fallback
)

// All output modes supported.
const (
	TableOut   OutputMode = "table" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All store backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// Weight keys used in the combined relevance score.
const (
	TopicWeight WeightKey = "topic" // topic relevance, 0-100
	RoleWeight  WeightKey = "role"  // role relevance
	EQFWeight   WeightKey = "eqf"   // EQF proximity, 0-100
)

// All coverage bands supported.
const (
	HighCoverage   CoverageBand = "high"   // average relevance above 50
	MediumCoverage CoverageBand = "medium" // average relevance above 30
	LowCoverage    CoverageBand = "low"
)

// Defaults applied by the catalogue loader and the selector.
const (
	DefaultECTS     = 5.0 // credit weight when a record has none
	DefaultEQFLevel = 6   // EQF level when a record has none
	MinEQFLevel     = 4
	MaxEQFLevel     = 8

	// EQFWindow is the compatibility window around the requested EQF level.
	// Modules outside the window are rejected by the matcher and backfill.
	EQFWindow = 1
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TableOut:   {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidStoreBackends lists all valid catalogue store backends.
var ValidStoreBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// Roles maps the short role codes used in catalogue role-relevance tables
// to their display names.
var Roles = map[string]string{
	"DSL": "Digital Sustainability Lead",
	"DSM": "Digital Sustainability Manager",
	"DSC": "Digital Sustainability Consultant",
	"SBA": "Sustainability Business Analyst",
	"SDD": "Sustainable Digital Designer",
	"SSD": "Sustainable Solution Designer",
	"DAN": "Data Analyst",
	"DSI": "Data Scientist",
	"DSE": "Data Engineer",
	"STS": "Sustainability Technical Specialist",
}

// DefaultSelectionWeights returns the default weight map for a selection
// mode. The splits are empirically chosen and tunable through the config
// file; they are not a fixed law of the scoring model.
func DefaultSelectionWeights(mode SelectionMode) map[WeightKey]float64 {
	switch mode {
	case DirectTopicRoleMode:
		return map[WeightKey]float64{
			TopicWeight: 0.4,
			RoleWeight:  0.4,
			EQFWeight:   0.2,
		}
	default: // CompetencyDrivenMode topic fill
		return map[WeightKey]float64{
			TopicWeight: 0.6,
			RoleWeight:  0.4,
		}
	}
}
