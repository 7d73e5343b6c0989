// Package services builds the managed service definitions: one unit per
// backend, with explicit startup ordering, a uniform restart policy, and an
// assembled environment. The emitted set is consumed by an external
// supervisor; nothing here starts a process.
package services

// Service names.
const (
	ModelServe  = "modelserve"
	Postgres    = "postgres"
	VectorStore = "vectorstore"
	Assistant   = "assistant"
)

// RestartOnFailure is the restart policy of every managed service. Uniform
// by policy: the supervisor may restart any service independently, so no
// service gets per-unit discretion.
const RestartOnFailure = "on-failure"

// Environment variable names read by the application server. External code
// looks these up by exact key, so they are a stable contract.
const (
	EnvDatabaseHost      = "DATABASE_HOST"
	EnvDatabasePort      = "DATABASE_PORT"
	EnvDatabaseName      = "DATABASE_NAME"
	EnvDatabaseUser      = "DATABASE_USER"
	EnvModelServerURL    = "MODEL_SERVER_URL"
	EnvVectorStoreURL    = "VECTOR_STORE_URL"
	EnvChatModel         = "CHAT_MODEL"
	EnvCompletionModel   = "COMPLETION_MODEL"
	EnvEmbeddingModel    = "EMBEDDING_MODEL"
	EnvRerankModel       = "RERANK_MODEL"
	EnvSecretKey         = "SECRET_KEY"
	EnvDashboardPassword = "DASHBOARD_PASSWORD"
)

// Internal endpoints the services bind to and the application server dials.
const (
	modelServerURL = "http://127.0.0.1:11434"
	vectorStoreURL = "http://127.0.0.1:6333"
)

// EnvVar is a single (key, value) environment entry. Environment is ordered,
// so it is a slice of these rather than a map.
type EnvVar struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}

// Service is a single managed unit definition.
type Service struct {
	Name             string   `yaml:"name"`
	Description      string   `yaml:"description"`
	DependsOn        []string `yaml:"dependsOn,omitempty"`
	Wants            []string `yaml:"wants,omitempty"`
	ExecStart        string   `yaml:"execStart"`
	ExecStop         string   `yaml:"execStop,omitempty"`
	Restart          string   `yaml:"restart"`
	User             string   `yaml:"user,omitempty"`
	Group            string   `yaml:"group,omitempty"`
	WorkingDirectory string   `yaml:"workingDirectory,omitempty"`
	StateDirectory   string   `yaml:"stateDirectory,omitempty"`
	Environment      []EnvVar `yaml:"environment,omitempty"`
}

// knownUnits are supervisor-provided unit names that DependsOn/Wants may
// reference without a matching service definition.
var knownUnits = map[string]struct{}{
	"network-online.target": {},
}

// distroAccounts are OS accounts managed by the distribution rather than
// the principal provisioner.
var distroAccounts = map[string]struct{}{
	"postgres": {},
}
