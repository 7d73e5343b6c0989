package services

import (
	"context"

	"github.com/dataO1/ai-coding-assistant-sub001/internal/ctxlog"
	"github.com/dataO1/ai-coding-assistant-sub001/internal/features"
	"github.com/dataO1/ai-coding-assistant-sub001/internal/options"
	"github.com/dataO1/ai-coding-assistant-sub001/internal/principals"
)

// Build constructs the full managed service set from the validated options,
// the derived principals, and the resolved feature flags. The returned
// slice is in fixed declaration order. Every structural rule (unique names,
// resolvable references, acyclic ordering) is checked before returning.
func Build(ctx context.Context, opts *options.Set, prins []principals.Principal, flags []features.Flag) ([]Service, error) {
	logger := ctxlog.FromContext(ctx)

	svcs := []Service{
		modelServe(),
		postgres(),
		vectorStore(),
		assistant(opts),
	}

	if err := validate(svcs, prins); err != nil {
		return nil, err
	}

	logger.Debug("Service graph built.", "services", len(svcs))
	return svcs, nil
}

// modelServe is the local inference daemon. Its definition is
// option-independent: GPU state is carried exclusively by the feature
// entries, so toggling the gpu option leaves this service untouched and
// the daemon picks its backend from the provisioned hardware.
func modelServe() Service {
	return Service{
		Name:             ModelServe,
		Description:      "Model-serving daemon for local inference.",
		Wants:            []string{"network-online.target"},
		ExecStart:        "/usr/bin/modelserve --listen 127.0.0.1:11434",
		Restart:          RestartOnFailure,
		User:             "modelserve",
		Group:            "modelserve",
		WorkingDirectory: "/var/lib/modelserve",
		StateDirectory:   "modelserve",
		Environment: []EnvVar{
			{Key: "MODELSERVE_HOST", Value: "127.0.0.1:11434"},
			{Key: "MODELSERVE_MODELS", Value: "/var/lib/modelserve/models"},
		},
	}
}

// postgres is the relational store. It runs under the distribution-managed
// postgres account; it is declared here so the application server's
// dependency edge resolves against a real definition.
func postgres() Service {
	return Service{
		Name:           Postgres,
		Description:    "Relational store backing the application server.",
		ExecStart:      "/usr/bin/postgres -D /var/lib/postgres/data",
		Restart:        RestartOnFailure,
		User:           "postgres",
		Group:          "postgres",
		StateDirectory: "postgres",
		Environment: []EnvVar{
			{Key: "PGDATA", Value: "/var/lib/postgres/data"},
		},
	}
}

// vectorStore is the retrieval index. It has no dependency on the other
// services and starts independently.
func vectorStore() Service {
	return Service{
		Name:             VectorStore,
		Description:      "Vector store for retrieval and reranking.",
		ExecStart:        "/usr/bin/vectorstore --bind 127.0.0.1:6333",
		Restart:          RestartOnFailure,
		User:             "vectorstore",
		Group:            "vectorstore",
		WorkingDirectory: "/var/lib/vectorstore",
		StateDirectory:   "vectorstore",
		Environment: []EnvVar{
			{Key: "VECTORSTORE_BIND", Value: "127.0.0.1:6333"},
			{Key: "VECTORSTORE_STORAGE", Value: "/var/lib/vectorstore/storage"},
		},
	}
}

// assistant is the application server. Its environment is assembled from
// literal constants, option-derived values, and the secret value resolved
// during validation. The keys and their order are the external contract.
func assistant(opts *options.Set) Service {
	return Service{
		Name:             Assistant,
		Description:      "Application server for the coding assistant.",
		DependsOn:        []string{Postgres},
		Wants:            []string{ModelServe, VectorStore},
		ExecStart:        "/usr/bin/assistant-server",
		Restart:          RestartOnFailure,
		User:             "assistant",
		Group:            "assistant",
		WorkingDirectory: "/var/lib/assistant",
		StateDirectory:   "assistant",
		Environment: []EnvVar{
			{Key: EnvDatabaseHost, Value: "localhost"},
			{Key: EnvDatabasePort, Value: "5432"},
			{Key: EnvDatabaseName, Value: "assistant"},
			{Key: EnvDatabaseUser, Value: "assistant"},
			{Key: EnvModelServerURL, Value: modelServerURL},
			{Key: EnvVectorStoreURL, Value: vectorStoreURL},
			{Key: EnvChatModel, Value: opts.String(options.ChatModel)},
			{Key: EnvCompletionModel, Value: opts.String(options.CompletionModel)},
			{Key: EnvEmbeddingModel, Value: opts.String(options.EmbeddingModel)},
			{Key: EnvRerankModel, Value: opts.String(options.RerankModel)},
			{Key: EnvSecretKey, Value: opts.String(options.SecretKey)},
			{Key: EnvDashboardPassword, Value: opts.String(options.DashboardPassword)},
		},
	}
}
