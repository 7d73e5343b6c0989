package options

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

// Option declares a single configuration input: its name, cty type,
// default value, and a human-readable description.
type Option struct {
	Name        string
	Type        cty.Type
	Default     cty.Value
	Description string
}

// Option names. These are the stable external configuration surface.
const (
	GPU               = "gpu"
	DashboardPassword = "dashboard_password"
	SecretKey         = "secret_key"
	WorkspacePaths    = "workspace_paths"
	ChatModel         = "chat_model"
	CompletionModel   = "completion_model"
	EmbeddingModel    = "embedding_model"
	RerankModel       = "rerank_model"
)

// InsecureSecretKey is substituted when the secret_key option resolves to
// the empty string. It is identical across all deployments; validation
// raises a WeakSecretFallback warning whenever it is used so that operators
// notice weak-secret deployments.
const InsecureSecretKey = "stackc-insecure-default-secret"

// Schema returns the full option declaration set, in declaration order.
// The order is fixed so that every derivation downstream is deterministic.
func Schema() []Option {
	return []Option{
		{
			Name:        GPU,
			Type:        cty.Bool,
			Default:     cty.False,
			Description: "Enable GPU acceleration for the model server and the workspace VM runtime.",
		},
		{
			Name:        DashboardPassword,
			Type:        cty.String,
			Default:     cty.StringVal("admin"),
			Description: "Password for the assistant dashboard login.",
		},
		{
			Name:        SecretKey,
			Type:        cty.String,
			Default:     cty.StringVal(""),
			Description: "Session signing secret for the application server. Empty selects the documented insecure default.",
		},
		{
			Name:        WorkspacePaths,
			Type:        cty.List(cty.String),
			Default:     cty.ListValEmpty(cty.String),
			Description: "Host paths exposed read-only inside the workspace, in order.",
		},
		{
			Name:        ChatModel,
			Type:        cty.String,
			Default:     cty.StringVal("llama3:8b"),
			Description: "Model identifier used for chat completions.",
		},
		{
			Name:        CompletionModel,
			Type:        cty.String,
			Default:     cty.StringVal("codellama:7b-code"),
			Description: "Model identifier used for inline code completion.",
		},
		{
			Name:        EmbeddingModel,
			Type:        cty.String,
			Default:     cty.StringVal("nomic-embed-text"),
			Description: "Model identifier used for embedding generation.",
		},
		{
			Name:        RerankModel,
			Type:        cty.String,
			Default:     cty.StringVal("bge-reranker-base"),
			Description: "Model identifier used for retrieval reranking.",
		},
	}
}

// schemaByName indexes the declarations for lookup during validation.
// It also asserts the declaration invariant: every default must satisfy
// its declared type. A violation is a programmer error, so it panics.
func schemaByName() map[string]Option {
	decls := Schema()
	byName := make(map[string]Option, len(decls))
	for _, opt := range decls {
		if !opt.Default.Type().Equals(opt.Type) {
			panic(fmt.Sprintf("option %q: default of type %s does not satisfy declared type %s",
				opt.Name, opt.Default.Type().FriendlyName(), opt.Type.FriendlyName()))
		}
		byName[opt.Name] = opt
	}
	return byName
}
