// Package llm provides the bounded LLM boundary used by the session
// planner: a provider abstraction with structured (JSON-schema) output,
// bounded retry, a primary/fallback model pair, and request event logging.
package llm

import (
	"context"
	"encoding/json"
)

// Provider is the core abstraction for LLM interaction.
type Provider interface {
	// Generate sends a prompt to the LLM and returns structured output.
	// When the request carries a Schema, the provider uses its native
	// constrained-JSON mechanism and the returned Content is the
	// schema-validated JSON.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured with.
	ModelID() string
}

// Request describes what to send to the LLM. Planning requests are
// single-turn: one user message carrying the reduced payload.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation. The planner sends exactly one
	// user message.
	Messages []Message

	// Schema, when set, is the JSON Schema the response must conform to.
	Schema *Schema

	// MaxTokens bounds the response size.
	MaxTokens int

	// Temperature in [0,1]; zero means deterministic.
	Temperature float64
}

// Message is a single conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema defines the JSON structure expected from the LLM.
type Schema struct {
	// Name identifies the schema (tool name for Anthropic, schema name
	// for OpenAI). Kebab-case.
	Name string

	// Description guides generation.
	Description string

	// Definition is the JSON Schema definition.
	Definition map[string]any
}

// Response holds the LLM's output.
type Response struct {
	// Content is the generated output; schema-validated JSON when the
	// request carried a Schema.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string
}

// Usage tracks token consumption for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
