// Package tools dispatches assistant function-tool calls to the file editing
// primitives in pkg/lineedit, validating their JSON arguments first.
package tools

import "context"

// Request carries a single assistant tool call.
type Request struct {
	// Name is the function tool being invoked.
	Name string
	// Arguments is the raw JSON argument payload from the tool call.
	Arguments string
	// WorkingDir resolves relative file paths. Empty means the process
	// working directory.
	WorkingDir string
}

// ObservationPayload mirrors the JSON payload forwarded back to the model
// after executing a tool.
type ObservationPayload struct {
	Stdout                string `json:"stdout,omitempty"`
	Stderr                string `json:"stderr,omitempty"`
	Details               string `json:"details,omitempty"`
	ExitCode              *int   `json:"exit_code,omitempty"`
	JSONParseError        bool   `json:"json_parse_error,omitempty"`
	SchemaValidationError bool   `json:"schema_validation_error,omitempty"`
}

// Handler executes a named tool against a request.
type Handler func(ctx context.Context, req Request) (ObservationPayload, error)

func succeedPayload(payload *ObservationPayload, stdout string) ObservationPayload {
	payload.Stdout = stdout
	zero := 0
	payload.ExitCode = &zero
	return *payload
}

func failPayload(payload *ObservationPayload, message string) ObservationPayload {
	payload.Stderr = message
	payload.Details = message
	one := 1
	payload.ExitCode = &one
	return *payload
}
