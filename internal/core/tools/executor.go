package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Executor routes tool calls to registered handlers.
type Executor struct {
	handlers map[string]Handler
	logger   Logger
}

// NewExecutor builds an executor with the built-in file tools registered.
// A nil logger disables logging.
func NewExecutor(logger Logger) (*Executor, error) {
	if logger == nil {
		logger = &NoOpLogger{}
	}
	executor := &Executor{
		handlers: make(map[string]Handler),
		logger:   logger,
	}
	if err := registerDefaultTools(executor, logger); err != nil {
		return nil, err
	}
	return executor, nil
}

// Register adds (or overrides) a handler for the named tool.
func (e *Executor) Register(name string, handler Handler) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return errors.New("tools: empty tool name")
	}
	if handler == nil {
		return fmt.Errorf("tools: nil handler for %s", trimmed)
	}
	e.handlers[trimmed] = handler
	return nil
}

// Execute runs the named tool. Unknown tools produce a failure payload so the
// model receives feedback instead of a dropped call.
func (e *Executor) Execute(ctx context.Context, req Request) (ObservationPayload, error) {
	handler, ok := e.handlers[req.Name]
	if !ok {
		payload := ObservationPayload{}
		message := fmt.Sprintf("unknown tool %q", req.Name)
		e.logger.Warn(ctx, "tool call rejected", Field("tool", req.Name))
		return failPayload(&payload, message), fmt.Errorf("tools: %s", message)
	}
	return handler(ctx, req)
}
