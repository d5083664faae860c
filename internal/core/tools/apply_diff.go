package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/forgeline/fileedit/internal/core/schema"
	"github.com/forgeline/fileedit/pkg/lineedit"
)

type applyDiffArgs struct {
	Path       string               `json:"path"`
	Operations []lineedit.Operation `json:"operations"`
}

func newApplyDiffTool(logger Logger) Handler {
	return func(ctx context.Context, req Request) (ObservationPayload, error) {
		payload := ObservationPayload{}

		trimmed := strings.TrimSpace(req.Arguments)
		if trimmed == "" {
			payload.JSONParseError = true
			err := errors.New("apply_diff: empty tool arguments")
			return failPayload(&payload, err.Error()), err
		}

		if err := validateApplyDiffArguments(trimmed); err != nil {
			var argErr argumentValidationError
			if errors.As(err, &argErr) {
				payload.SchemaValidationError = true
				message := fmt.Sprintf("apply_diff: invalid arguments: %s", argErr.Error())
				logger.Warn(ctx, "apply_diff arguments rejected", Field("issues", argErr.Error()))
				return failPayload(&payload, message), err
			}
			return failPayload(&payload, err.Error()), err
		}

		var args applyDiffArgs
		if err := json.Unmarshal([]byte(trimmed), &args); err != nil {
			payload.JSONParseError = true
			message := fmt.Sprintf("apply_diff: decode arguments: %v", err)
			return failPayload(&payload, message), fmt.Errorf("apply_diff: decode arguments: %w", err)
		}

		editor, err := newEditor(req.WorkingDir)
		if err != nil {
			return failPayload(&payload, err.Error()), err
		}

		if err := editor.ApplyDiff(args.Path, args.Operations); err != nil {
			message := err.Error()
			var le *lineedit.Error
			if errors.As(err, &le) {
				message = lineedit.FormatError(le)
			}
			logger.Error(ctx, "apply_diff failed", err, Field("path", args.Path))
			return failPayload(&payload, message), err
		}

		logger.Info(ctx, "apply_diff succeeded",
			Field("path", args.Path),
			Field("operations", len(args.Operations)))
		stdout := fmt.Sprintf("Success. Applied %d operation(s) to %s.", len(args.Operations), args.Path)
		return succeedPayload(&payload, stdout), nil
	}
}

func newEditor(workingDir string) (*lineedit.Editor, error) {
	store, err := lineedit.NewOSStore(workingDir)
	if err != nil {
		return nil, err
	}
	return lineedit.NewEditor(store)
}

func registerDefaultTools(executor *Executor, logger Logger) error {
	if err := executor.Register(schema.ApplyDiffToolName, newApplyDiffTool(logger)); err != nil {
		return err
	}
	return executor.Register(schema.RewriteFileToolName, newRewriteFileTool(logger))
}
