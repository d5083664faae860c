package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

type rewriteFileArgs struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

func newRewriteFileTool(logger Logger) Handler {
	return func(ctx context.Context, req Request) (ObservationPayload, error) {
		payload := ObservationPayload{}

		trimmed := strings.TrimSpace(req.Arguments)
		if trimmed == "" {
			payload.JSONParseError = true
			err := errors.New("rewrite_file: empty tool arguments")
			return failPayload(&payload, err.Error()), err
		}

		if err := validateRewriteFileArguments(trimmed); err != nil {
			var argErr argumentValidationError
			if errors.As(err, &argErr) {
				payload.SchemaValidationError = true
				message := fmt.Sprintf("rewrite_file: invalid arguments: %s", argErr.Error())
				logger.Warn(ctx, "rewrite_file arguments rejected", Field("issues", argErr.Error()))
				return failPayload(&payload, message), err
			}
			return failPayload(&payload, err.Error()), err
		}

		var args rewriteFileArgs
		if err := json.Unmarshal([]byte(trimmed), &args); err != nil {
			payload.JSONParseError = true
			message := fmt.Sprintf("rewrite_file: decode arguments: %v", err)
			return failPayload(&payload, message), fmt.Errorf("rewrite_file: decode arguments: %w", err)
		}

		editor, err := newEditor(req.WorkingDir)
		if err != nil {
			return failPayload(&payload, err.Error()), err
		}

		if err := editor.RewriteFile(args.Path, args.Content); err != nil {
			logger.Error(ctx, "rewrite_file failed", err, Field("path", args.Path))
			return failPayload(&payload, err.Error()), err
		}

		logger.Info(ctx, "rewrite_file succeeded",
			Field("path", args.Path),
			Field("bytes", len(args.Content)))
		stdout := fmt.Sprintf("Success. Wrote %d byte(s) to %s.", len(args.Content), args.Path)
		return succeedPayload(&payload, stdout), nil
	}
}
