package tools

import (
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"github.com/forgeline/fileedit/internal/core/schema"
)

var (
	applyDiffSchemaLoader   gojsonschema.JSONLoader
	applyDiffSchemaOnce     sync.Once
	rewriteFileSchemaLoader gojsonschema.JSONLoader
	rewriteFileSchemaOnce   sync.Once
)

type argumentValidationError struct {
	issues []string
}

func (e argumentValidationError) Error() string {
	if len(e.issues) == 0 {
		return "tool arguments failed schema validation"
	}
	return strings.Join(e.issues, "; ")
}

func validateApplyDiffArguments(raw string) error {
	applyDiffSchemaOnce.Do(func() {
		applyDiffSchemaLoader = gojsonschema.NewGoLoader(schema.ApplyDiffSchema())
	})
	return validateAgainstSchema(applyDiffSchemaLoader, raw)
}

func validateRewriteFileArguments(raw string) error {
	rewriteFileSchemaOnce.Do(func() {
		rewriteFileSchemaLoader = gojsonschema.NewGoLoader(schema.RewriteFileSchema())
	})
	return validateAgainstSchema(rewriteFileSchemaLoader, raw)
}

func validateAgainstSchema(loader gojsonschema.JSONLoader, raw string) error {
	result, err := gojsonschema.Validate(loader, gojsonschema.NewStringLoader(raw))
	if err != nil {
		return fmt.Errorf("tools: schema validation error: %w", err)
	}
	if result.Valid() {
		return nil
	}

	issues := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		issues = append(issues, desc.String())
	}
	return argumentValidationError{issues: issues}
}
