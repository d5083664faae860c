// Package schema defines the function tools the assistant may call and the
// JSON schemas their arguments must satisfy.
package schema

const (
	// ApplyDiffToolName is the function tool that edits a file with an ordered
	// list of diff operations.
	ApplyDiffToolName = "apply_diff"
	// RewriteFileToolName is the function tool that replaces a file's content
	// wholesale.
	RewriteFileToolName = "rewrite_file"
)

// ToolDefinition describes a function tool advertised to the model.
type ToolDefinition struct {
	Name        string
	Description string
	Parameters  map[string]any
}

// Definitions returns every file tool exposed to the assistant.
func Definitions() []ToolDefinition {
	return []ToolDefinition{ApplyDiffDefinition(), RewriteFileDefinition()}
}

// ApplyDiffDefinition describes the apply_diff tool.
func ApplyDiffDefinition() ToolDefinition {
	return ToolDefinition{
		Name: ApplyDiffToolName,
		Description: "Apply an ordered list of edit operations to an existing text file. " +
			"Operations are applied strictly in order; line numbers refer to the file state " +
			"after all prior operations in the same call. The call fails on the first invalid " +
			"operation and the file is left untouched.",
		Parameters: ApplyDiffSchema(),
	}
}

// RewriteFileDefinition describes the rewrite_file tool.
func RewriteFileDefinition() ToolDefinition {
	return ToolDefinition{
		Name: RewriteFileToolName,
		Description: "Overwrite (or create) a text file with the provided content, " +
			"creating parent directories as needed.",
		Parameters: RewriteFileSchema(),
	}
}

// ApplyDiffSchema returns the JSON schema for apply_diff arguments.
func ApplyDiffSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"required":             []any{"path", "operations"},
		"properties": map[string]any{
			"path": map[string]any{
				"type":        "string",
				"minLength":   1,
				"description": "Path of the file to edit, relative to the working directory.",
			},
			"operations": map[string]any{
				"type":        "array",
				"description": "Edit operations, applied strictly in order.",
				"items":       map[string]any{"oneOf": operationVariants()},
			},
		},
	}
}

// RewriteFileSchema returns the JSON schema for rewrite_file arguments.
func RewriteFileSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"required":             []any{"path", "content"},
		"properties": map[string]any{
			"path": map[string]any{
				"type":        "string",
				"minLength":   1,
				"description": "Path of the file to overwrite or create.",
			},
			"content": map[string]any{
				"type":        "string",
				"description": "Full replacement content for the file.",
			},
		},
	}
}

func operationVariants() []any {
	occurrence := map[string]any{
		"type":        "integer",
		"minimum":     1,
		"description": "1-indexed occurrence among all non-overlapping matches, scanning top to bottom. Defaults to 1.",
	}
	lines := map[string]any{
		"type":        "array",
		"items":       map[string]any{"type": "string"},
		"description": "Lines to insert, without trailing newlines.",
	}

	return []any{
		operationVariant("insert_block",
			"Insert a block of lines after a 0-indexed position; 0 prepends, the current line count appends.",
			[]any{"lineNumber", "lines"},
			map[string]any{
				"lineNumber": map[string]any{"type": "integer", "minimum": 0},
				"lines":      lines,
			}),
		operationVariant("delete_range",
			"Delete an inclusive 1-indexed line range.",
			[]any{"startLine", "endLine"},
			map[string]any{
				"startLine": map[string]any{"type": "integer", "minimum": 1},
				"endLine":   map[string]any{"type": "integer", "minimum": 1},
			}),
		operationVariant("replace_range",
			"Replace an inclusive 1-indexed line range; the replacement may have a different length.",
			[]any{"startLine", "endLine", "lines"},
			map[string]any{
				"startLine": map[string]any{"type": "integer", "minimum": 1},
				"endLine":   map[string]any{"type": "integer", "minimum": 1},
				"lines":     lines,
			}),
		operationVariant("insert_after",
			"Insert a single line after the line containing searchContent as a substring.",
			[]any{"searchContent", "content"},
			map[string]any{
				"searchContent": map[string]any{"type": "string", "minLength": 1},
				"content":       map[string]any{"type": "string"},
				"occurrence":    occurrence,
			}),
		operationVariant("insert_before",
			"Insert a single line before the line containing searchContent as a substring.",
			[]any{"searchContent", "content"},
			map[string]any{
				"searchContent": map[string]any{"type": "string", "minLength": 1},
				"content":       map[string]any{"type": "string"},
				"occurrence":    occurrence,
			}),
		operationVariant("replace_content",
			"Replace an exact, possibly multi-line run of lines. Every line must match exactly, including whitespace.",
			[]any{"oldContent", "newContent"},
			map[string]any{
				"oldContent": map[string]any{"type": "string", "minLength": 1},
				"newContent": map[string]any{"type": "string"},
				"occurrence": occurrence,
			}),
		operationVariant("delete_content",
			"Delete an exact, possibly multi-line run of lines.",
			[]any{"content"},
			map[string]any{
				"content":    map[string]any{"type": "string", "minLength": 1},
				"occurrence": occurrence,
			}),
	}
}

func operationVariant(typeName, description string, required []any, properties map[string]any) map[string]any {
	props := map[string]any{
		"type": map[string]any{"const": typeName},
	}
	for key, value := range properties {
		props[key] = value
	}
	return map[string]any{
		"type":                 "object",
		"description":          description,
		"additionalProperties": false,
		"required":             append([]any{"type"}, required...),
		"properties":           props,
	}
}
