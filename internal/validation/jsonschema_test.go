package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateDocument(t *testing.T) {
	schema := []byte(`{
		"type": "object",
		"required": ["genres"],
		"properties": {
			"genres": {"type": "array", "minItems": 1, "items": {"type": "string"}}
		}
	}`)
	assert.NoError(t, ValidateDocument(schema, map[string]any{"genres": []any{"RPG"}}))
	assert.Error(t, ValidateDocument(schema, map[string]any{"genres": []any{}}))
	assert.Error(t, ValidateDocument(schema, map[string]any{}))
	assert.Error(t, ValidateDocument(schema, map[string]any{"genres": []any{1}}))
}
