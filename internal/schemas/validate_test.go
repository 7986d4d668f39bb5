package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["name", "skills"],
  "properties": {
    "name": {"type": "string", "minLength": 1},
    "skills": {"type": "array", "items": {"type": "string"}, "minItems": 1}
  }
}`

func TestValidateBytes(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr bool
	}{
		{"valid document", `{"name": "Animator", "skills": ["Rigging"]}`, false},
		{"empty skills", `{"name": "Animator", "skills": []}`, true},
		{"wrong type", `{"name": 7, "skills": ["Rigging"]}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBytes("test", []byte(testSchema), []byte(tt.doc))
			if tt.wantErr {
				var ve *ValidationError
				require.ErrorAs(t, err, &ve)
				assert.NotEmpty(t, ve.Errors)
				assert.Contains(t, err.Error(), "validation failed")
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateBytes_BadSchema(t *testing.T) {
	err := ValidateBytes("broken", []byte(`{not json`), []byte(`{}`))
	require.Error(t, err)

	var loadErr *SchemaLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "broken", loadErr.Path)
	assert.NotNil(t, loadErr.Unwrap())
}
