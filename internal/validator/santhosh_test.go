package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchemaID = "https://stagefmt.example.com/test.schema.json"

const testSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "properties": {
    "lineLength": {"type": "integer", "minimum": 1},
    "extensions": {"type": "array", "items": {"type": "string"}}
  },
  "additionalProperties": false
}`

func TestNewSanthoshCompiler(t *testing.T) {
	t.Parallel()
	assert.NotNil(t, NewSanthoshCompiler())
}

func TestSanthoshCompiler_Compile(t *testing.T) {
	t.Parallel()

	t.Run("successful compile", func(t *testing.T) {
		t.Parallel()
		c := NewSanthoshCompiler()
		require.NoError(t, c.AddSchema(testSchemaID, map[string]interface{}{"type": "object"}))
		v, err := c.Compile(testSchemaID)
		require.NoError(t, err)
		assert.NotNil(t, v)
	})

	t.Run("adding an id twice keeps the first schema", func(t *testing.T) {
		t.Parallel()
		c := NewSanthoshCompiler()
		require.NoError(t, c.AddSchema(testSchemaID, map[string]interface{}{"type": "object"}))
		require.NoError(t, c.AddSchema(testSchemaID, map[string]interface{}{"type": "string"}))
		v, err := c.Compile(testSchemaID)
		require.NoError(t, err)
		require.NoError(t, v.Validate(map[string]interface{}{}))
	})

	t.Run("compile missing schema", func(t *testing.T) {
		t.Parallel()
		c := NewSanthoshCompiler()
		v, err := c.Compile("https://stagefmt.example.com/missing.json")
		require.Error(t, err)
		assert.Nil(t, v)
	})

	t.Run("compile invalid schema", func(t *testing.T) {
		t.Parallel()
		c := NewSanthoshCompiler()
		require.NoError(t, c.AddSchema(testSchemaID, map[string]interface{}{"type": 12}))
		_, err := c.Compile(testSchemaID)
		require.Error(t, err)
	})
}

func TestCompileSchema(t *testing.T) {
	t.Parallel()

	t.Run("validates documents", func(t *testing.T) {
		t.Parallel()
		v, err := CompileSchema(NewSanthoshCompiler(), testSchemaID, []byte(testSchema))
		require.NoError(t, err)

		good, err := ParseJSON([]byte(`{"lineLength": 80, "extensions": [".py"]}`))
		require.NoError(t, err)
		require.NoError(t, v.Validate(good))

		bad, err := ParseJSON([]byte(`{"lineLength": 0}`))
		require.NoError(t, err)
		require.Error(t, v.Validate(bad))

		unknown, err := ParseJSON([]byte(`{"colour": "blue"}`))
		require.NoError(t, err)
		require.Error(t, v.Validate(unknown))
	})

	t.Run("invalid JSON", func(t *testing.T) {
		t.Parallel()
		_, err := CompileSchema(NewSanthoshCompiler(), testSchemaID, []byte(`{`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "is not valid JSON")
	})
}

func TestToJSONDocument(t *testing.T) {
	t.Parallel()

	v, err := CompileSchema(NewSanthoshCompiler(), testSchemaID, []byte(testSchema))
	require.NoError(t, err)

	t.Run("yaml style values validate", func(t *testing.T) {
		t.Parallel()
		doc, err := ToJSONDocument(map[string]interface{}{
			"lineLength": 100,
			"extensions": []interface{}{".py"},
		})
		require.NoError(t, err)
		require.NoError(t, v.Validate(doc))
	})

	t.Run("non JSON value", func(t *testing.T) {
		t.Parallel()
		_, err := ToJSONDocument(map[string]interface{}{"fn": func() {}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not representable as JSON")
	})
}
