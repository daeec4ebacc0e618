package validation

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["name"],
	"properties": {
		"name": {"type": "string"},
		"count": {"type": "integer", "minimum": 0}
	}
}`

func writeTestSchema(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "test.schema.json")
	if err := os.WriteFile(path, []byte(testSchema), 0644); err != nil {
		t.Fatalf("Failed to write schema: %v", err)
	}
	return path
}

func TestSchemaValidator_ValidateBytes(t *testing.T) {
	v := NewSchemaValidator()
	schemaPath := writeTestSchema(t)

	t.Run("valid document", func(t *testing.T) {
		err := v.ValidateBytes([]byte(`{"name": "anvil", "count": 3}`), schemaPath)
		if err != nil {
			t.Errorf("Expected valid document to pass, got: %v", err)
		}
	})

	t.Run("missing required field", func(t *testing.T) {
		err := v.ValidateBytes([]byte(`{"count": 3}`), schemaPath)
		if err == nil {
			t.Fatal("Expected validation failure for missing name")
		}
		if !strings.Contains(err.Error(), "schema validation failed") {
			t.Errorf("Unexpected error message: %v", err)
		}
	})

	t.Run("wrong type", func(t *testing.T) {
		err := v.ValidateBytes([]byte(`{"name": "anvil", "count": -1}`), schemaPath)
		if err == nil {
			t.Fatal("Expected validation failure for negative count")
		}
	})

	t.Run("malformed JSON", func(t *testing.T) {
		err := v.ValidateBytes([]byte(`{not json}`), schemaPath)
		if err == nil {
			t.Fatal("Expected error for malformed JSON")
		}
	})

	t.Run("missing schema file", func(t *testing.T) {
		err := v.ValidateBytes([]byte(`{}`), "/nonexistent/schema.json")
		if err == nil {
			t.Fatal("Expected error for missing schema")
		}
	})
}

func TestSchemaValidator_CachesCompiledSchema(t *testing.T) {
	v := NewSchemaValidator()
	schemaPath := writeTestSchema(t)

	if err := v.ValidateBytes([]byte(`{"name": "a"}`), schemaPath); err != nil {
		t.Fatalf("First validation failed: %v", err)
	}

	// Removing the file must not matter once the schema is cached
	if err := os.Remove(schemaPath); err != nil {
		t.Fatalf("Failed to remove schema: %v", err)
	}

	if err := v.ValidateBytes([]byte(`{"name": "b"}`), schemaPath); err != nil {
		t.Errorf("Cached validation failed: %v", err)
	}
}
