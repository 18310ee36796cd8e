package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedactMapKeys(t *testing.T) {
	in := map[string]any{
		"authorization": "Bearer abc",
		"api_key":       "k-123",
		"database_id":   "db-1",
		"nested": map[string]any{
			"password": "hunter2",
			"count":    3,
		},
	}

	out := Redact(in).(map[string]any)

	assert.Equal(t, "***", out["authorization"])
	assert.Equal(t, "***", out["api_key"])
	assert.Equal(t, "db-1", out["database_id"])

	nested := out["nested"].(map[string]any)
	assert.Equal(t, "***", nested["password"])
	assert.Equal(t, 3, nested["count"])
}

func TestRedactStringContent(t *testing.T) {
	assert.Equal(t, "***", Redact("my secret value"))
	assert.Equal(t, "***", Redact("Token: xyz"))
	assert.Equal(t, "plain value", Redact("plain value"))
}

func TestRedactSlices(t *testing.T) {
	out := Redact([]any{"ok", "the password is 42", 7}).([]any)
	assert.Equal(t, []any{"ok", "***", 7}, out)
}

func TestRedactNonContainerPassthrough(t *testing.T) {
	assert.Equal(t, 42, Redact(42))
	assert.Equal(t, true, Redact(true))
	assert.Nil(t, Redact(nil))
}

func TestRedactFields(t *testing.T) {
	out := RedactFields(map[string]any{
		"token":  "t-1",
		"status": "ok",
	})
	assert.Equal(t, map[string]any{"token": "***", "status": "ok"}, out)
}
