package log

import "strings"

const mask = "***"

// sensitiveKeys are matched case-insensitively against map keys and
// string contents before a value reaches a log record.
var sensitiveKeys = []string{
	"authorization",
	"auth",
	"token",
	"password",
	"secret",
	"api_key",
	"credential",
}

// Redact walks a value and masks anything that looks sensitive: map
// entries whose key matches the sensitive set, and strings whose content
// contains a sensitive key. Non-container, non-string values pass
// through unchanged.
func Redact(value any) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			if isSensitiveKey(k) {
				out[k] = mask
			} else {
				out[k] = Redact(item)
			}
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = Redact(item)
		}
		return out
	case string:
		lower := strings.ToLower(v)
		for _, key := range sensitiveKeys {
			if strings.Contains(lower, key) {
				return mask
			}
		}
		return v
	default:
		return value
	}
}

// RedactFields applies Redact to every value of a structured log field
// set.
func RedactFields(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		if isSensitiveKey(k) {
			out[k] = mask
		} else {
			out[k] = Redact(v)
		}
	}
	return out
}

func isSensitiveKey(key string) bool {
	lower := strings.ToLower(key)
	for _, k := range sensitiveKeys {
		if lower == k || strings.Contains(lower, k) {
			return true
		}
	}
	return false
}
