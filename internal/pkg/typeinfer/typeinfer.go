// Package typeinfer classifies decoded JSON values into semantic type tags
// for the API documentation generator.
package typeinfer

import (
	"fmt"
	"math"
	"strings"

	"github.com/umisama/go-regexpcache"
)

// Number of leading array elements sampled when inferring an element type.
const arraySampleSize = 3

// Infer returns the semantic type tag of a decoded JSON value.
// Strings are checked in a fixed order: date, datetime, url, plain string.
// The date pattern must be tested before the datetime prefix pattern,
// otherwise a malformed date-like string could match the wrong tag.
func Infer(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64:
		// Decoded JSON numbers arrive as float64
		if v == math.Trunc(v) {
			return "integer"
		}
		return "number"
	case int:
		return "integer"
	case int64:
		return "integer"
	case string:
		return inferString(v)
	case []interface{}:
		return inferArray(v)
	case map[string]interface{}:
		return "object"
	default:
		return "unknown"
	}
}

func inferString(value string) string {
	if regexpcache.MustCompile(`^\d{4}-\d{2}-\d{2}$`).MatchString(value) {
		return "date"
	}
	if regexpcache.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}`).MatchString(value) {
		return "datetime"
	}
	if strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://") {
		return "url"
	}
	return "string"
}

func inferArray(value []interface{}) string {
	if len(value) == 0 {
		return "array"
	}

	sample := value
	if len(sample) > arraySampleSize {
		sample = sample[:arraySampleSize]
	}

	itemType := Infer(sample[0])
	for _, item := range sample[1:] {
		if Infer(item) != itemType {
			return "array"
		}
	}
	return fmt.Sprintf("array<%s>", itemType)
}
