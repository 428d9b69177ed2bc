package check

import (
	"fmt"
	"reflect"
	"strings"
)

// FormatSeq renders v as {v1,v2,...,vn}
func FormatSeq[T any](v []T) string {
	parts := make([]string, len(v))
	for i := range v {
		parts[i] = formatValue(v[i])
	}
	return "{" + strings.Join(parts, ",") + "}"
}

// formatValue renders slices and arrays in brace form and everything else
// with fmt's default verb.
func formatValue(v any) string {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		parts := make([]string, rv.Len())
		for i := range parts {
			parts[i] = formatValue(rv.Index(i).Interface())
		}
		return "{" + strings.Join(parts, ",") + "}"
	}
	return fmt.Sprint(v)
}
