package narrow

import (
	"reflect"
	"strconv"
	"strings"

	js "github.com/reoring/narrow/jsonschema"
)

// ResolveStructKey applies the repository-wide rule to resolve a struct field's
// external key used by union payloads.
// Priority: json tag name > field name; "-" disables the field.
func ResolveStructKey(sf reflect.StructField) string {
	if jt := sf.Tag.Get("json"); jt != "" {
		if jt == "-" {
			return "-"
		}
		if i := strings.IndexByte(jt, ','); i >= 0 {
			if jt[:i] == "" {
				return sf.Name
			}
			return jt[:i]
		}
		return jt
	}
	return sf.Name
}

// fieldRule is the decoded form of a `narrow:"..."` tag.
type fieldRule struct {
	min    *float64
	format string
}

func parseFieldRule(sf reflect.StructField) fieldRule {
	var r fieldRule
	for _, p := range strings.Split(sf.Tag.Get("narrow"), ",") {
		p = strings.TrimSpace(p)
		switch {
		case strings.HasPrefix(p, "min="):
			if f, err := strconv.ParseFloat(strings.TrimPrefix(p, "min="), 64); err == nil {
				r.min = &f
			}
		case strings.HasPrefix(p, "format="):
			r.format = strings.TrimPrefix(p, "format=")
		}
	}
	return r
}

func isOptional(sf reflect.StructField) bool {
	if sf.Type.Kind() == reflect.Pointer {
		return true
	}
	return strings.Contains(sf.Tag.Get("json"), ",omitempty")
}

func typeName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Struct, reflect.Map:
		return "object"
	}
	return ""
}

// objectSchemaOf derives an object schema from the exported fields of t.
// The discriminator key is emitted as a const and never read from the struct.
func objectSchemaOf(t reflect.Type, discriminator, tag string) *js.Schema {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	out := &js.Schema{
		Type:       "object",
		Title:      tag,
		Properties: map[string]*js.Schema{discriminator: {Type: "string", Const: tag}},
		Required:   []string{discriminator},
	}
	if t.Kind() != reflect.Struct {
		return out
	}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		key := ResolveStructKey(sf)
		if key == "-" || key == discriminator {
			continue
		}
		rule := parseFieldRule(sf)
		out.Properties[key] = &js.Schema{Type: typeName(sf.Type), Minimum: rule.min, Format: rule.format}
		if !isOptional(sf) {
			out.Required = append(out.Required, key)
		}
	}
	return out
}
