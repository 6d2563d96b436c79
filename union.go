package narrow

import (
	"bytes"
	"errors"
	"io"
	"math"
	"reflect"
	"slices"
	"sort"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/reoring/narrow/i18n"
	js "github.com/reoring/narrow/jsonschema"
)

// Validator is implemented by union payloads that carry rules beyond field types.
type Validator interface {
	Validate() error
}

// Union decodes tagged JSON/YAML objects into a closed set of Go variants.
// The discriminator value picks the variant; everything else is the payload.
type Union[T any] struct {
	discriminator string
	order         []string
	variants      map[string]unionVariant[T]
}

type unionVariant[T any] struct {
	schema *js.Schema
	decode func(data []byte) (T, error)
}

// NewUnion creates an empty union keyed by the discriminator property.
func NewUnion[T any](discriminator string) *Union[T] {
	return &Union[T]{discriminator: discriminator, variants: map[string]unionVariant[T]{}}
}

// Register binds tag to payload type V. wrap lifts the decoded payload into the
// union type. Several tags may share one V. Registering a tag twice panics.
func Register[T any, V any](u *Union[T], tag string, wrap func(V) T) *Union[T] {
	if tag == "" {
		panic("narrow: empty union tag")
	}
	if _, dup := u.variants[tag]; dup {
		panic("narrow: union tag registered twice: " + tag)
	}
	schema := objectSchemaOf(reflect.TypeFor[V](), u.discriminator, tag)
	u.order = append(u.order, tag)
	u.variants[tag] = unionVariant[T]{
		schema: schema,
		decode: func(data []byte) (T, error) {
			var zero T
			var v V
			if err := json.Unmarshal(data, &v); err != nil {
				return zero, Issues{Issue{Path: "/", Code: CodeInvalidType, Message: i18n.T(CodeInvalidType, nil), Hint: "payload does not match '" + tag + "'", Cause: err}}
			}
			if vv, ok := any(&v).(Validator); ok {
				if err := vv.Validate(); err != nil {
					return zero, err
				}
			}
			return wrap(v), nil
		},
	}
	return u
}

// Discriminator returns the property name that selects the variant.
func (u *Union[T]) Discriminator() string { return u.discriminator }

// Tags returns the registered tags in registration order.
func (u *Union[T]) Tags() []string { return slices.Clone(u.order) }

// DecodeJSON decodes one tagged object.
func (u *Union[T]) DecodeJSON(data []byte) (T, error) {
	var zero T
	n, err := countTopLevelKey(data, u.discriminator)
	if err != nil {
		return zero, Issues{Issue{Path: "/", Code: CodeParseError, Message: i18n.T(CodeParseError, nil), Cause: err}}
	}
	if n > 1 {
		return zero, Issues{Issue{Path: "/" + u.discriminator, Code: CodeDuplicateKey, Message: i18n.T(CodeDuplicateKey, nil), Hint: "key '" + u.discriminator + "' duplicated"}}
	}
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return zero, Issues{Issue{Path: "/", Code: CodeParseError, Message: i18n.T(CodeParseError, nil), Cause: err}}
	}
	m, ok := raw.(map[string]any)
	if !ok {
		return zero, Issues{Issue{Path: "/", Code: CodeInvalidType, Message: i18n.T(CodeInvalidType, nil), Hint: "expected object"}}
	}
	tag, _ := m[u.discriminator].(string)
	if tag == "" {
		return zero, Issues{Issue{Path: "/" + u.discriminator, Code: CodeDiscriminatorMissing, Message: i18n.T(CodeDiscriminatorMissing, nil), Hint: "discriminator missing"}}
	}
	v, ok := u.variants[tag]
	if !ok {
		return zero, Issues{Issue{Path: "/" + u.discriminator, Code: CodeDiscriminatorUnknown, Message: i18n.T(CodeDiscriminatorUnknown, map[string]string{"tag": tag}), Hint: "unknown variant: '" + tag + "'", Params: map[string]any{"tag": tag}}}
	}
	if iss := checkFields(v.schema, m); len(iss) > 0 {
		return zero, iss
	}
	return v.decode(data)
}

// DecodeYAML decodes one tagged YAML document by normalizing it to JSON first.
func (u *Union[T]) DecodeYAML(data []byte) (T, error) {
	var zero T
	var node any
	if err := yaml.Unmarshal(data, &node); err != nil {
		return zero, Issues{Issue{Path: "/", Code: CodeParseError, Message: i18n.T(CodeParseError, nil), Cause: err}}
	}
	b, err := json.Marshal(yamlNormalizeValue(node))
	if err != nil {
		return zero, Issues{Issue{Path: "/", Code: CodeParseError, Message: i18n.T(CodeParseError, nil), Cause: err}}
	}
	return u.DecodeJSON(b)
}

// DecodeYAMLStream decodes every document of a multi-document YAML stream.
// Decoding stops at the first failing document.
func (u *Union[T]) DecodeYAMLStream(data []byte) ([]T, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var out []T
	for {
		var node any
		if err := dec.Decode(&node); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, Issues{Issue{Path: "/", Code: CodeParseError, Message: i18n.T(CodeParseError, nil), Cause: err}}
		}
		if node == nil {
			continue
		}
		b, err := json.Marshal(yamlNormalizeValue(node))
		if err != nil {
			return nil, Issues{Issue{Path: "/", Code: CodeParseError, Message: i18n.T(CodeParseError, nil), Cause: err}}
		}
		v, err := u.DecodeJSON(b)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// JSONSchema exports a oneOf over the variants in registration order.
func (u *Union[T]) JSONSchema() (*js.Schema, error) {
	out := &js.Schema{}
	out.OneOf = make([]*js.Schema, 0, len(u.order))
	for _, tag := range u.order {
		out.OneOf = append(out.OneOf, u.variants[tag].schema)
	}
	return out, nil
}

// checkFields enforces required/type/minimum from the variant schema before the
// typed unmarshal so failures carry the offending path.
func checkFields(s *js.Schema, m map[string]any) Issues {
	var iss Issues
	for _, key := range s.Required {
		val, ok := m[key]
		if !ok {
			iss = AppendIssues(iss, Issue{Path: "/" + key, Code: CodeRequired, Message: i18n.T(CodeRequired, nil)})
			continue
		}
		if val == nil {
			hint := "got null"
			if prop := s.Properties[key]; prop != nil && prop.Type != "" {
				hint = "expected " + prop.Type + ", got null"
			}
			iss = AppendIssues(iss, Issue{Path: "/" + key, Code: CodeInvalidType, Message: i18n.T(CodeInvalidType, nil), Hint: hint})
		}
	}
	keys := make([]string, 0, len(s.Properties))
	for k := range s.Properties {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, key := range keys {
		prop := s.Properties[key]
		val, ok := m[key]
		if !ok || val == nil {
			continue
		}
		if !matchesType(prop.Type, val) {
			iss = AppendIssues(iss, Issue{Path: "/" + key, Code: CodeInvalidType, Message: i18n.T(CodeInvalidType, nil), Hint: "expected " + prop.Type})
			continue
		}
		if prop.Minimum != nil {
			if f, ok := val.(float64); ok && f < *prop.Minimum {
				iss = AppendIssues(iss, Issue{Path: "/" + key, Code: CodeTooSmall, Message: i18n.T(CodeTooSmall, nil), Params: map[string]any{"min": *prop.Minimum, "got": f}})
			}
		}
	}
	return iss
}

func matchesType(want string, v any) bool {
	switch want {
	case "string":
		_, ok := v.(string)
		return ok
	case "boolean":
		_, ok := v.(bool)
		return ok
	case "number":
		_, ok := v.(float64)
		return ok
	case "integer":
		f, ok := v.(float64)
		return ok && f == math.Trunc(f)
	case "array":
		_, ok := v.([]any)
		return ok
	case "object":
		_, ok := v.(map[string]any)
		return ok
	}
	return true
}

// countTopLevelKey counts how often key appears as a property of the root object.
// A non-object root yields 0 so the caller can report the type.
func countTopLevelKey(data []byte, key string) (int, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	depth := 0
	rootObject := false
	expectingKey := false
	count := 0
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return count, nil
		}
		if err != nil {
			return count, err
		}
		switch v := tok.(type) {
		case json.Delim:
			switch v {
			case '{', '[':
				depth++
				if depth == 1 {
					rootObject = v == '{'
				}
				expectingKey = rootObject && depth == 1
			case '}', ']':
				depth--
				expectingKey = rootObject && depth == 1
			}
		case string:
			if depth == 1 && rootObject && expectingKey {
				if v == key {
					count++
				}
				expectingKey = false
				continue
			}
			if depth == 1 && rootObject {
				expectingKey = true
			}
		default:
			if depth == 1 && rootObject {
				expectingKey = true
			}
		}
	}
}

// yamlNormalizeValue converts YAML-decoded values (which may contain map[any]any)
// into JSON-like values recursively.
func yamlNormalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = yamlNormalizeValue(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			if ks, ok := k.(string); ok {
				out[ks] = yamlNormalizeValue(vv)
			}
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = yamlNormalizeValue(t[i])
		}
		return out
	default:
		return v
	}
}
