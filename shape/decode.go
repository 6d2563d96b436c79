package shape

import (
	narrow "github.com/reoring/narrow"
	js "github.com/reoring/narrow/jsonschema"
)

// Discriminator is the JSON/YAML property that carries a shape's Kind.
const Discriminator = "kind"

var union = func() *narrow.Union[Shape] {
	u := narrow.NewUnion[Shape](Discriminator)
	narrow.Register(u, string(KindSquare), func(v Square) Shape { return v })
	narrow.Register(u, string(KindRectangle), func(v Rectangle) Shape { return v })
	narrow.Register(u, string(KindCircle), func(v Circle) Shape { return v })
	return u
}()

// Decode parses a tagged JSON object such as {"kind":"circle","radius":2}.
func Decode(data []byte) (Shape, error) { return union.DecodeJSON(data) }

// DecodeYAML parses a tagged YAML document.
func DecodeYAML(data []byte) (Shape, error) { return union.DecodeYAML(data) }

// DecodeYAMLAll parses every document of a multi-document YAML stream.
func DecodeYAMLAll(data []byte) ([]Shape, error) { return union.DecodeYAMLStream(data) }

// Schema exports the JSON Schema (oneOf per kind) for Shape.
func Schema() (*js.Schema, error) { return union.JSONSchema() }
