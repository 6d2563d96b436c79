package message

import (
	narrow "github.com/reoring/narrow"
	js "github.com/reoring/narrow/jsonschema"
)

var union = func() *narrow.Union[Message] {
	u := narrow.NewUnion[Message]("kind")
	narrow.Register(u, string(KindA), func(v A) Message { return v })
	narrow.Register(u, string(KindB), func(v BC) Message { return v })
	narrow.Register(u, string(KindC), func(v BC) Message { return v })
	narrow.Register(u, string(KindD), func(v D) Message { return v })
	return u
}()

// Decode parses a tagged JSON message such as {"kind":"B","y":1}.
func Decode(data []byte) (Message, error) { return union.DecodeJSON(data) }

// DecodeYAML parses a tagged YAML message.
func DecodeYAML(data []byte) (Message, error) { return union.DecodeYAML(data) }

// Schema exports the JSON Schema for Message.
func Schema() (*js.Schema, error) { return union.JSONSchema() }
