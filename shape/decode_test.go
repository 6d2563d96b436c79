package shape_test

import (
	"testing"

	narrow "github.com/reoring/narrow"
	"github.com/reoring/narrow/shape"
)

func TestDecode_Variants(t *testing.T) {
	cases := []struct {
		json string
		want shape.Shape
	}{
		{`{"kind":"square","size":4}`, shape.Square{Size: 4}},
		{`{"kind":"rectangle","width":3,"height":5}`, shape.Rectangle{Width: 3, Height: 5}},
		{`{"kind":"circle","radius":2}`, shape.Circle{Radius: 2}},
	}
	for _, tc := range cases {
		t.Run(string(tc.want.Kind()), func(t *testing.T) {
			got, err := shape.Decode([]byte(tc.json))
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got=%#v want=%#v", got, tc.want)
			}
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	cases := []struct {
		name     string
		json     string
		wantCode string
	}{
		{"unknown_kind", `{"kind":"triangle","base":1}`, narrow.CodeDiscriminatorUnknown},
		{"missing_kind", `{"size":4}`, narrow.CodeDiscriminatorMissing},
		{"negative_size", `{"kind":"square","size":-4}`, narrow.CodeTooSmall},
		{"missing_height", `{"kind":"rectangle","width":3}`, narrow.CodeRequired},
		{"string_radius", `{"kind":"circle","radius":"2"}`, narrow.CodeInvalidType},
		{"null_size", `{"kind":"square","size":null}`, narrow.CodeInvalidType},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := shape.Decode([]byte(tc.json))
			if got := narrow.FirstCode(err); got != tc.wantCode {
				t.Fatalf("got code %q want %q (err=%v)", got, tc.wantCode, err)
			}
		})
	}
}

func TestDecodeYAML(t *testing.T) {
	s, err := shape.DecodeYAML([]byte("kind: circle\nradius: 2\n"))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if s != (shape.Circle{Radius: 2}) {
		t.Fatalf("unexpected shape: %#v", s)
	}

	all, err := shape.DecodeYAMLAll([]byte("kind: square\nsize: 4\n---\nkind: rectangle\nwidth: 1\nheight: 2\n"))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	total, err := shape.TotalArea(all...)
	if err != nil || total != 18 {
		t.Fatalf("total=%v err=%v", total, err)
	}
}

func TestSchema(t *testing.T) {
	s, err := shape.Schema()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(s.OneOf) != len(shape.Kinds()) {
		t.Fatalf("schema variants=%d kinds=%d", len(s.OneOf), len(shape.Kinds()))
	}
	for i, k := range shape.Kinds() {
		if s.OneOf[i].Properties[shape.Discriminator].Const != string(k) {
			t.Fatalf("variant %d const mismatch", i)
		}
	}
}
