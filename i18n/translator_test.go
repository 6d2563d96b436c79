package i18n

import "testing"

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	if msg := T("unexpected_variant", nil); msg == "unexpected_variant" || msg == "" {
		t.Fatalf("expected a human message, got %q", msg)
	}

	SetLanguage("ja")
	if msg := T("unexpected_variant", nil); msg == "unexpected variant" {
		t.Fatalf("expected japanese message, got %q", msg)
	}

	// reset to en
	SetLanguage("en")
}

func TestTranslator_EmbedsData(t *testing.T) {
	if got := T("discriminator_unknown", map[string]string{"tag": "triangle"}); got != "unknown discriminator: 'triangle'" {
		t.Fatalf("unexpected message: %q", got)
	}
	if got := T("http_status", map[string]string{"status": "404"}); got != "Bad Request: 404" {
		t.Fatalf("unexpected message: %q", got)
	}
	if got := T("no_such_code", nil); got != "no_such_code" {
		t.Fatalf("unknown codes fall back to the code itself, got %q", got)
	}
}

type fixed string

func (f fixed) Message(string, map[string]string) string { return string(f) }

func TestSetTranslator_NilRestoresDefault(t *testing.T) {
	SetTranslator(fixed("x"))
	if got := T("required", nil); got != "x" {
		t.Fatalf("custom translator not used: %q", got)
	}
	SetTranslator(nil)
	if got := T("required", nil); got != "required property missing" {
		t.Fatalf("default not restored: %q", got)
	}
}
