package narrow_test

import (
	"errors"
	"testing"

	narrow "github.com/reoring/narrow"
)

type payment interface{ isPayment() }

type card struct {
	Number string `json:"number"`
}

type bank struct {
	IBAN string  `json:"iban"`
	Memo *string `json:"memo"`
}

type cash struct {
	Amount float64 `json:"amount" narrow:"min=0"`
}

func (card) isPayment() {}
func (bank) isPayment() {}
func (cash) isPayment() {}

var errNoCash = errors.New("cash amount must be whole")

func (c *cash) Validate() error {
	if c.Amount != float64(int64(c.Amount)) {
		return errNoCash
	}
	return nil
}

func paymentUnion() *narrow.Union[payment] {
	u := narrow.NewUnion[payment]("type")
	narrow.Register(u, "card", func(v card) payment { return v })
	narrow.Register(u, "bank", func(v bank) payment { return v })
	narrow.Register(u, "cash", func(v cash) payment { return v })
	return u
}

func TestUnion_Discriminator_HappyPath(t *testing.T) {
	u := paymentUnion()

	v, err := u.DecodeJSON([]byte(`{"type":"card","number":"4111111111111111"}`))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if c, ok := v.(card); !ok || c.Number != "4111111111111111" {
		t.Fatalf("unexpected value: %#v", v)
	}

	v2, err := u.DecodeJSON([]byte(`{"type":"bank","iban":"DE89"}`))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if b, ok := v2.(bank); !ok || b.IBAN != "DE89" || b.Memo != nil {
		t.Fatalf("unexpected value: %#v", v2)
	}
}

func TestUnion_Errors(t *testing.T) {
	u := paymentUnion()
	cases := []struct {
		name     string
		json     string
		wantCode string
		wantPath string
	}{
		{"missing_discriminator", `{"number":"1"}`, narrow.CodeDiscriminatorMissing, "/type"},
		{"non_string_discriminator", `{"type":1}`, narrow.CodeDiscriminatorMissing, "/type"},
		{"unknown_discriminator", `{"type":"crypto"}`, narrow.CodeDiscriminatorUnknown, "/type"},
		{"duplicate_discriminator", `{"type":"card","type":"bank","number":"1"}`, narrow.CodeDuplicateKey, "/type"},
		{"not_object", `["type","type"]`, narrow.CodeInvalidType, "/"},
		{"malformed", `{"type":`, narrow.CodeParseError, "/"},
		{"missing_field", `{"type":"card"}`, narrow.CodeRequired, "/number"},
		{"wrong_field_type", `{"type":"card","number":12}`, narrow.CodeInvalidType, "/number"},
		{"null_required_field", `{"type":"card","number":null}`, narrow.CodeInvalidType, "/number"},
		{"below_minimum", `{"type":"cash","amount":-1}`, narrow.CodeTooSmall, "/amount"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := u.DecodeJSON([]byte(tc.json))
			iss, ok := narrow.AsIssues(err)
			if !ok || len(iss) == 0 {
				t.Fatalf("expected issues, got %v", err)
			}
			if iss[0].Code != tc.wantCode || iss[0].Path != tc.wantPath {
				t.Fatalf("got %s at %s, want %s at %s", iss[0].Code, iss[0].Path, tc.wantCode, tc.wantPath)
			}
		})
	}
}

func TestUnion_NullOptionalFieldIsAccepted(t *testing.T) {
	u := paymentUnion()
	v, err := u.DecodeJSON([]byte(`{"type":"bank","iban":"DE89","memo":null}`))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if b, ok := v.(bank); !ok || b.Memo != nil {
		t.Fatalf("unexpected value: %#v", v)
	}
}

func TestUnion_NestedDuplicateIsNotDiscriminator(t *testing.T) {
	u := paymentUnion()
	_, err := u.DecodeJSON([]byte(`{"type":"card","number":"1","meta":{"type":"x","type":"y"}}`))
	if err != nil {
		t.Fatalf("nested keys must not count as discriminator duplicates: %v", err)
	}
}

func TestUnion_ValidatorRuns(t *testing.T) {
	u := paymentUnion()
	_, err := u.DecodeJSON([]byte(`{"type":"cash","amount":1.5}`))
	if !errors.Is(err, errNoCash) {
		t.Fatalf("expected validator error, got %v", err)
	}
}

func TestUnion_YAML(t *testing.T) {
	u := paymentUnion()
	v, err := u.DecodeYAML([]byte("type: cash\namount: 20\n"))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if c, ok := v.(cash); !ok || c.Amount != 20 {
		t.Fatalf("unexpected value: %#v", v)
	}

	all, err := u.DecodeYAMLStream([]byte("type: card\nnumber: \"1\"\n---\ntype: bank\niban: X\n"))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(all))
	}
	if _, ok := all[1].(bank); !ok {
		t.Fatalf("second document should be bank: %#v", all[1])
	}

	if _, err := u.DecodeYAMLStream([]byte("type: card\nnumber: \"1\"\n---\ntype: wire\n")); narrow.FirstCode(err) != narrow.CodeDiscriminatorUnknown {
		t.Fatalf("expected discriminator_unknown, got %v", err)
	}
}

func TestUnion_JSONSchema(t *testing.T) {
	u := paymentUnion()
	if got := u.Tags(); len(got) != 3 || got[0] != "card" || got[2] != "cash" {
		t.Fatalf("unexpected tags: %v", got)
	}
	s, err := u.JSONSchema()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(s.OneOf) != 3 {
		t.Fatalf("expected 3 variants, got %d", len(s.OneOf))
	}
	bankSchema := s.OneOf[1]
	if bankSchema.Properties["type"].Const != "bank" {
		t.Fatalf("discriminator const missing: %+v", bankSchema.Properties["type"])
	}
	if len(bankSchema.Required) != 2 || bankSchema.Required[1] != "iban" {
		t.Fatalf("pointer fields must be optional: %v", bankSchema.Required)
	}
	if m := s.OneOf[2].Properties["amount"].Minimum; m == nil || *m != 0 {
		t.Fatalf("minimum not exported")
	}
}

func TestRegister_DuplicateTagPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	u := paymentUnion()
	narrow.Register(u, "card", func(v card) payment { return v })
}
