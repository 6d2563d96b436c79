// Package message is a union whose variants do not map one-to-one onto tags:
// B and C share a payload, so narrowing on the tag has to group them.
package message

import (
	"errors"
	"fmt"

	narrow "github.com/reoring/narrow"
	"github.com/reoring/narrow/i18n"
)

// Kind is the discriminator of a Message.
type Kind string

const (
	KindA Kind = "A"
	KindB Kind = "B"
	KindC Kind = "C"
	KindD Kind = "D"
)

// Kinds returns the closed set of message kinds.
func Kinds() []Kind { return []Kind{KindA, KindB, KindC, KindD} }

// Message is one of A, BC (kind B or C) or D.
type Message interface {
	Kind() Kind
	isMessage()
}

type A struct {
	X string `json:"x"`
}

// BC carries the payload shared by kinds B and C. Tag says which one.
type BC struct {
	Tag Kind    `json:"kind"`
	Y   float64 `json:"y"`
}

type D struct{}

func (A) Kind() Kind    { return KindA }
func (m BC) Kind() Kind { return m.Tag }
func (D) Kind() Kind    { return KindD }

func (A) isMessage()  {}
func (BC) isMessage() {}
func (D) isMessage()  {}

// Validate rejects a BC whose tag is not B or C.
func (m *BC) Validate() error {
	if m.Tag != KindB && m.Tag != KindC {
		return narrow.Issues{{Path: "/kind", Code: narrow.CodeDiscriminatorUnknown, Message: i18n.T(narrow.CodeDiscriminatorUnknown, map[string]string{"tag": string(m.Tag)}), Hint: "BC accepts only B or C"}}
	}
	return nil
}

// NewB and NewC build the two faces of BC.
func NewB(y float64) BC { return BC{Tag: KindB, Y: y} }
func NewC(y float64) BC { return BC{Tag: KindC, Y: y} }

// Group is what a message narrows to after ruling variants out.
type Group string

const (
	GroupA  Group = "A"
	GroupBC Group = "B|C"
	GroupD  Group = "D"
)

// Classify narrows by elimination: A, then D, and whatever remains must be B or C.
func Classify(m Message) (Group, error) {
	switch m := m.(type) {
	case A:
		return GroupA, nil
	case D:
		return GroupD, nil
	case BC:
		if m.Tag == KindB || m.Tag == KindC {
			return GroupBC, nil
		}
	}
	return "", narrow.Unreachable(m)
}

// WithoutA returns m and true when m is anything but A (early return on A).
func WithoutA(m Message) (Message, bool) {
	if _, ok := m.(A); ok {
		return nil, false
	}
	return m, m != nil
}

// HasKind compares m against a kind known only at run time. Only A and D are
// accepted for k; any other value (including kinds that do not exist at all) is
// a programming error reported as an unexpected variant.
func HasKind(m Message, k Kind) (bool, error) {
	if k != KindA && k != KindD {
		return false, narrow.Unreachable(k)
	}
	if m == nil {
		return false, nil
	}
	return m.Kind() == k, nil
}

// Route reports the branches a switch with a break after every case executes.
// A kind outside A|B|C|D, or a B|C kind on anything but BC, is reported as an
// unexpected variant.
func Route(m Message) ([]Group, error) {
	if m == nil {
		return nil, nil
	}
	switch m.Kind() {
	case KindA:
		if _, ok := m.(A); ok {
			return []Group{GroupA}, nil
		}
	case KindD:
		if _, ok := m.(D); ok {
			return []Group{GroupD}, nil
		}
	case KindB, KindC:
		if _, ok := m.(BC); ok {
			return []Group{GroupBC}, nil
		}
	}
	return nil, narrow.Unreachable(m)
}

// RouteFallthrough is Route with the A branch falling into the D branch.
func RouteFallthrough(m Message) ([]Group, error) {
	if m == nil {
		return nil, nil
	}
	if err := checkShape(m); err != nil {
		return nil, err
	}
	var ran []Group
	switch m.Kind() {
	case KindA:
		ran = append(ran, GroupA)
		fallthrough
	case KindD:
		ran = append(ran, GroupD)
	case KindB, KindC:
		ran = append(ran, GroupBC)
	}
	return ran, nil
}

// HandledEarly reports whether A or B is consumed by the grouped early return.
// C and D carry on to the caller.
func HandledEarly(m Message) (bool, error) {
	if m == nil {
		return false, nil
	}
	if err := checkShape(m); err != nil {
		return false, err
	}
	switch m.Kind() {
	case KindA, KindB:
		return true, nil
	}
	return false, nil
}

// checkShape fails unless m's kind is declared and matches its concrete type.
func checkShape(m Message) error {
	_, err := Route(m)
	return err
}

// ErrNoPayload is returned by Y for D messages.
var ErrNoPayload = errors.New("message: D carries no payload")

// Y extracts the B|C payload. A yields ok=false, D fails, B and C yield their Y.
func Y(m Message) (y float64, ok bool, err error) {
	switch m := m.(type) {
	case A:
		return 0, false, nil
	case D:
		return 0, false, ErrNoPayload
	case BC:
		if m.Tag == KindB || m.Tag == KindC {
			return m.Y, true, nil
		}
	}
	return 0, false, narrow.Unreachable(m)
}

var describe = narrow.Cases[Kind, Message, string](Kinds()...).
	On(func(m Message) (string, error) {
		a, ok := m.(A)
		if !ok {
			return "", narrow.Unreachable(m)
		}
		return fmt.Sprintf("A(x=%q)", a.X), nil
	}, KindA).
	On(func(m Message) (string, error) {
		bc, ok := m.(BC)
		if !ok {
			return "", narrow.Unreachable(m)
		}
		return fmt.Sprintf("%s(y=%g)", bc.Tag, bc.Y), nil
	}, KindB, KindC).
	On(func(Message) (string, error) { return "D", nil }, KindD).
	MustBuild()

// Describe renders m; B and C share one branch.
func Describe(m Message) (string, error) { return describe.Apply(m) }
