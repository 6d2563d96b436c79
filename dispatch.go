package narrow

import (
	"slices"
	"strings"

	"github.com/reoring/narrow/i18n"
)

// Kinded is a union member that reports its discriminator.
type Kinded[K ~string] interface {
	Kind() K
}

// CaseBuilder collects branches for a Switch. Create one with Cases.
type CaseBuilder[K ~string, V Kinded[K], R any] struct {
	declared []K
	cases    map[K]func(V) (R, error)
	issues   Issues
}

// Cases starts an exhaustive dispatch over the declared kinds.
func Cases[K ~string, V Kinded[K], R any](declared ...K) *CaseBuilder[K, V, R] {
	return &CaseBuilder[K, V, R]{
		declared: slices.Clone(declared),
		cases:    make(map[K]func(V) (R, error), len(declared)),
	}
}

// On binds fn to one or more kinds. Listing several kinds is how variants that
// share a payload shape share a branch.
func (b *CaseBuilder[K, V, R]) On(fn func(V) (R, error), kinds ...K) *CaseBuilder[K, V, R] {
	for _, k := range kinds {
		if !slices.Contains(b.declared, k) {
			b.issues = AppendIssues(b.issues, Issue{Path: "/" + string(k), Code: CodeDiscriminatorUnknown, Message: i18n.T(CodeDiscriminatorUnknown, map[string]string{"tag": string(k)}), Hint: "kind is not declared"})
			continue
		}
		if _, dup := b.cases[k]; dup {
			b.issues = AppendIssues(b.issues, Issue{Path: "/" + string(k), Code: CodeDuplicateKey, Message: i18n.T(CodeDuplicateKey, nil), Hint: "kind '" + string(k) + "' bound twice"})
			continue
		}
		b.cases[k] = fn
	}
	return b
}

// Build returns the Switch, or Issues when a declared kind has no branch or a
// branch names an undeclared or already-bound kind.
func (b *CaseBuilder[K, V, R]) Build() (*Switch[K, V, R], error) {
	iss := slices.Clone(b.issues)
	var missing []string
	for _, k := range b.declared {
		if _, ok := b.cases[k]; !ok {
			missing = append(missing, string(k))
		}
	}
	if len(missing) > 0 {
		iss = AppendIssues(iss, Issue{
			Path:    "/",
			Code:    CodeNonExhaustive,
			Message: i18n.T(CodeNonExhaustive, nil),
			Hint:    "unhandled: " + strings.Join(missing, ", "),
			Params:  map[string]any{"missing": missing},
		})
	}
	if len(iss) > 0 {
		return nil, iss
	}
	cases := make(map[K]func(V) (R, error), len(b.cases))
	for k, fn := range b.cases {
		cases[k] = fn
	}
	return &Switch[K, V, R]{declared: slices.Clone(b.declared), cases: cases}, nil
}

// MustBuild is Build that panics on error. Call it from package-level vars so a
// missing branch stops the program at init.
func (b *CaseBuilder[K, V, R]) MustBuild() *Switch[K, V, R] {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

// Switch dispatches a union value to the branch bound to its kind.
// A built Switch is immutable and safe for concurrent use.
type Switch[K ~string, V Kinded[K], R any] struct {
	declared []K
	cases    map[K]func(V) (R, error)
}

// Apply runs the branch for v.Kind(). A kind outside the declared set fails with
// the Unreachable error instead of falling into a default. A nil v (including
// a typed nil pointer) is reported the same way.
func (s *Switch[K, V, R]) Apply(v V) (R, error) {
	var zero R
	if any(v) == nil {
		return zero, Unreachable(nil)
	}
	if isNil(v) {
		return zero, Unreachable(v)
	}
	fn, ok := s.cases[v.Kind()]
	if !ok {
		return zero, Unreachable(v)
	}
	return fn(v)
}

// Kinds returns the declared kinds in declaration order.
func (s *Switch[K, V, R]) Kinds() []K { return slices.Clone(s.declared) }
