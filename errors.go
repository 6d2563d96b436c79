package narrow

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType          = "invalid_type"
	CodeRequired             = "required"
	CodeInvalidFormat        = "invalid_format"
	CodeTooSmall             = "too_small"
	CodeInvalidEnum          = "invalid_enum"
	CodeDuplicateKey         = "duplicate_key"
	CodeDiscriminatorMissing = "discriminator_missing"
	CodeDiscriminatorUnknown = "discriminator_unknown"
	CodeUnexpectedVariant    = "unexpected_variant"
	CodeNonExhaustive        = "non_exhaustive"
	CodeParseError           = "parse_error"
	// Outbound HTTP failures (fetch package)
	CodeHTTPStatus            = "http_status"
	CodeDependencyUnavailable = "dependency_unavailable"
)

// Issue represents a single failure entry.
type Issue struct {
	Path    string // JSON Pointer (for example: /kind).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints, offending tag, etc.
	Cause   error  // Optional: underlying error.
	// Params carries structured parameters (e.g., {"missing": []string{"circle"}})
	// for i18n and logging.
	Params map[string]any
}

// Issues is a collection of failures that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. discriminator_unknown at /kind
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
		if it.Hint != "" {
			fmt.Fprintf(b, " (%s)", it.Hint)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Unwrap exposes the causes so errors.Is/As can see through Issues.
func (iss Issues) Unwrap() []error {
	var out []error
	for _, it := range iss {
		if it.Cause != nil {
			out = append(out, it.Cause)
		}
	}
	return out
}

// HasCode reports whether any issue carries the given code.
func (iss Issues) HasCode(code string) bool {
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// FirstCode returns the code of the first issue in err, or "" when err carries none.
func FirstCode(err error) string {
	iss, ok := AsIssues(err)
	if !ok || len(iss) == 0 {
		return ""
	}
	return iss[0].Code
}
