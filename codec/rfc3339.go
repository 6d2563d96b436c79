package codec

import (
	"context"
	"time"

	narrow "github.com/reoring/narrow"
	"github.com/reoring/narrow/i18n"
)

// ISOLayout is the fixed-width UTC layout produced by ISOTime: millisecond
// precision with a literal Z, e.g. 2025-01-01T09:30:00.000Z.
const ISOLayout = "2006-01-02T15:04:05.000Z"

// ISOTime returns a Codec that converts between ISO-8601 strings and time.Time.
// Encode always emits ISOLayout in UTC; Decode accepts any RFC3339 offset.
func ISOTime() Codec[string, time.Time] { return isoCodec{} }

type isoCodec struct{}

func (isoCodec) Decode(ctx context.Context, a string) (time.Time, error) {
	t, err := parseRFC3339(a)
	if err != nil {
		return time.Time{}, narrow.Issues{{Path: "/", Code: narrow.CodeInvalidFormat, Message: i18n.T(narrow.CodeInvalidFormat, nil), Hint: "expected RFC3339 time", Cause: err}}
	}
	return t, nil
}

func (isoCodec) Encode(ctx context.Context, b time.Time) (string, error) {
	if b.IsZero() {
		return "", narrow.Issues{{Path: "/", Code: narrow.CodeRequired, Message: i18n.T(narrow.CodeRequired, nil), Hint: "zero time"}}
	}
	return FormatISO(b), nil
}

// FormatISO renders t in ISOLayout after normalizing to UTC.
func FormatISO(t time.Time) string { return t.UTC().Format(ISOLayout) }

func parseRFC3339(s string) (time.Time, error) {
	// Accept RFC3339Nano (trailing zeros optional)
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		if t2, err2 := time.Parse(time.RFC3339, s); err2 == nil {
			return t2, nil
		}
		return time.Time{}, err
	}
	return t, nil
}
