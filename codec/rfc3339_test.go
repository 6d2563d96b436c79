package codec

import (
	"context"
	"testing"
	"time"

	narrow "github.com/reoring/narrow"
)

func TestISOTime_Codec_Basic(t *testing.T) {
	c := ISOTime()
	ctx := context.Background()

	in := "2025-01-01T00:00:00Z"
	got, err := c.Decode(ctx, in)
	if err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if !got.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected time: %v", got)
	}

	out, err := c.Encode(ctx, got)
	if err != nil {
		t.Fatalf("encode err: %v", err)
	}
	if out != "2025-01-01T00:00:00.000Z" {
		t.Fatalf("unexpected encoding: %s", out)
	}
}

func TestISOTime_NormalizesToUTC(t *testing.T) {
	jst := time.FixedZone("JST", 9*60*60)
	got := FormatISO(time.Date(2025, 1, 1, 9, 30, 0, 123456789, jst))
	if got != "2025-01-01T00:30:00.123Z" {
		t.Fatalf("unexpected: %s", got)
	}
}

func TestISOTime_Errors(t *testing.T) {
	c := ISOTime()
	ctx := context.Background()

	if _, err := c.Decode(ctx, "yesterday"); narrow.FirstCode(err) != narrow.CodeInvalidFormat {
		t.Fatalf("expected invalid_format, got %v", err)
	}
	if _, err := c.Encode(ctx, time.Time{}); narrow.FirstCode(err) != narrow.CodeRequired {
		t.Fatalf("expected required, got %v", err)
	}
}
