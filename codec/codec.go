package codec

import "context"

// Codec converts between a wire representation W and a domain value D.
type Codec[W, D any] interface {
	Decode(ctx context.Context, w W) (D, error)
	Encode(ctx context.Context, d D) (W, error)
}
