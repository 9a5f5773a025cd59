// Package similarity defines the interface and data types used to compare an
// avatar image against the set of known abusive images via a backing
// similarity service.
package similarity

import "context"

// Result is the outcome of one image comparison. PhashDistance is the
// perceptual-hash distance to the nearest known abusive image: lower means
// more similar, 0 means identical.
type Result struct {
	PhashDistance int
}

// Client is the abstraction for the similarity service. Implementations must
// be safe for concurrent use.
//
// Transport and service failures surface as serrors.ErrUnavailable or
// serrors.ErrTimeout so callers can distinguish them from bad input.
//
//go:generate mockgen -package mocksimilarity -source=interface.go -destination=mock/mocksimilarity.go *
type Client interface {
	// CheckImage submits the image at URL for comparison and returns the
	// perceptual distance to the nearest known abusive image.
	CheckImage(ctx context.Context, URL string) (*Result, error)
}
