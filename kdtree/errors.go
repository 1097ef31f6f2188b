package kdtree

import "github.com/pkg/errors"

var (
	ErrNilPoint    = errors.New("kdtree: nil point")
	ErrNilRect     = errors.New("kdtree: nil rectangle")
	ErrInvalidRect = errors.New("kdtree: invalid rectangle")
)
