package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates a raster with no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: empty raster")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: ragged raster rows")
	// ErrComponentIndex indicates an island index outside ConnectedComponents.
	ErrComponentIndex = errors.New("gridgraph: island index out of range")
	// ErrNoPath indicates obstacles separate the two islands.
	ErrNoPath = errors.New("gridgraph: islands cannot be bridged")
)
