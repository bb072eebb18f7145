package elevation

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is wrapped by every error returned while building a Grid.
	ErrConfiguration = errors.New("elevation: invalid grid configuration")
	// ErrEmptyGrid indicates the input holds no rows.
	ErrEmptyGrid = fmt.Errorf("%w: grid has no rows", ErrConfiguration)
	// ErrMissingStart indicates the input has no 'S' marker.
	ErrMissingStart = fmt.Errorf("%w: missing start marker %q", ErrConfiguration, StartMarker)
	// ErrMissingEnd indicates the input has no 'E' marker.
	ErrMissingEnd = fmt.Errorf("%w: missing end marker %q", ErrConfiguration, EndMarker)
	// ErrDuplicateMarker indicates 'S' or 'E' appears more than once.
	ErrDuplicateMarker = fmt.Errorf("%w: duplicate marker", ErrConfiguration)
	// ErrInvalidCell indicates a character outside 'a'..'z', 'S' and 'E'.
	ErrInvalidCell = fmt.Errorf("%w: invalid cell", ErrConfiguration)
)
