package cleaner

import "golang.org/x/xerrors"

var (
	// ErrDegenerateGeometry means the extracted sub-paths have no extent, so
	// no scale factor exists. It is distinct from finding no paths at all,
	// which is not an error.
	ErrDegenerateGeometry = xerrors.New("all geometry collapses to a single point")

	// ErrInvalidOptions is wrapped by Options.Validate failures.
	ErrInvalidOptions = xerrors.New("invalid options")
)

// ParseError reports input that is not well-formed XML or has no root element.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return "svg parse error: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
