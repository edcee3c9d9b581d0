package convert

import "errors"

// ErrMalformed reports a third-party instance edge missing the
// properties its declared type requires.
var ErrMalformed = errors.New("convert: malformed instance edge")
