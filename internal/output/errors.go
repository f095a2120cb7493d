package output

import "errors"

// ErrUnsupportedFormat is returned when a report format is not registered.
var ErrUnsupportedFormat = errors.New("unsupported report format")
