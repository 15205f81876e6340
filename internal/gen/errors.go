package gen

import "errors"

// ErrForeignFile is returned when the output path is taken by a hand written file.
var ErrForeignFile = errors.New("foreign file")
