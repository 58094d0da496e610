package signup

import "errors"

var ErrUnknownField = errors.New("unknown signup field")
