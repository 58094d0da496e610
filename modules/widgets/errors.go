package widgets

import "errors"

var (
	ErrUnknownEvent  = errors.New("unknown event type")
	ErrUnknownItem   = errors.New("unknown faq item")
	ErrUnknownOption = errors.New("unknown dropdown option")
	ErrUnknownTab    = errors.New("unknown tab")
)
