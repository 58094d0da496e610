package binder

import "errors"

var (
	// ErrBinderNotApplicable means the request carries nothing for this binder.
	ErrBinderNotApplicable = errors.New("binder not applicable to request")

	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrMissingContentType   = errors.New("missing content type")
	ErrInvalidForm          = errors.New("invalid form data")
	ErrInvalidJSON          = errors.New("invalid JSON body")
	ErrInvalidQuery         = errors.New("invalid query parameter")
	ErrInvalidPath          = errors.New("invalid path parameter")
	ErrInvalidTarget        = errors.New("binding target must be a non-nil pointer to struct")
)
