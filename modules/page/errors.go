package page

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/pagekit/handler"
	"github.com/dmitrymomot/pagekit/modules/signup"
	"github.com/dmitrymomot/pagekit/modules/widgets"
)

var ErrNoPage = errors.New("no page in session")

// httpError maps domain errors onto transport errors, keeping the cause.
func httpError(err error) error {
	switch {
	case errors.Is(err, widgets.ErrUnknownEvent),
		errors.Is(err, widgets.ErrUnknownItem),
		errors.Is(err, widgets.ErrUnknownOption),
		errors.Is(err, widgets.ErrUnknownTab):
		return fmt.Errorf("%w: %w", handler.ErrNotFound, err)
	case errors.Is(err, signup.ErrUnknownField):
		return fmt.Errorf("%w: %w", handler.ErrBadRequest, err)
	case errors.Is(err, ErrNoPage):
		return fmt.Errorf("%w: %w", handler.ErrInternalServerError, err)
	}
	return err
}
