package page

import (
	"github.com/dmitrymomot/pagekit/handler"
	"github.com/dmitrymomot/pagekit/modules/signup"
	"github.com/dmitrymomot/pagekit/modules/widgets"
	"github.com/dmitrymomot/pagekit/pkg/logger"
)

func (s *Service) index(ctx handler.Context, _ emptyRequest) handler.Response {
	p, err := pageFrom(ctx)
	if err != nil {
		return handler.Error(httpError(err))
	}
	return handler.Templ(s.views.Page(p.Snapshot(), s.meta(ctx)))
}

// dispatch runs ev on the visitor's page and renders what changed.
func (s *Service) dispatch(ctx handler.Context, ev widgets.Event) handler.Response {
	p, err := pageFrom(ctx)
	if err != nil {
		return handler.Error(httpError(err))
	}

	regions, err := p.Dispatch(ev)
	if err != nil {
		return handler.Error(httpError(err))
	}

	ids := make([]string, len(regions))
	for i, r := range regions {
		ids[i] = string(r)
	}
	s.log.DebugContext(ctx, "event dispatched", logger.Event(string(ev.Type)), logger.Regions(ids))

	return s.render(ctx, p.Snapshot(), regions)
}

// simple handles events that carry no parameters.
func (s *Service) simple(t widgets.EventType) handler.HandlerFunc[handler.Context, emptyRequest] {
	return func(ctx handler.Context, _ emptyRequest) handler.Response {
		return s.dispatch(ctx, widgets.Event{Type: t})
	}
}

func (s *Service) event(ctx handler.Context, req actionRequest) handler.Response {
	return s.dispatch(ctx, widgets.Event{Type: widgets.EventType("event." + req.Action)})
}

func (s *Service) counter(ctx handler.Context, req actionRequest) handler.Response {
	return s.dispatch(ctx, widgets.Event{Type: widgets.EventType("counter." + req.Action)})
}

func (s *Service) faq(ctx handler.Context, req targetRequest) handler.Response {
	return s.dispatch(ctx, widgets.Event{Type: widgets.FAQToggle, Target: req.ID})
}

func (s *Service) dropdownSelect(ctx handler.Context, req optionRequest) handler.Response {
	return s.dispatch(ctx, widgets.Event{Type: widgets.DropdownSelect, Target: req.Option})
}

func (s *Service) dropdownKey(ctx handler.Context, req optionRequest) handler.Response {
	return s.dispatch(ctx, widgets.Event{Type: widgets.DropdownKey, Target: req.Option, Key: req.Key})
}

func (s *Service) tabs(ctx handler.Context, req targetRequest) handler.Response {
	return s.dispatch(ctx, widgets.Event{Type: widgets.TabsActivate, Target: req.ID})
}

func (s *Service) signupSubmit(ctx handler.Context, req signup.Values) handler.Response {
	return s.dispatch(ctx, widgets.Event{
		Type:      widgets.SignupSubmit,
		Values:    req,
		Localizer: s.localizer(ctx),
	})
}

func (s *Service) signupInput(ctx handler.Context, req inputRequest) handler.Response {
	field, err := signup.ParseField(req.Field)
	if err != nil {
		return handler.Error(httpError(err))
	}
	return s.dispatch(ctx, widgets.Event{
		Type:  widgets.SignupInput,
		Field: field,
		Value: req.values().Get(field),
	})
}

// apiValidate checks a payload without touching the visitor's form.
func (s *Service) apiValidate(ctx handler.Context, req signup.Values) handler.Response {
	if err := signup.NewValidator(s.localizer(ctx)).ValidateAll(req).Err(); err != nil {
		return handler.JSONError(err)
	}
	return handler.JSON(map[string]bool{"valid": true})
}
