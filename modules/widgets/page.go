package widgets

import (
	"fmt"
	"sync"

	"github.com/dmitrymomot/pagekit/modules/signup"
)

type eventHandler func(p *Page, ev Event) ([]Region, error)

// Page is one visitor's page: every widget plus the signup form.
type Page struct {
	mu sync.Mutex

	button   EventButton
	theme    Theme
	counter  Counter
	faq      *Accordion
	dropdown *Dropdown
	tabs     *Tabs
	signup   *signup.Controller

	handlers map[EventType]eventHandler
}

// PageOption configures a Page.
type PageOption func(*pageConfig)

type pageConfig struct {
	faq      []FAQItem
	options  []string
	tabs     []Tab
	formOpts []signup.ControllerOption
}

func WithFAQ(items ...FAQItem) PageOption {
	return func(c *pageConfig) { c.faq = items }
}

func WithDropdownOptions(options ...string) PageOption {
	return func(c *pageConfig) { c.options = options }
}

func WithTabs(tabs ...Tab) PageOption {
	return func(c *pageConfig) { c.tabs = tabs }
}

// WithSignupMetrics records this page's submissions into m.
func WithSignupMetrics(m *signup.Metrics) PageOption {
	return func(c *pageConfig) {
		c.formOpts = append(c.formOpts, signup.WithMetrics(m))
	}
}

func NewPage(opts ...PageOption) *Page {
	cfg := pageConfig{
		faq:     DefaultFAQ(),
		options: DefaultDropdownOptions(),
		tabs:    DefaultTabs(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Page{
		faq:      NewAccordion(cfg.faq...),
		dropdown: NewDropdown(cfg.options...),
		tabs:     NewTabs(cfg.tabs...),
		signup:   signup.NewController(cfg.formOpts...),
		handlers: dispatchTable(),
	}
}

func dispatchTable() map[EventType]eventHandler {
	only := func(r Region, fn func(p *Page)) eventHandler {
		return func(p *Page, _ Event) ([]Region, error) {
			fn(p)
			return []Region{r}, nil
		}
	}

	return map[EventType]eventHandler{
		EventClick:       only(RegionEventMessage, func(p *Page) { p.button.Click() }),
		EventMouseOver:   only(RegionEventMessage, func(p *Page) { p.button.MouseOver() }),
		EventMouseOut:    only(RegionEventMessage, func(p *Page) { p.button.MouseOut() }),
		ThemeToggle:      only(RegionTheme, func(p *Page) { p.theme.Toggle() }),
		CounterIncrement: only(RegionCounter, func(p *Page) { p.counter.Increment() }),
		CounterDecrement: only(RegionCounter, func(p *Page) { p.counter.Decrement() }),
		CounterReset:     only(RegionCounter, func(p *Page) { p.counter.Reset() }),
		DropdownToggle:   only(RegionDropdown, func(p *Page) { p.dropdown.Toggle() }),
		DropdownOutside:  only(RegionDropdown, func(p *Page) { p.dropdown.Outside() }),
		SignupReset:      only(RegionSignupForm, func(p *Page) { p.signup.Reset() }),

		FAQToggle: func(p *Page, ev Event) ([]Region, error) {
			if err := p.faq.Toggle(ev.Target); err != nil {
				return nil, err
			}
			return []Region{FAQRegion(ev.Target)}, nil
		},
		DropdownSelect: func(p *Page, ev Event) ([]Region, error) {
			if err := p.dropdown.Select(ev.Target); err != nil {
				return nil, err
			}
			return []Region{RegionDropdown}, nil
		},
		DropdownKey: func(p *Page, ev Event) ([]Region, error) {
			selected, err := p.dropdown.Key(ev.Target, ev.Key)
			if err != nil || !selected {
				return nil, err
			}
			return []Region{RegionDropdown}, nil
		},
		TabsActivate: func(p *Page, ev Event) ([]Region, error) {
			if err := p.tabs.Activate(ev.Target); err != nil {
				return nil, err
			}
			return []Region{RegionTabs}, nil
		},
		SignupSubmit: func(p *Page, ev Event) ([]Region, error) {
			out := p.signup.Submit(ev.Values, ev.Localizer)
			if out.Success {
				return []Region{RegionSignupForm}, nil
			}
			return []Region{RegionSignupFeedback}, nil
		},
		SignupInput: func(p *Page, ev Event) ([]Region, error) {
			if err := p.signup.Input(ev.Field, ev.Value); err != nil {
				return nil, err
			}
			return []Region{RegionSignupFeedback}, nil
		},
	}
}

// Dispatch runs the handler registered for ev.Type to completion and
// returns the regions it changed. Calls on one page are serialised.
func (p *Page) Dispatch(ev Event) ([]Region, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	h, ok := p.handlers[ev.Type]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEvent, ev.Type)
	}
	return h(p, ev)
}
