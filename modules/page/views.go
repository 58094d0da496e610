package page

import (
	"github.com/a-h/templ"

	"github.com/dmitrymomot/pagekit/modules/signup"
	"github.com/dmitrymomot/pagekit/modules/widgets"
)

// Meta is the localised page chrome passed to the full-page view.
type Meta struct {
	Lang          string
	Title         string
	SignupHeading string
}

// Views renders the page and each patchable region.
type Views struct {
	Page func(widgets.Snapshot, Meta) templ.Component

	EventMessage func(widgets.EventView) templ.Component
	ThemeToggle  func(widgets.ThemeView) templ.Component
	Counter      func(widgets.CounterView) templ.Component
	FAQItem      func(widgets.FAQView) templ.Component
	Dropdown     func(widgets.DropdownView) templ.Component
	Tabs         func([]widgets.TabView) templ.Component

	SignupForm   func(signup.View) templ.Component
	FieldError   func(signup.Field, string) templ.Component
	FormFeedback func(signup.Summary) templ.Component
}
