package widgets

import "github.com/dmitrymomot/pagekit/modules/signup"

// EventType names an interaction.
type EventType string

const (
	EventClick       EventType = "event.click"
	EventMouseOver   EventType = "event.mouseover"
	EventMouseOut    EventType = "event.mouseout"
	ThemeToggle      EventType = "theme.toggle"
	CounterIncrement EventType = "counter.increment"
	CounterDecrement EventType = "counter.decrement"
	CounterReset     EventType = "counter.reset"
	FAQToggle        EventType = "faq.toggle"
	DropdownToggle   EventType = "dropdown.toggle"
	DropdownSelect   EventType = "dropdown.select"
	DropdownKey      EventType = "dropdown.key"
	DropdownOutside  EventType = "dropdown.outside"
	TabsActivate     EventType = "tabs.activate"
	SignupSubmit     EventType = "signup.submit"
	SignupInput      EventType = "signup.input"
	SignupReset      EventType = "signup.reset"
)

// Event is one interaction. Only the fields its Type needs are read.
type Event struct {
	Type EventType

	// Target is the FAQ item, dropdown option or tab id.
	Target string
	// Key is the keyboard key for DropdownKey.
	Key string

	// Values is the submitted form for SignupSubmit.
	Values signup.Values
	// Field and Value describe a SignupInput.
	Field signup.Field
	Value string
	// Localizer translates signup messages; nil keeps English.
	Localizer signup.Localizer
}

// Region is a patchable part of the page. Values are element ids.
type Region string

const (
	RegionEventMessage   Region = "event-msg"
	RegionTheme          Region = "theme"
	RegionCounter        Region = "counter-value"
	RegionDropdown       Region = "dropdown"
	RegionTabs           Region = "tabs"
	RegionSignupFeedback Region = "signup-feedback"
	RegionSignupForm     Region = "signup-form"
)

// FAQRegion is the region of one accordion item.
func FAQRegion(id string) Region {
	return Region("faq-" + id)
}
