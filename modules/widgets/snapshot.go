package widgets

import "github.com/dmitrymomot/pagekit/modules/signup"

// Snapshot is an immutable copy of a page for rendering.
type Snapshot struct {
	Event    EventView
	Theme    ThemeView
	Counter  CounterView
	FAQ      []FAQView
	Dropdown DropdownView
	Tabs     []TabView
	Signup   signup.View
}

type EventView struct {
	Message string
	Visible bool
}

type ThemeView struct {
	Dark      bool
	Label     string
	BodyClass string
}

type CounterView struct {
	Value int
	Tone  CounterTone
}

type FAQView struct {
	FAQItem
	Expanded bool
}

type DropdownView struct {
	Options  []string
	Open     bool
	Selected string
	Label    string
}

type TabView struct {
	Tab
	Active bool
}

// Snapshot copies the page state under the page lock.
func (p *Page) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	s := Snapshot{
		Event:   EventView{Message: p.button.Message(), Visible: p.button.Visible()},
		Theme:   ThemeView{Dark: p.theme.Dark(), Label: p.theme.Label(), BodyClass: p.theme.BodyClass()},
		Counter: CounterView{Value: p.counter.Value(), Tone: p.counter.Tone()},
		Dropdown: DropdownView{
			Options:  p.dropdown.Options(),
			Open:     p.dropdown.Open(),
			Selected: p.dropdown.Selected(),
			Label:    p.dropdown.Label(),
		},
		Signup: p.signup.View(),
	}
	for _, it := range p.faq.Items() {
		s.FAQ = append(s.FAQ, FAQView{FAQItem: it, Expanded: p.faq.Expanded(it.ID)})
	}
	for _, tab := range p.tabs.Tabs() {
		s.Tabs = append(s.Tabs, TabView{Tab: tab, Active: tab.ID == p.tabs.Active()})
	}
	return s
}

// FAQItem returns the view of one accordion item.
func (s Snapshot) FAQItem(id string) (FAQView, bool) {
	for _, it := range s.FAQ {
		if it.ID == id {
			return it, true
		}
	}
	return FAQView{}, false
}
