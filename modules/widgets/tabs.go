package widgets

import "fmt"

type Tab struct {
	ID      string
	Title   string
	Content string
}

// Tabs keeps exactly one tab active; the first one initially.
type Tabs struct {
	tabs   []Tab
	active string
}

func NewTabs(tabs ...Tab) *Tabs {
	t := &Tabs{tabs: tabs}
	if len(tabs) > 0 {
		t.active = tabs[0].ID
	}
	return t
}

func (t *Tabs) Activate(id string) error {
	for _, tab := range t.tabs {
		if tab.ID == id {
			t.active = id
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownTab, id)
}

func (t *Tabs) Active() string { return t.active }

func (t *Tabs) Tabs() []Tab {
	out := make([]Tab, len(t.tabs))
	copy(out, t.tabs)
	return out
}
