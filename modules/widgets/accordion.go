package widgets

import "fmt"

type FAQItem struct {
	ID       string
	Question string
	Answer   string
}

// Accordion is a fixed list of collapsible questions, all closed initially.
type Accordion struct {
	items []FAQItem
	open  map[string]bool
}

func NewAccordion(items ...FAQItem) *Accordion {
	a := &Accordion{items: items, open: make(map[string]bool, len(items))}
	for _, it := range items {
		a.open[it.ID] = false
	}
	return a
}

// Toggle flips the answer visibility of item id.
func (a *Accordion) Toggle(id string) error {
	open, ok := a.open[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownItem, id)
	}
	a.open[id] = !open
	return nil
}

// Expanded reports whether item id is open; it mirrors aria-expanded.
func (a *Accordion) Expanded(id string) bool {
	return a.open[id]
}

func (a *Accordion) Items() []FAQItem {
	out := make([]FAQItem, len(a.items))
	copy(out, a.items)
	return out
}
