// Package widgets holds the state of the interactive page.
//
// Each widget is a small controller owning its own state: EventButton,
// Theme, Counter, Accordion, Dropdown and Tabs. Page aggregates them with
// the signup form controller and routes interactions through a dispatch
// table keyed by EventType:
//
//	page := widgets.NewPage()
//	regions, err := page.Dispatch(widgets.Event{Type: widgets.CounterIncrement})
//	// regions == []widgets.Region{widgets.RegionCounter}
//
// Dispatch holds the page lock for the whole handler run, so interactions
// on one page never interleave. Snapshot copies the state under the same
// lock for rendering.
package widgets
