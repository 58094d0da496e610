package widgets

import (
	"fmt"
	"slices"
)

const (
	DropdownPlaceholder = "Select an option"
	dropdownArrow       = " ▼"
)

// Dropdown is a closed-by-default list of fixed options.
type Dropdown struct {
	options  []string
	open     bool
	selected string
}

func NewDropdown(options ...string) *Dropdown {
	return &Dropdown{options: slices.Clone(options)}
}

func (d *Dropdown) Toggle() { d.open = !d.open }

// Outside closes the list; it models a click anywhere else on the page.
func (d *Dropdown) Outside() { d.open = false }

// Select picks option and closes the list.
func (d *Dropdown) Select(option string) error {
	if !slices.Contains(d.options, option) {
		return fmt.Errorf("%w: %q", ErrUnknownOption, option)
	}
	d.selected = option
	d.open = false
	return nil
}

// Key handles a keydown on option. Enter and Space select it; other keys
// are ignored and report false.
func (d *Dropdown) Key(option, key string) (bool, error) {
	if !slices.Contains(d.options, option) {
		return false, fmt.Errorf("%w: %q", ErrUnknownOption, option)
	}
	if key != "Enter" && key != " " {
		return false, nil
	}
	return true, d.Select(option)
}

func (d *Dropdown) Open() bool       { return d.open }
func (d *Dropdown) Selected() string { return d.selected }
func (d *Dropdown) Options() []string {
	return slices.Clone(d.options)
}

// Label is the toggle text, "<selected> ▼" once something is chosen.
func (d *Dropdown) Label() string {
	if d.selected == "" {
		return DropdownPlaceholder + dropdownArrow
	}
	return d.selected + dropdownArrow
}
