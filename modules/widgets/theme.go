package widgets

const (
	DarkModeClass  = "dark-mode"
	LightModeLabel = "Toggle Light Mode"
	DarkModeLabel  = "Toggle Dark Mode"
)

// Theme switches between light and dark mode. Light is the initial mode.
type Theme struct {
	dark bool
}

func (t *Theme) Toggle() { t.dark = !t.dark }

func (t *Theme) Dark() bool { return t.dark }

// Label is the toggle button text: it names the mode the click switches to.
func (t *Theme) Label() string {
	if t.dark {
		return LightModeLabel
	}
	return DarkModeLabel
}

// BodyClass is the class the page body carries in the current mode.
func (t *Theme) BodyClass() string {
	if t.dark {
		return DarkModeClass
	}
	return ""
}
