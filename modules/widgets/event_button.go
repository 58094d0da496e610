package widgets

const (
	ClickMessage     = "Button clicked! 🎉"
	MouseOverMessage = "Mouse over the button! 👀"
)

// EventButton shows a message reacting to pointer events.
type EventButton struct {
	message string
	visible bool
}

func (b *EventButton) Click() {
	b.message = ClickMessage
	b.visible = true
}

func (b *EventButton) MouseOver() {
	b.message = MouseOverMessage
	b.visible = true
}

// MouseOut hides the message but keeps its text.
func (b *EventButton) MouseOut() {
	b.visible = false
}

func (b *EventButton) Message() string { return b.message }
func (b *EventButton) Visible() bool   { return b.visible }
