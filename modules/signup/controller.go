package signup

// Tone styles the summary line.
type Tone string

const (
	ToneNone    Tone = ""
	ToneSuccess Tone = "success"
	ToneError   Tone = "error"
)

const (
	SuccessMessage = "Form submitted successfully! 🎉"
	ErrorMessage   = "Please fix the errors above and try again."
)

// Summary is the form-level feedback line.
type Summary struct {
	Message string
	Tone    Tone
}

// Outcome reports one submission.
type Outcome struct {
	State   FormState
	Success bool
	Summary Summary
}

// View is a rendering snapshot of the form.
type View struct {
	Values   Values
	Messages map[Field]string
	Summary  Summary
}

// Controller owns the form's values, slots and summary. It is not safe for
// concurrent use; the owning page serialises access.
type Controller struct {
	values  Values
	slots   map[Field]*MessageSlot
	summary Summary
	metrics *Metrics
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithMetrics records submissions into m.
func WithMetrics(m *Metrics) ControllerOption {
	return func(c *Controller) {
		c.metrics = m
	}
}

func NewController(opts ...ControllerOption) *Controller {
	c := &Controller{slots: make(map[Field]*MessageSlot, 4)}
	for _, f := range Fields() {
		c.slots[f] = &MessageSlot{}
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Submit validates values and updates slots and summary. A nil Localizer
// keeps English messages.
func (c *Controller) Submit(values Values, loc Localizer) Outcome {
	c.values = values
	c.clear()

	v := NewValidator(loc)
	var state FormState
	for _, f := range Fields() {
		spec := FieldSpec{ID: f, Value: values.Get(f), Slot: c.slots[f]}
		state.set(f, v.Validate(spec, values.Password))
	}

	out := Outcome{State: state, Success: state.Valid()}
	if out.Success {
		c.summary = Summary{Message: v.text("signup.summary.success", SuccessMessage), Tone: ToneSuccess}
		c.values = Values{}
	} else {
		c.summary = Summary{Message: v.text("signup.summary.error", ErrorMessage), Tone: ToneError}
	}
	out.Summary = c.summary

	c.metrics.observe(state)
	return out
}

// Input records a new value for field and clears every slot and the summary.
func (c *Controller) Input(field Field, value string) error {
	if _, err := ParseField(string(field)); err != nil {
		return err
	}
	c.values = c.values.With(field, value)
	c.clear()
	return nil
}

// Reset empties values, slots and summary.
func (c *Controller) Reset() {
	c.values = Values{}
	c.clear()
}

// View returns a copy of the current form for rendering.
func (c *Controller) View() View {
	msgs := make(map[Field]string, len(c.slots))
	for f, s := range c.slots {
		msgs[f] = s.Text()
	}
	return View{Values: c.values, Messages: msgs, Summary: c.summary}
}

func (c *Controller) clear() {
	for _, s := range c.slots {
		s.Set("")
	}
	c.summary = Summary{}
}
