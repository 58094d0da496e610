package widgets

// CounterTone colours the counter value.
type CounterTone string

const (
	ToneNeutral CounterTone = ""
	ToneGreen   CounterTone = "green"
	ToneRed     CounterTone = "red"
)

const (
	counterHigh = 10
	counterLow  = -10
)

type Counter struct {
	value int
}

func (c *Counter) Increment() { c.value++ }
func (c *Counter) Decrement() { c.value-- }
func (c *Counter) Reset()     { c.value = 0 }

func (c *Counter) Value() int { return c.value }

// Tone is green above 10, red below -10 and neutral in between.
func (c *Counter) Tone() CounterTone {
	switch {
	case c.value > counterHigh:
		return ToneGreen
	case c.value < counterLow:
		return ToneRed
	default:
		return ToneNeutral
	}
}
