package widgets_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/pagekit/modules/widgets"
)

func TestEventButton(t *testing.T) {
	t.Parallel()
	var b widgets.EventButton

	assert.False(t, b.Visible())
	b.Click()
	assert.Equal(t, "Button clicked! 🎉", b.Message())
	assert.True(t, b.Visible())

	b.MouseOver()
	assert.Equal(t, "Mouse over the button! 👀", b.Message())

	b.MouseOut()
	assert.False(t, b.Visible())
	assert.Equal(t, "Mouse over the button! 👀", b.Message(), "mouseout keeps the text")
}

func TestTheme(t *testing.T) {
	t.Parallel()
	var th widgets.Theme

	assert.Equal(t, "Toggle Dark Mode", th.Label())
	assert.Empty(t, th.BodyClass())

	th.Toggle()
	assert.True(t, th.Dark())
	assert.Equal(t, "Toggle Light Mode", th.Label())
	assert.Equal(t, "dark-mode", th.BodyClass())

	th.Toggle()
	assert.False(t, th.Dark())
	assert.Equal(t, "Toggle Dark Mode", th.Label())
}

func TestCounterTone(t *testing.T) {
	t.Parallel()
	var c widgets.Counter

	for range 10 {
		c.Increment()
	}
	assert.Equal(t, 10, c.Value())
	assert.Equal(t, widgets.ToneNeutral, c.Tone())

	c.Increment()
	assert.Equal(t, widgets.ToneGreen, c.Tone())

	c.Reset()
	assert.Equal(t, 0, c.Value())
	for range 10 {
		c.Decrement()
	}
	assert.Equal(t, widgets.ToneNeutral, c.Tone())
	c.Decrement()
	assert.Equal(t, -11, c.Value())
	assert.Equal(t, widgets.ToneRed, c.Tone())
}

func TestAccordion(t *testing.T) {
	t.Parallel()
	a := widgets.NewAccordion(widgets.DefaultFAQ()...)

	assert.False(t, a.Expanded("what"))
	require.NoError(t, a.Toggle("what"))
	assert.True(t, a.Expanded("what"))
	assert.False(t, a.Expanded("theme"), "items toggle independently")
	require.NoError(t, a.Toggle("what"))
	assert.False(t, a.Expanded("what"))

	assert.ErrorIs(t, a.Toggle("missing"), widgets.ErrUnknownItem)
}

func TestDropdown(t *testing.T) {
	t.Parallel()

	t.Run("toggle and outside", func(t *testing.T) {
		t.Parallel()
		d := widgets.NewDropdown("Option 1", "Option 2")
		assert.False(t, d.Open())
		d.Toggle()
		assert.True(t, d.Open())
		d.Outside()
		assert.False(t, d.Open())
		d.Outside()
		assert.False(t, d.Open())
	})

	t.Run("select", func(t *testing.T) {
		t.Parallel()
		d := widgets.NewDropdown("Option 1", "Option 2")
		assert.Equal(t, "Select an option ▼", d.Label())
		d.Toggle()
		require.NoError(t, d.Select("Option 2"))
		assert.Equal(t, "Option 2", d.Selected())
		assert.Equal(t, "Option 2 ▼", d.Label())
		assert.False(t, d.Open())
		assert.ErrorIs(t, d.Select("Option 9"), widgets.ErrUnknownOption)
	})

	t.Run("keyboard", func(t *testing.T) {
		t.Parallel()
		d := widgets.NewDropdown("Option 1", "Option 2")
		d.Toggle()

		ok, err := d.Key("Option 1", "a")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.True(t, d.Open())
		assert.Empty(t, d.Selected())

		ok, err = d.Key("Option 1", "Enter")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "Option 1", d.Selected())
		assert.False(t, d.Open())

		ok, err = d.Key("Option 2", " ")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "Option 2 ▼", d.Label())

		_, err = d.Key("nope", "Enter")
		assert.ErrorIs(t, err, widgets.ErrUnknownOption)
	})
}

func TestTabs(t *testing.T) {
	t.Parallel()
	tabs := widgets.NewTabs(widgets.DefaultTabs()...)

	assert.Equal(t, "tab1", tabs.Active())
	require.NoError(t, tabs.Activate("tab3"))
	assert.Equal(t, "tab3", tabs.Active())
	assert.ErrorIs(t, tabs.Activate("tab9"), widgets.ErrUnknownTab)
	assert.Equal(t, "tab3", tabs.Active(), "failed activation keeps the current tab")

	assert.Empty(t, widgets.NewTabs().Active())
}
