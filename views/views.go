// Package views renders the page and its patchable regions.
//
// Components wrap html/template definitions embedded from templates/, so
// every region is rendered by the same template whether it is part of the
// full page or sent alone as a DataStar patch.
package views

import (
	"embed"
	"html/template"
	"io/fs"
	"net/url"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/pagekit/handler"
	"github.com/dmitrymomot/pagekit/modules/page"
	"github.com/dmitrymomot/pagekit/modules/signup"
	"github.com/dmitrymomot/pagekit/modules/widgets"
)

var (
	//go:embed templates/*.html
	templateFS embed.FS

	//go:embed static
	staticFS embed.FS

	templates = template.Must(template.New("views").ParseFS(templateFS, "templates/*.html"))
)

// Static returns the embedded assets rooted at the static directory.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

type fieldView struct {
	ID      signup.Field
	Label   string
	Type    string
	Value   string
	Message string
}

type formView struct {
	Fields  []fieldView
	Summary signup.Summary
}

type optionView struct {
	Name      string
	SelectURL string
	KeyURL    string
}

type dropdownView struct {
	widgets.DropdownView
	Options []optionView
}

type pageView struct {
	Meta page.Meta
	Page pageWidgets
	Form formView
}

type pageWidgets struct {
	widgets.Snapshot
	Dropdown dropdownView
}

var fieldMeta = map[signup.Field]struct{ label, typ string }{
	signup.FieldName:     {"Name", "text"},
	signup.FieldEmail:    {"Email", "email"},
	signup.FieldPassword: {"Password", "password"},
	signup.FieldConfirm:  {"Confirm password", "password"},
}

func render(name string, data any) templ.Component {
	return templ.FromGoHTML(templates.Lookup(name), data)
}

// Page is the complete document.
func Page(s widgets.Snapshot, meta page.Meta) templ.Component {
	return render("page", pageView{
		Meta: meta,
		Page: pageWidgets{Snapshot: s, Dropdown: newDropdownView(s.Dropdown)},
		Form: newFormView(s.Signup),
	})
}

func EventMessage(v widgets.EventView) templ.Component {
	return render("event_msg", v)
}

func ThemeToggle(v widgets.ThemeView) templ.Component {
	return render("theme_toggle", v)
}

func Counter(v widgets.CounterView) templ.Component {
	return render("counter", v)
}

func FAQItem(v widgets.FAQView) templ.Component {
	return render("faq_item", v)
}

func Dropdown(v widgets.DropdownView) templ.Component {
	return render("dropdown", newDropdownView(v))
}

func Tabs(v []widgets.TabView) templ.Component {
	return render("tabs", v)
}

// SignupForm renders the whole form including the current values.
func SignupForm(v signup.View) templ.Component {
	return render("signup_form", newFormView(v))
}

// FieldError renders the message slot of one field.
func FieldError(f signup.Field, message string) templ.Component {
	return render("field_error", fieldView{ID: f, Message: message})
}

func FormFeedback(s signup.Summary) templ.Component {
	return render("form_feedback", s)
}

func ErrorToast(p handler.ErrorToastParams) templ.Component {
	return render("toast", p)
}

func ErrorPage(p handler.ErrorPageParams) templ.Component {
	return render("error_page", p)
}

func newFormView(v signup.View) formView {
	fv := formView{Summary: v.Summary}
	for _, f := range signup.Fields() {
		m := fieldMeta[f]
		fv.Fields = append(fv.Fields, fieldView{
			ID:      f,
			Label:   m.label,
			Type:    m.typ,
			Value:   v.Values.Get(f),
			Message: v.Messages[f],
		})
	}
	return fv
}

func newDropdownView(v widgets.DropdownView) dropdownView {
	dv := dropdownView{DropdownView: v}
	for _, opt := range v.Options {
		escaped := url.PathEscape(opt)
		dv.Options = append(dv.Options, optionView{
			Name:      opt,
			SelectURL: "/dropdown/select/" + escaped,
			KeyURL:    "/dropdown/key/" + escaped,
		})
	}
	return dv
}
