package page

import (
	"strings"

	"github.com/dmitrymomot/pagekit/handler"
	"github.com/dmitrymomot/pagekit/modules/signup"
	"github.com/dmitrymomot/pagekit/modules/widgets"
)

// render answers with one patch per changed region, or the full page for
// non-DataStar requests.
func (s *Service) render(ctx handler.Context, snap widgets.Snapshot, regions []widgets.Region) handler.Response {
	var patches []handler.TemplPatch
	var signals map[string]any

	for _, region := range regions {
		switch region {
		case widgets.RegionEventMessage:
			patches = append(patches, handler.Patch(s.views.EventMessage(snap.Event)))
		case widgets.RegionTheme:
			patches = append(patches, handler.Patch(s.views.ThemeToggle(snap.Theme)))
			signals = map[string]any{"darkMode": snap.Theme.Dark}
		case widgets.RegionCounter:
			patches = append(patches, handler.Patch(s.views.Counter(snap.Counter)))
		case widgets.RegionDropdown:
			patches = append(patches, handler.Patch(s.views.Dropdown(snap.Dropdown)))
		case widgets.RegionTabs:
			patches = append(patches, handler.Patch(s.views.Tabs(snap.Tabs)))
		case widgets.RegionSignupForm:
			patches = append(patches, handler.Patch(s.views.SignupForm(snap.Signup)))
		case widgets.RegionSignupFeedback:
			for _, f := range signup.Fields() {
				patches = append(patches, handler.Patch(s.views.FieldError(f, snap.Signup.Messages[f])))
			}
			patches = append(patches, handler.Patch(s.views.FormFeedback(snap.Signup.Summary)))
		default:
			if id, ok := strings.CutPrefix(string(region), "faq-"); ok {
				if item, found := snap.FAQItem(id); found {
					patches = append(patches, handler.Patch(s.views.FAQItem(item)))
				}
			}
		}
	}

	resp := handler.PatchSet(s.views.Page(snap, s.meta(ctx)), patches...)
	if signals != nil {
		resp = resp.WithSignals(signals)
	}
	return resp
}
