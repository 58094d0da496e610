package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

// TemplComponent matches templ.Component.
type TemplComponent interface {
	Render(ctx context.Context, w io.Writer) error
}

type TemplOption = datastar.PatchElementOption

// WithTarget sets the CSS selector the patch applies to.
func WithTarget(selector string) TemplOption {
	return datastar.WithSelector(selector)
}

func WithPatchMode(mode datastar.ElementPatchMode) TemplOption {
	return datastar.WithMode(mode)
}

// TemplPatch is one element patch.
type TemplPatch struct {
	Component TemplComponent
	Options   []TemplOption
}

func Patch(component TemplComponent, opts ...TemplOption) TemplPatch {
	return TemplPatch{Component: component, Options: opts}
}

type templResponse struct {
	component TemplComponent
	options   []TemplOption
	status    int
}

func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		return NewSSE(w, r).PatchElementTempl(t.component, t.options...)
	}
	return renderHTML(w, r, t.component, t.status)
}

// Templ renders component as an SSE patch for DataStar requests and as
// HTML otherwise.
func Templ(component TemplComponent, opts ...TemplOption) Response {
	return templResponse{component: component, options: opts, status: http.StatusOK}
}

// PatchSetResponse is built by PatchSet.
type PatchSetResponse struct {
	full    TemplComponent
	patches []TemplPatch
	signals any
}

// PatchSet answers DataStar requests with the given element patches and
// other requests with the full component.
func PatchSet(full TemplComponent, patches ...TemplPatch) *PatchSetResponse {
	return &PatchSetResponse{full: full, patches: patches}
}

// WithSignals adds a signal patch sent before the element patches. v is
// marshalled to JSON.
func (p *PatchSetResponse) WithSignals(v any) *PatchSetResponse {
	p.signals = v
	return p
}

func (p *PatchSetResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if !IsDataStar(r) {
		if p.full == nil {
			w.WriteHeader(http.StatusNoContent)
			return nil
		}
		return renderHTML(w, r, p.full, http.StatusOK)
	}

	sse := NewSSE(w, r)
	if p.signals != nil {
		payload, err := json.Marshal(p.signals)
		if err != nil {
			return fmt.Errorf("marshal signals: %w", err)
		}
		if err := sse.PatchSignals(payload); err != nil {
			return err
		}
	}
	for _, patch := range p.patches {
		if err := sse.PatchElementTempl(patch.Component, patch.Options...); err != nil {
			return err
		}
	}
	return nil
}

func renderHTML(w http.ResponseWriter, r *http.Request, component TemplComponent, status int) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if status != 0 && status != http.StatusOK {
		w.WriteHeader(status)
	}
	return component.Render(r.Context(), w)
}
