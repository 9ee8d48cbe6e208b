package web

import (
	"github.com/dmitrymomot/gameon/handler"
	"github.com/dmitrymomot/gameon/internal/signup"
)

// PageState is everything a render needs: form values, displayed errors and
// panel visibility.
type PageState struct {
	Form   signup.Form
	Errors map[signup.FieldID]signup.ErrorState
	Panels map[signup.Panel]bool
}

func (s PageState) errorOf(field signup.FieldID) signup.ErrorState {
	return s.Errors[field]
}

func (s PageState) visible(panel signup.Panel) bool {
	return s.Panels[panel]
}

// signals is the Datastar store matching the rendered panels.
func (s PageState) signals() map[string]any {
	return map[string]any{
		"panels": map[string]bool{
			string(signup.PanelForm):   s.visible(signup.PanelForm),
			string(signup.PanelThanks): s.visible(signup.PanelThanks),
		},
	}
}

// panelRecorder is the request-scoped PanelPort.
type panelRecorder struct {
	visible map[signup.Panel]bool
}

func newPanelRecorder() *panelRecorder {
	return &panelRecorder{visible: make(map[signup.Panel]bool)}
}

func (p *panelRecorder) Show(panel signup.Panel) { p.visible[panel] = true }
func (p *panelRecorder) Hide(panel signup.Panel) { p.visible[panel] = false }

// signals holds only the panels touched during the request so the client
// store keeps the others.
func (p *panelRecorder) signals() map[string]any {
	panels := make(map[string]bool, len(p.visible))
	for panel, v := range p.visible {
		panels[string(panel)] = v
	}
	return map[string]any{"panels": panels}
}

// recorder collects what the engine did during one request.
type recorder struct {
	display *signup.MemoryDisplay
	panels  *panelRecorder
}

func newRecorder() *recorder {
	return &recorder{
		display: signup.NewMemoryDisplay(),
		panels:  newPanelRecorder(),
	}
}

// touched lists the blocks whose display was shown or cleared, in call order.
func (r *recorder) touched() []string {
	var blocks []string
	seen := make(map[string]bool)
	for _, call := range r.display.Calls() {
		b := blockOf(call.Field)
		if !seen[b] {
			seen[b] = true
			blocks = append(blocks, b)
		}
	}
	return blocks
}

// fieldPatches renders one element patch per touched block.
func (r *recorder) fieldPatches(state PageState) []handler.TemplPatch {
	blocks := r.touched()
	patches := make([]handler.TemplPatch, 0, len(blocks))
	for _, b := range blocks {
		patches = append(patches, handler.Patch(FieldBlock(b, state)))
	}
	return patches
}
