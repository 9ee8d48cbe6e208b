package signup

// PanelPort toggles modal panel visibility.
type PanelPort interface {
	Show(panel Panel)
	Hide(panel Panel)
}

// OpenModal shows the signup form panel.
func OpenModal(p PanelPort) {
	p.Show(PanelForm)
}

// CloseModal hides the panel holding the close button.
func CloseModal(p PanelPort, panel Panel) {
	p.Hide(panel)
}

// MemoryPanels keeps panel visibility in memory. Every panel starts hidden.
type MemoryPanels struct {
	visible map[Panel]bool
}

func NewMemoryPanels() *MemoryPanels {
	return &MemoryPanels{visible: make(map[Panel]bool)}
}

func (p *MemoryPanels) Show(panel Panel) { p.visible[panel] = true }
func (p *MemoryPanels) Hide(panel Panel) { p.visible[panel] = false }

// Visible reports whether panel is shown.
func (p *MemoryPanels) Visible(panel Panel) bool {
	return p.visible[panel]
}
