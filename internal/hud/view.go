package hud

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// View is a Presenter that keeps the latest texts and panel visibility and
// renders them as terminal strings.
type View struct {
	texts   map[Field]string
	visible map[Panel]bool

	bar   lipgloss.Style
	cell  lipgloss.Style
	box   lipgloss.Style
	title lipgloss.Style
	hint  lipgloss.Style
	win   lipgloss.Style
	lose  lipgloss.Style
}

// NewView creates a view drawing with r. A nil renderer uses the default
// one.
func NewView(r *lipgloss.Renderer) *View {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &View{
		texts:   make(map[Field]string),
		visible: map[Panel]bool{PanelHUD: true},

		bar:   r.NewStyle().Bold(true),
		cell:  r.NewStyle().PaddingRight(3),
		box:   r.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 4).Align(lipgloss.Center),
		title: r.NewStyle().Bold(true).MarginBottom(1),
		hint:  r.NewStyle().Faint(true).MarginTop(1),
		win:   r.NewStyle().Foreground(lipgloss.Color("10")),
		lose:  r.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

// NewSessionRenderer returns a renderer for a remote terminal that cannot be
// probed for its color support.
func NewSessionRenderer(w io.Writer) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.ANSI256)
	return r
}

// SetText implements Presenter.
func (v *View) SetText(field Field, text string) {
	v.texts[field] = text
}

// SetVisible implements Presenter.
func (v *View) SetVisible(panel Panel, visible bool) {
	v.visible[panel] = visible
}

// Text returns the current text of field.
func (v *View) Text(field Field) string {
	return v.texts[field]
}

// Visible reports whether panel is shown.
func (v *View) Visible(panel Panel) bool {
	return v.visible[panel]
}

// StatusLine renders the HUD bar, truncated to width. It is empty while the
// HUD panel is hidden.
func (v *View) StatusLine(width int) string {
	if !v.visible[PanelHUD] {
		return ""
	}
	var cells []string
	for _, f := range []Field{FieldScore, FieldTimer, FieldHealth, FieldEnemies} {
		if t := v.texts[f]; t != "" {
			cells = append(cells, v.cell.Render(t))
		}
	}
	line := v.bar.Render(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	if width > 0 && lipgloss.Width(line) > width {
		line = v.bar.MaxWidth(width).Render(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return line
}

// Overlay renders the visible end or pause panel as a bordered box, or ""
// when none is visible. End panels take precedence over the pause panel.
func (v *View) Overlay() string {
	switch {
	case v.visible[PanelVictory]:
		return v.endPanel(v.win.Render("VICTORY"))
	case v.visible[PanelGameOver]:
		return v.endPanel(v.lose.Render("GAME OVER"))
	case v.visible[PanelPaused]:
		return v.box.Render(lipgloss.JoinVertical(lipgloss.Center,
			v.title.Render("PAUSED"),
			"p resume · r restart · q quit",
		))
	}
	return ""
}

func (v *View) endPanel(heading string) string {
	return v.box.Render(lipgloss.JoinVertical(lipgloss.Center,
		v.title.Render(heading),
		v.texts[FieldFinalScore],
		v.texts[FieldFinalTime],
		v.hint.Render("r restart · q quit"),
	))
}

// OverlayLines splits an overlay into rows with their display width.
func OverlayLines(overlay string) ([]string, int) {
	if overlay == "" {
		return nil, 0
	}
	lines := strings.Split(overlay, "\n")
	return lines, lipgloss.Width(overlay)
}
