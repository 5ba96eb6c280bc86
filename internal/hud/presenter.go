// Package hud is the presentation layer: a text/panel presenter rendered with
// lipgloss and the controller that keeps it in sync with gameplay signals.
package hud

// Field is a text slot the presenter shows.
type Field int

const (
	FieldScore Field = iota
	FieldTimer
	FieldHealth
	FieldEnemies
	FieldFinalScore
	FieldFinalTime
)

// Panel is a togglable group of widgets.
type Panel int

const (
	PanelHUD Panel = iota
	PanelPaused
	PanelGameOver
	PanelVictory
)

func (p Panel) String() string {
	switch p {
	case PanelHUD:
		return "hud"
	case PanelPaused:
		return "paused"
	case PanelGameOver:
		return "gameover"
	case PanelVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// Presenter is what gameplay code may ask of the UI.
type Presenter interface {
	SetText(field Field, text string)
	SetVisible(panel Panel, visible bool)
}
