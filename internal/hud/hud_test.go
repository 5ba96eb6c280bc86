package hud

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tomz197/arena/internal/event"
)

func newTestController() (*Controller, *View, *event.Bus) {
	bus := event.NewBus()
	view := NewView(NewSessionRenderer(&bytes.Buffer{}))
	return NewController(bus, view, 100), view, bus
}

func TestControllerInitialTexts(t *testing.T) {
	t.Parallel()

	_, view, _ := newTestController()
	assert.Equal(t, "Score: 0", view.Text(FieldScore))
	assert.Equal(t, "HP: 100", view.Text(FieldHealth))
	assert.True(t, view.Visible(PanelHUD))
	assert.False(t, view.Visible(PanelPaused))
}

func TestControllerAccumulatesScore(t *testing.T) {
	t.Parallel()

	_, view, bus := newTestController()
	bus.Publish(event.ScoreAdded, 100)
	bus.Publish(event.ScoreAdded, 50)
	assert.Equal(t, "Score: 150", view.Text(FieldScore))

	bus.Publish(event.PlayerHealthChanged, 35)
	assert.Equal(t, "HP: 35", view.Text(FieldHealth))

	bus.Publish(event.EnemySpawned, 3)
	assert.Equal(t, "Enemies: 3", view.Text(FieldEnemies))
	bus.Publish(event.EnemyDespawned, 2)
	assert.Equal(t, "Enemies: 2", view.Text(FieldEnemies))
}

func TestTimerRunsOnlyWhilePlaying(t *testing.T) {
	t.Parallel()

	c, view, bus := newTestController()
	c.Tick(1)
	assert.Zero(t, c.Elapsed(), "not started until Resumed")

	bus.Publish(event.Resumed, 0)
	c.Tick(0.5)
	c.Tick(0.25)
	assert.Equal(t, 0.75, c.Elapsed())
	assert.Equal(t, "Time: 0.75s", view.Text(FieldTimer))

	bus.Publish(event.Paused, 0)
	assert.True(t, view.Visible(PanelPaused))
	c.Tick(5)
	assert.Equal(t, 0.75, c.Elapsed())

	bus.Publish(event.Resumed, 0)
	assert.False(t, view.Visible(PanelPaused))
	c.Tick(0.25)
	assert.Equal(t, 1.0, c.Elapsed())
}

func TestEndPanelsShowFinalScoreAndTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		signal event.Signal
		panel  Panel
		other  Panel
		title  string
	}{
		{"game over", event.GameOver, PanelGameOver, PanelVictory, "GAME OVER"},
		{"victory", event.Victory, PanelVictory, PanelGameOver, "VICTORY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, view, bus := newTestController()
			bus.Publish(event.Resumed, 0)
			bus.Publish(event.ScoreAdded, 300)
			c.Tick(2.5)
			bus.Publish(tt.signal, 0)

			assert.True(t, view.Visible(tt.panel))
			assert.False(t, view.Visible(tt.other))
			assert.False(t, view.Visible(PanelHUD))
			assert.Equal(t, "Score: 300", view.Text(FieldFinalScore))
			assert.Equal(t, "Time: 2.50s", view.Text(FieldFinalTime))

			c.Tick(1)
			assert.Equal(t, 2.5, c.Elapsed(), "timer stops")

			overlay := view.Overlay()
			assert.Contains(t, overlay, tt.title)
			assert.Contains(t, overlay, "Score: 300")
			assert.Empty(t, view.StatusLine(80))
		})
	}
}

func TestStatusLineListsFields(t *testing.T) {
	t.Parallel()

	_, view, bus := newTestController()
	bus.Publish(event.ScoreAdded, 100)
	line := view.StatusLine(200)
	assert.Contains(t, line, "Score: 100")
	assert.Contains(t, line, "HP: 100")
	assert.Empty(t, view.Overlay())
}

func TestCloseUnsubscribes(t *testing.T) {
	t.Parallel()

	c, view, bus := newTestController()
	c.Close()
	bus.Publish(event.ScoreAdded, 100)
	assert.Equal(t, "Score: 0", view.Text(FieldScore))
	require.Zero(t, bus.Subscribers(event.ScoreAdded))
}
