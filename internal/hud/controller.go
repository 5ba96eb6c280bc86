package hud

import (
	"fmt"

	"github.com/tomz197/arena/internal/event"
)

// Controller keeps a Presenter in sync with the session: the score and
// health texts, the live enemy count, a session timer that only runs while
// playing, and the pause and end panels.
type Controller struct {
	bus     *event.Bus
	view    Presenter
	subs    []event.Subscription
	score   int
	elapsed float64
	running bool
}

// NewController subscribes to bus and initialises view. The timer starts on
// the first Resumed signal, which the state machine emits when it starts.
func NewController(bus *event.Bus, view Presenter, health int) *Controller {
	c := &Controller{bus: bus, view: view}

	c.on(event.ScoreAdded, func(e event.Event) {
		c.score += e.Value
		c.view.SetText(FieldScore, scoreText(c.score))
	})
	c.on(event.PlayerHealthChanged, func(e event.Event) {
		c.view.SetText(FieldHealth, fmt.Sprintf("HP: %d", e.Value))
	})
	c.on(event.EnemySpawned, c.enemies)
	c.on(event.EnemyDespawned, c.enemies)
	c.on(event.Paused, func(event.Event) {
		c.running = false
		c.view.SetVisible(PanelPaused, true)
	})
	c.on(event.Resumed, func(event.Event) {
		c.running = true
		c.view.SetVisible(PanelPaused, false)
	})
	c.on(event.GameOver, func(event.Event) { c.finish(PanelGameOver) })
	c.on(event.Victory, func(event.Event) { c.finish(PanelVictory) })

	view.SetVisible(PanelHUD, true)
	view.SetVisible(PanelPaused, false)
	view.SetVisible(PanelGameOver, false)
	view.SetVisible(PanelVictory, false)
	view.SetText(FieldScore, scoreText(0))
	view.SetText(FieldTimer, timerText(0))
	view.SetText(FieldHealth, fmt.Sprintf("HP: %d", health))
	view.SetText(FieldEnemies, "Enemies: 0")
	return c
}

func (c *Controller) on(signal event.Signal, h event.Handler) {
	c.subs = append(c.subs, c.bus.MustSubscribe(signal, h))
}

func (c *Controller) enemies(e event.Event) {
	c.view.SetText(FieldEnemies, fmt.Sprintf("Enemies: %d", e.Value))
}

func (c *Controller) finish(panel Panel) {
	c.running = false
	c.view.SetVisible(PanelHUD, false)
	c.view.SetVisible(PanelPaused, false)
	c.view.SetVisible(panel, true)
	c.view.SetText(FieldFinalScore, scoreText(c.score))
	c.view.SetText(FieldFinalTime, timerText(c.elapsed))
}

// Tick advances the session timer by dt seconds while playing.
func (c *Controller) Tick(dt float64) {
	if !c.running || dt <= 0 {
		return
	}
	c.elapsed += dt
	c.view.SetText(FieldTimer, timerText(c.elapsed))
}

// Elapsed returns the timer value in seconds.
func (c *Controller) Elapsed() float64 { return c.elapsed }

// Running reports whether the timer advances.
func (c *Controller) Running() bool { return c.running }

// Close drops the controller's subscriptions.
func (c *Controller) Close() {
	for _, s := range c.subs {
		_ = c.bus.Unsubscribe(s)
	}
	c.subs = nil
}

func scoreText(score int) string { return fmt.Sprintf("Score: %d", score) }

func timerText(seconds float64) string { return fmt.Sprintf("Time: %.2fs", seconds) }
