package object

import (
	"time"

	"github.com/tomz197/arena/internal/config"
	"github.com/tomz197/arena/internal/event"
	"github.com/tomz197/arena/internal/physics"
)

type collector struct {
	objects []Object
}

func (c *collector) Spawn(obj Object) {
	c.objects = append(c.objects, obj)
}

func (c *collector) projectiles() []*Projectile {
	var out []*Projectile
	for _, o := range c.objects {
		if p, ok := o.(*Projectile); ok {
			out = append(out, p)
		}
	}
	return out
}

type recorder struct {
	events []event.Event
}

func (r *recorder) listen(bus *event.Bus, signals ...event.Signal) {
	for _, s := range signals {
		bus.MustSubscribe(s, func(e event.Event) {
			r.events = append(r.events, e)
		})
	}
}

func (r *recorder) count(signal event.Signal) int {
	n := 0
	for _, e := range r.events {
		if e.Signal == signal {
			n++
		}
	}
	return n
}

var testArena = Arena{Width: 100, Height: 100}

func step(seconds float64) UpdateContext {
	return UpdateContext{
		Delta: time.Duration(seconds * float64(time.Second)),
		Arena: testArena,
	}
}

func testPlayerConfig() config.PlayerConfig {
	cfg := config.Default().Player
	cfg.Health = 50
	cfg.Speed = 10
	cfg.FireCooldown = 0.5
	cfg.BurstCount = 3
	cfg.BurstDelay = 0.25
	cfg.BurstCooldown = 1
	return cfg
}

func newTestPlayer() (*Player, *collector, *recorder) {
	bus := event.NewBus()
	rec := &recorder{}
	rec.listen(bus, event.PlayerHealthChanged, event.PlayerDied)
	shots := &collector{}
	p := NewPlayer(testPlayerConfig(), testArena, physics.Vec2{X: 50, Y: 50}, bus, shots)
	return p, shots, rec
}
