package loop

import (
	"fmt"

	"github.com/tomz197/arena/internal/object"
	"github.com/tomz197/arena/internal/physics"
	"github.com/tomz197/arena/internal/spawn"
)

// resolveContacts finds this tick's overlaps and routes each one.
func (s *Session) resolveContacts() {
	enemies := s.liveEnemies()
	if len(enemies) > 0 {
		s.detector.Overlapping(s.world.Bodies(physics.TagBullet), enemies, s.contact)
		s.detector.Overlapping([]physics.Body{s.player}, enemies, s.contact)
	}
	s.detector.Overlapping([]physics.Body{s.player}, s.world.Bodies(physics.TagPickup), s.contact)
}

func (s *Session) contact(self, other physics.Body) {
	s.HandleContact(physics.NewContact(self, other))
}

func (s *Session) liveEnemies() []physics.Body {
	var out []physics.Body
	s.pool.Each(func(_ spawn.Handle, e *object.Enemy) {
		if e.Alive() {
			out = append(out, e)
		}
	})
	return out
}

// HandleContact routes an overlap notification by the other party's tag.
// Contacts arriving after the simulation stopped are dropped.
func (s *Session) HandleContact(c physics.Contact) {
	if !s.machine.IsSimulationActive() {
		return
	}

	switch self := c.Self.(type) {
	case *object.Projectile:
		if c.OtherTag != physics.TagEnemy {
			return
		}
		enemy, ok := c.Other.(*object.Enemy)
		if !ok || !enemy.Alive() || !self.Hit() {
			return
		}
		if enemy.ApplyDamage(self.Damage()) {
			s.enemyKilled(enemy)
		}

	case *object.Player:
		switch c.OtherTag {
		case physics.TagEnemy:
			enemy, ok := c.Other.(*object.Enemy)
			if !ok {
				return
			}
			if dmg, ok := enemy.Contact(); ok {
				self.ApplyHealthDelta(-dmg)
			}
		case physics.TagPickup:
			pickup, ok := c.Other.(*object.Pickup)
			if !ok || !self.Alive() {
				return
			}
			if hp, ok := pickup.Consume(); ok {
				self.ApplyHealthDelta(hp)
			}
		}
	}
}

// enemyKilled spawns the presentation effects of a kill.
func (s *Session) enemyKilled(e *object.Enemy) {
	pos := e.Position()
	object.SpawnExplosion(s.opts.Rand, pos, explosionParticles, explosionSpeed, explosionLifetime, s.world)
	s.world.Spawn(object.NewFloatingText(pos, fmt.Sprintf("+%d", e.Reward()), rewardTextLifetime))
}
