package event

// Signal names a gameplay notification.
type Signal string

const (
	ScoreAdded          Signal = "ScoreAdded"          // Value: amount added
	ScoreTargetReached  Signal = "ScoreTargetReached"  // Value: score at the time
	PlayerHealthChanged Signal = "PlayerHealthChanged" // Value: current health
	PlayerDied          Signal = "PlayerDied"
	EnemySpawned        Signal = "EnemySpawned"   // Value: live enemies after spawn
	EnemyDespawned      Signal = "EnemyDespawned" // Value: live enemies after release
	EnemyDied           Signal = "EnemyDied"      // Value: reward granted
	Paused              Signal = "Paused"
	Resumed             Signal = "Resumed"
	GameOver            Signal = "GameOver"
	Victory             Signal = "Victory"
)

// Event is a published signal with an optional integer payload.
type Event struct {
	Signal Signal
	Value  int
}
