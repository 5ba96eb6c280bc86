package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Client rendering
const (
	ClientTargetFPS       = 60
	ClientTargetFrameTime = time.Second / ClientTargetFPS
	MaxDeltaTime          = 100 * time.Millisecond // Clamp for long frames (e.g. after a stall)
	MaxTermWidth          = 240
	MaxTermHeight         = 70
)

// Inactivity
const (
	InactivityWarnUser       = 90  // Seconds
	InactivityDisconnectUser = 120 // Seconds
)

// Shutdown
const (
	ShutdownDisplaySeconds = 10.0 // Seconds to show shutdown message before auto-disconnect
	ShutdownTimeout        = 15 * time.Second
)

// Config holds every tunable of a session. See Default for the stock values.
type Config struct {
	Arena   ArenaConfig   `toml:"arena"`
	Player  PlayerConfig  `toml:"player"`
	Enemy   EnemyConfig   `toml:"enemy"`
	Spawner SpawnerConfig `toml:"spawner"`
	Game    GameConfig    `toml:"game"`
	Pickups []PickupSpec  `toml:"pickups"`
	Log     LogConfig     `toml:"log"`
	SSH     SSHConfig     `toml:"ssh"`
	Web     WebConfig     `toml:"web"`
}

// ArenaConfig describes the play field in logical units.
type ArenaConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"` // In sub-pixels, so half as many terminal rows
}

// PlayerConfig holds the player controller tunables.
type PlayerConfig struct {
	Health           int     `toml:"health"`
	Speed            float64 `toml:"speed"`
	Radius           float64 `toml:"radius"`
	Gravity          float64 `toml:"gravity"`
	FireCooldown     float64 `toml:"fire_cooldown"`
	BurstCount       int     `toml:"burst_count"`
	BurstDelay       float64 `toml:"burst_delay"`
	BurstCooldown    float64 `toml:"burst_cooldown"`
	ProjectileSpeed  float64 `toml:"projectile_speed"`
	ProjectileLife   float64 `toml:"projectile_lifetime"`
	ProjectileDamage int     `toml:"projectile_damage"`
}

// EnemyConfig holds per-enemy tunables.
type EnemyConfig struct {
	Health          int     `toml:"health"`
	Speed           float64 `toml:"speed"`
	Radius          float64 `toml:"radius"`
	Reward          int     `toml:"reward"`
	ContactDamage   int     `toml:"contact_damage"`
	ContactCooldown float64 `toml:"contact_cooldown"`
}

// SpawnerConfig holds spawn cadence and difficulty ramp tunables.
type SpawnerConfig struct {
	SpawnInterval      float64      `toml:"spawn_interval"`
	MaxEnemies         int          `toml:"max_enemies"`
	AbsoluteMaxEnemies int          `toml:"absolute_max_enemies"`
	IncreaseInterval   float64      `toml:"increase_interval"`
	IncreaseAmount     int          `toml:"increase_amount"`
	SpawnPoints        [][2]float64 `toml:"spawn_points"`
}

// GameConfig holds win condition tunables.
type GameConfig struct {
	TargetScore int `toml:"target_score"`
}

// PickupSpec places a health pickup in the arena.
type PickupSpec struct {
	X  float64 `toml:"x"`
	Y  float64 `toml:"y"`
	HP int     `toml:"hp"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// SSHConfig configures the SSH host.
type SSHConfig struct {
	Host        string `toml:"host"`
	Port        string `toml:"port"`
	HostKeyPath string `toml:"host_key"`
}

// WebConfig configures the landing page server.
type WebConfig struct {
	Host        string `toml:"host"`
	Port        string `toml:"port"`
	DisplayHost string `toml:"display_host"`
}

// ConfigurationError reports a missing or invalid setting. It is fatal at
// session start.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration: %s: %s", e.Field, e.Reason)
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Arena: ArenaConfig{Width: 120, Height: 80},
		Player: PlayerConfig{
			Health:           100,
			Speed:            20,
			Radius:           2,
			Gravity:          -9.81,
			FireCooldown:     0.25,
			BurstCount:       3,
			BurstDelay:       0.15,
			BurstCooldown:    2,
			ProjectileSpeed:  60,
			ProjectileLife:   2,
			ProjectileDamage: 25,
		},
		Enemy: EnemyConfig{
			Health:          100,
			Speed:           9,
			Radius:          2.5,
			Reward:          100,
			ContactDamage:   10,
			ContactCooldown: 1,
		},
		Spawner: SpawnerConfig{
			SpawnInterval:      2,
			MaxEnemies:         3,
			AbsoluteMaxEnemies: 12,
			IncreaseInterval:   10,
			IncreaseAmount:     1,
			SpawnPoints: [][2]float64{
				{6, 6}, {114, 6}, {6, 74}, {114, 74}, {60, 4}, {60, 76},
			},
		},
		Game: GameConfig{TargetScore: 1000},
		Pickups: []PickupSpec{
			{X: 30, Y: 40, HP: 25},
			{X: 90, Y: 40, HP: 25},
		},
		Log: LogConfig{Level: "info"},
		SSH: SSHConfig{Host: "::", Port: "2222", HostKeyPath: ".ssh/arena_host_key"},
		Web: WebConfig{Host: "0.0.0.0", Port: "8080", DisplayHost: "your-server.com"},
	}
}

// Load reads a TOML file over the defaults and validates the result.
// An empty path returns the validated defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, cfg.Validate()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(string(data))
}

// Parse decodes TOML text over the defaults and validates the result.
func Parse(text string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(text, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, &ConfigurationError{Field: strings.Join(keys, ","), Reason: "unknown key"}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// FromEnv loads the file named by ARENA_CONFIG (if any) and applies the
// environment overrides.
func FromEnv() (Config, error) {
	cfg, err := Load(GetEnv("ARENA_CONFIG", ""))
	if err != nil {
		return Config{}, err
	}
	cfg.Log.Level = GetEnv("ARENA_LOG_LEVEL", cfg.Log.Level)
	cfg.Log.File = GetEnv("ARENA_LOG_FILE", cfg.Log.File)
	cfg.SSH.Host = GetEnv("SSH_HOST", cfg.SSH.Host)
	cfg.SSH.Port = GetEnv("SSH_PORT", cfg.SSH.Port)
	cfg.SSH.HostKeyPath = GetEnv("SSH_HOST_KEY", cfg.SSH.HostKeyPath)
	cfg.Web.Host = GetEnv("WEB_HOST", cfg.Web.Host)
	cfg.Web.Port = GetEnv("WEB_PORT", cfg.Web.Port)
	cfg.Web.DisplayHost = GetEnv("SSH_DISPLAY_HOST", cfg.Web.DisplayHost)
	cfg.Game.TargetScore = GetEnvInt("ARENA_TARGET_SCORE", cfg.Game.TargetScore)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the invariants the simulation relies on.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, field, reason string) {
		if !ok {
			errs = append(errs, &ConfigurationError{Field: field, Reason: reason})
		}
	}

	check(c.Arena.Width > 0 && c.Arena.Height > 0, "arena", "width and height must be positive")

	check(c.Player.Health > 0, "player.health", "must be positive")
	check(c.Player.Speed >= 0, "player.speed", "must not be negative")
	check(c.Player.FireCooldown >= 0, "player.fire_cooldown", "must not be negative")
	check(c.Player.BurstCount >= 1, "player.burst_count", "must be at least 1")
	check(c.Player.BurstDelay >= 0, "player.burst_delay", "must not be negative")
	check(c.Player.BurstCooldown >= 0, "player.burst_cooldown", "must not be negative")
	check(c.Player.ProjectileLife > 0, "player.projectile_lifetime", "must be positive")

	check(c.Enemy.Health > 0, "enemy.health", "must be positive")
	check(c.Enemy.Speed >= 0, "enemy.speed", "must not be negative")
	check(c.Enemy.Reward >= 0, "enemy.reward", "must not be negative")

	s := c.Spawner
	check(s.SpawnInterval > 0, "spawner.spawn_interval", "must be positive")
	check(s.MaxEnemies >= 0, "spawner.max_enemies", "must not be negative")
	check(s.AbsoluteMaxEnemies >= s.MaxEnemies, "spawner.absolute_max_enemies", "must be >= max_enemies")
	check(s.IncreaseInterval > 0, "spawner.increase_interval", "must be positive")
	check(s.IncreaseAmount >= 0, "spawner.increase_amount", "must not be negative")
	check(len(s.SpawnPoints) > 0, "spawner.spawn_points", "at least one spawn point is required")

	check(c.Game.TargetScore > 0, "game.target_score", "must be positive")

	for i, p := range c.Pickups {
		check(p.HP > 0, fmt.Sprintf("pickups[%d].hp", i), "must be positive")
	}

	return errors.Join(errs...)
}
