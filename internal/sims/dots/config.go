package dots

import "strconv"

// Spawn layouts for initial dot directions.
const (
	SpawnUniform = "uniform"
	SpawnPerlin  = "perlin"
)

// Params holds the motion constants of the universe.
type Params struct {
	// Friction removes this fraction of a dot's speed per second.
	Friction float32
	// Drag removes this constant amount of speed per second.
	Drag float32
	// Kick is the speed added to a dot sitting right next to an event.
	Kick float32
	// Speed bounds the initial speed of a dot.
	Speed float32
}

// Config controls how a Universe is seeded and moved.
type Config struct {
	Seed  int64
	Spawn string

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Seed:  42,
		Spawn: SpawnUniform,
		Params: Params{
			Friction: 0.35,
			Drag:     0.1,
			Kick:     50,
			Speed:    10,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["spawn"]; ok {
		switch v {
		case SpawnUniform, SpawnPerlin:
			c.Spawn = v
		}
	}
	if v, ok := cfg["friction"]; ok {
		if parsed, err := strconv.ParseFloat(v, 32); err == nil && parsed >= 0 {
			c.Params.Friction = float32(parsed)
		}
	}
	if v, ok := cfg["drag"]; ok {
		if parsed, err := strconv.ParseFloat(v, 32); err == nil && parsed >= 0 {
			c.Params.Drag = float32(parsed)
		}
	}
	if v, ok := cfg["kick"]; ok {
		if parsed, err := strconv.ParseFloat(v, 32); err == nil && parsed >= 0 {
			c.Params.Kick = float32(parsed)
		}
	}
	if v, ok := cfg["speed"]; ok {
		if parsed, err := strconv.ParseFloat(v, 32); err == nil && parsed >= 0 {
			c.Params.Speed = float32(parsed)
		}
	}
	return c
}
