package dots

import (
	"math"

	"dots/pkg/rng"

	"github.com/aquilax/go-perlin"
)

const (
	perlinAlpha  = 2.0
	perlinBeta   = 2.0
	perlinOctave = 3
	perlinScale  = 0.01
)

// spawn places n dots uniformly over the surface. Initial directions either
// point along a random diagonal or follow a perlin flow field.
func spawn(w, h, n int, cfg Config) []Dot {
	r := rng.New(cfg.Seed)
	fw, fh := float32(w), float32(h)
	dots := make([]Dot, n)

	var field *perlin.Perlin
	if cfg.Spawn == SpawnPerlin {
		field = perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctave, cfg.Seed)
	}

	for i := range dots {
		pos := Vec2{r.Range(fw), r.Range(fh)}
		var dir Vec2
		if field != nil {
			angle := field.Noise2D(float64(pos.X)*perlinScale, float64(pos.Y)*perlinScale) * 2 * math.Pi
			dir = Vec2{float32(math.Cos(angle)), float32(math.Sin(angle))}
		} else {
			diag := Vec2{r.Range(fw), r.Range(fh)}
			dir = diag.Scale(r.Signed()).Normalized()
		}
		dots[i] = Dot{Pos: pos, Dir: dir.Scale(r.Float32() * cfg.Params.Speed)}
	}
	return dots
}
