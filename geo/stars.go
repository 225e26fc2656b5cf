package geo

import (
	"math"
	"math/rand"

	"github.com/lixenwraith/globe/vmath"
)

// Star field parameters. The seed and the exact draw order below are a
// reproducibility contract: tests compare generated sequences across
// runs, so neither may change.
const (
	StarCount     = 4000
	StarSeed      = 42
	StarRadiusMin = 9.0
	StarRadiusMax = 12.0
	StarBrightMin = 0.3
	StarBrightMax = 1.0
)

// StarRecord is one background star on the outer shell
type StarRecord struct {
	Pos   vmath.Vec3
	Color RGB
}

// GenerateStars produces the fixed star point cloud. Positions use
// inverse-transform sampling: theta uniform over [0,2pi) and
// phi = acos(2u-1), which is uniform over the sphere surface rather than
// bunched at the poles the way uniform angles would be. Per star the
// draws are theta, u, radius, brightness, in that order, from a single
// seeded source.
func GenerateStars() []StarRecord {
	rng := rand.New(rand.NewSource(StarSeed))
	stars := make([]StarRecord, 0, StarCount)
	for i := 0; i < StarCount; i++ {
		theta := rng.Float64() * 2 * math.Pi
		phi := math.Acos(2*rng.Float64() - 1)
		r := StarRadiusMin + rng.Float64()*(StarRadiusMax-StarRadiusMin)
		b := StarBrightMin + rng.Float64()*(StarBrightMax-StarBrightMin)
		sinPhi := math.Sin(phi)
		stars = append(stars, StarRecord{
			Pos: vmath.Vec3{
				X: r * sinPhi * math.Cos(theta),
				Y: r * math.Cos(phi),
				Z: r * sinPhi * math.Sin(theta),
			},
			Color: RGB{
				R: uint8(b * 0.85 * 255),
				G: uint8(b * 0.9 * 255),
				B: uint8(b * 255),
			},
		})
	}
	return stars
}
