package atom

import (
	"math/rand"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// DefaultPointsPerShell is the cloud density used by the viewer.
const DefaultPointsPerShell = 1500

// Rand is the subset of *rand.Rand the sampler draws from.
type Rand interface {
	// Float32 returns a pseudo-random number in [0, 1).
	Float32() float32
}

// NewCloudRand returns a generator seeded for reproducible clouds.
func NewCloudRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// CloudPoint is one sample of a shell's probability cloud.
type CloudPoint struct {
	Pos   mgl32.Vec3
	Shell int
}

// GenerateCloud samples pointsPerShell points for each of the first
// shellCount shells. Directions are uniform on the unit sphere. Shell 0 fills
// a solid ball of its radius, outer shells a band of 0.8 to 1.2 times theirs.
// The result is ordered by shell and depends only on rng's state.
func GenerateCloud(rng Rand, pointsPerShell, shellCount int) []CloudPoint {
	if pointsPerShell <= 0 || shellCount <= 0 {
		return nil
	}
	points := make([]CloudPoint, 0, pointsPerShell*shellCount)
	for s := 0; s < shellCount; s++ {
		r := ShellRadius(s)
		for i := 0; i < pointsPerShell; i++ {
			u := rng.Float32()
			v := rng.Float32()
			theta := 2 * math32.Pi * u
			phi := math32.Acos(2*v - 1)
			sinPhi := math32.Sin(phi)
			dir := mgl32.Vec3{
				sinPhi * math32.Cos(theta),
				math32.Cos(phi),
				sinPhi * math32.Sin(theta),
			}

			var factor float32
			if s == 0 {
				factor = rng.Float32()
			} else {
				factor = 0.8 + 0.4*rng.Float32()
			}
			points = append(points, CloudPoint{Pos: dir.Mul(factor * r), Shell: s})
		}
	}
	return points
}
