package dice

import (
	"io"
	"math/rand/v2"
	"time"
)

// Source supplies the randomness used for faces and die IDs.
type Source interface {
	io.Reader

	// IntN returns a uniform int in [0, n).
	IntN(n int) int
}

type pcgSource struct {
	r *rand.Rand
}

// NewSource returns a PCG-backed Source. A zero seed seeds from the clock.
func NewSource(seed uint64) Source {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &pcgSource{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *pcgSource) IntN(n int) int {
	return s.r.IntN(n)
}

func (s *pcgSource) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(s.r.Uint32())
	}
	return len(p), nil
}

// rollFace returns a uniform face value in [1, Faces].
func rollFace(src Source) int {
	return src.IntN(Faces) + 1
}
