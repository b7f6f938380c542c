package material

import (
	"github.com/akobel/weekend-tracer/pkg/core"
)

// stubSampler returns a fixed sequence of values, cycling when exhausted.
// Lets tests force specific scatter outcomes.
type stubSampler struct {
	values []float64
	index  int
}

func newStubSampler(values ...float64) *stubSampler {
	return &stubSampler{values: values}
}

func (s *stubSampler) next() float64 {
	v := s.values[s.index%len(s.values)]
	s.index++
	return v
}

func (s *stubSampler) Get1D() float64 {
	return s.next()
}

func (s *stubSampler) Get2D() core.Vec2 {
	return core.NewVec2(s.next(), s.next())
}

func (s *stubSampler) Get3D() core.Vec3 {
	return core.NewVec3(s.next(), s.next(), s.next())
}
