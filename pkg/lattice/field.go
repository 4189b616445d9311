package lattice

import (
	"math"
	"math/rand"
)

// Components is the number of field components stored per lattice site.
const Components = 4

// Field is a single gauge-field configuration over the full lattice volume,
// logical shape (T, L, L, L, Components) flattened into one slice with the
// temporal index slowest. Flattening keeps slab operations (freeze, perturb,
// time slice) simple contiguous-range copies.
type Field struct {
	t, l int
	data []float64
}

// NewField allocates a zero-valued configuration for the given geometry.
func NewField(cfg Config) *Field {
	return &Field{
		t:    cfg.T,
		l:    cfg.L,
		data: make([]float64, cfg.T*cfg.L*cfg.L*cfg.L*Components),
	}
}

// GenerateField draws a fresh configuration with every component sampled
// independently from N(0, 1/sqrt(Beta)). Beta must be positive. The caller
// owns rng; it must not be nil.
func GenerateField(cfg Config, rng *rand.Rand) *Field {
	field := NewField(cfg)
	sigma := 1.0 / math.Sqrt(cfg.Beta)
	for i := range field.data {
		field.data[i] = rng.NormFloat64() * sigma
	}
	return field
}

// T returns the temporal extent of the configuration.
func (f *Field) T() int {
	return f.t
}

// L returns the spatial extent of the configuration.
func (f *Field) L() int {
	return f.l
}

// Len returns the total number of stored components.
func (f *Field) Len() int {
	return len(f.data)
}

// SliceLen returns the number of components per time slice, L^3*Components.
func (f *Field) SliceLen() int {
	return f.l * f.l * f.l * Components
}

// TimeSlice returns the components of time slice t as a view into the
// configuration, not a copy. Mutating the returned slice mutates the field.
func (f *Field) TimeSlice(t int) []float64 {
	size := f.SliceLen()
	return f.data[t*size : (t+1)*size]
}

// Copy returns a deep copy of the configuration.
func (f *Field) Copy() *Field {
	clone := &Field{
		t:    f.t,
		l:    f.l,
		data: make([]float64, len(f.data)),
	}
	copy(clone.data, f.data)
	return clone
}

// PerturbSlab adds N(0, sigma) noise to every component of time slices
// [tFrom, tTo). Out-of-range bounds are clamped to the lattice; an empty
// range is a no-op.
func (f *Field) PerturbSlab(tFrom, tTo int, sigma float64, rng *rand.Rand) {
	if tFrom < 0 {
		tFrom = 0
	}
	if tTo > f.t {
		tTo = f.t
	}
	if tFrom >= tTo {
		return
	}
	size := f.SliceLen()
	slab := f.data[tFrom*size : tTo*size]
	for i := range slab {
		slab[i] += rng.NormFloat64() * sigma
	}
}
