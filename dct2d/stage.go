package dct2d

import "github.com/cocosip/go-dct-engine/transform"

// stage is one 1D pass of the separable transform: a core plus its scratch
// vectors. The row and column passes are two instances of the same shape,
// differing only in output precision and in which axis feeds vec.
type stage struct {
	core transform.Core
	vec  []int32 // input vector being assembled
	coef []int32 // transformed output vector
}

func newStage(core transform.Core) *stage {
	n := core.Config().N
	return &stage{
		core: core,
		vec:  make([]int32, n),
		coef: make([]int32, n),
	}
}

// transform runs the core on the assembled vector. Core errors cannot occur
// once construction has validated the configuration; a failure here is a
// broken core contract.
func (s *stage) transform() {
	if err := s.core.Transform(s.vec, s.coef); err != nil {
		panic("dct2d: core contract violation: " + err.Error())
	}
}

// reset clears the scratch vectors
func (s *stage) reset() {
	clear(s.vec)
	clear(s.coef)
}
