package planar

import (
	"fmt"

	"github.com/mitchellh/hashstructure/v2"
)

// Hash returns a structural hash of the matrix. Equal matrices hash
// equal, so the hash can key interning tables such as transform.Pool.
func (m Matrix[T]) Hash() uint64 {
	hashed, err := hashstructure.Hash(m, hashstructure.FormatV2, nil)
	if err != nil {
		panic(fmt.Sprintf("failed to hash matrix: %v", err))
	}
	return hashed
}

// Hash returns a structural hash of the vector.
func (v Vector[T]) Hash() uint64 {
	hashed, err := hashstructure.Hash(v, hashstructure.FormatV2, nil)
	if err != nil {
		panic(fmt.Sprintf("failed to hash vector: %v", err))
	}
	return hashed
}
