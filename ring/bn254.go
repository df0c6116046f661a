package ring

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// BN254 is the scalar field of the BN254 curve, backed by gnark-crypto's
// Montgomery-form fr.Element. Useful when structure constants feed a proof
// system defined over the same field.
type BN254 struct{}

var _ Field[fr.Element] = BN254{}

func (BN254) Name() string { return "BN254" }

func (BN254) Zero() fr.Element {
	var z fr.Element
	return z
}

func (BN254) One() fr.Element {
	var z fr.Element
	z.SetOne()
	return z
}

func (BN254) FromInt64(n int64) fr.Element {
	var z fr.Element
	z.SetInt64(n)
	return z
}

func (BN254) Add(a, b fr.Element) fr.Element {
	var z fr.Element
	z.Add(&a, &b)
	return z
}

func (BN254) Sub(a, b fr.Element) fr.Element {
	var z fr.Element
	z.Sub(&a, &b)
	return z
}

func (BN254) Neg(a fr.Element) fr.Element {
	var z fr.Element
	z.Neg(&a)
	return z
}

func (BN254) Mul(a, b fr.Element) fr.Element {
	var z fr.Element
	z.Mul(&a, &b)
	return z
}

func (BN254) IsZero(a fr.Element) bool { return a.IsZero() }

func (BN254) Equal(a, b fr.Element) bool { return a.Equal(&b) }

// Format prints the canonical decimal representative.
func (BN254) Format(a fr.Element) string { return a.String() }

func (BN254) Inv(a fr.Element) (fr.Element, error) {
	if a.IsZero() {
		return a, ErrDivisionByZero
	}
	var z fr.Element
	z.Inverse(&a)
	return z, nil
}

func (BN254) Characteristic() *big.Int { return fr.Modulus() }
