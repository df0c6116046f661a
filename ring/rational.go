package ring

import "math/big"

// Rationals is the field ℚ with *big.Rat coefficients.
// The zero value is ready to use.
type Rationals struct{}

var _ Field[*big.Rat] = Rationals{}

func (Rationals) Name() string { return "QQ" }

func (Rationals) Zero() *big.Rat { return new(big.Rat) }

func (Rationals) One() *big.Rat { return big.NewRat(1, 1) }

func (Rationals) FromInt64(n int64) *big.Rat { return big.NewRat(n, 1) }

func (Rationals) Add(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(a, b) }

func (Rationals) Sub(a, b *big.Rat) *big.Rat { return new(big.Rat).Sub(a, b) }

func (Rationals) Neg(a *big.Rat) *big.Rat { return new(big.Rat).Neg(a) }

func (Rationals) Mul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) }

func (Rationals) IsZero(a *big.Rat) bool { return a.Sign() == 0 }

func (Rationals) Equal(a, b *big.Rat) bool { return a.Cmp(b) == 0 }

// Format prints integers without a denominator ("3", "-1/2").
func (Rationals) Format(a *big.Rat) string { return a.RatString() }

func (Rationals) Inv(a *big.Rat) (*big.Rat, error) {
	if a.Sign() == 0 {
		return nil, ErrDivisionByZero
	}
	return new(big.Rat).Inv(a), nil
}

func (Rationals) Characteristic() *big.Int { return new(big.Int) }

// Integers is the ring ℤ with *big.Int coefficients. It is not a field.
type Integers struct{}

var _ Ring[*big.Int] = Integers{}

func (Integers) Name() string { return "ZZ" }

func (Integers) Zero() *big.Int { return new(big.Int) }

func (Integers) One() *big.Int { return big.NewInt(1) }

func (Integers) FromInt64(n int64) *big.Int { return big.NewInt(n) }

func (Integers) Add(a, b *big.Int) *big.Int { return new(big.Int).Add(a, b) }

func (Integers) Sub(a, b *big.Int) *big.Int { return new(big.Int).Sub(a, b) }

func (Integers) Neg(a *big.Int) *big.Int { return new(big.Int).Neg(a) }

func (Integers) Mul(a, b *big.Int) *big.Int { return new(big.Int).Mul(a, b) }

func (Integers) IsZero(a *big.Int) bool { return a.Sign() == 0 }

func (Integers) Equal(a, b *big.Int) bool { return a.Cmp(b) == 0 }

func (Integers) Format(a *big.Int) string { return a.String() }
