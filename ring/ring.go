package ring

import (
	"errors"
	"math/big"
)

// Sentinel errors for ring arithmetic.
var (
	// ErrDivisionByZero is returned when inverting the additive identity.
	ErrDivisionByZero = errors.New("ring: division by zero")

	// ErrInvalidModulus is returned when a prime field is requested with a
	// modulus that is not a prime in (1, 2^32).
	ErrInvalidModulus = errors.New("ring: modulus must be a prime below 2^32")
)

// Ring is the capability set the combinatorial engine needs from a
// commutative coefficient ring with unit.
// Implementations must treat values as immutable.
type Ring[T any] interface {
	// Name is a short human-readable label such as "QQ" or "GF(7)".
	Name() string

	Zero() T
	One() T

	// FromInt64 maps an integer through the unique ring map ℤ → R.
	FromInt64(n int64) T

	Add(a, b T) T
	Sub(a, b T) T
	Neg(a T) T
	Mul(a, b T) T

	IsZero(a T) bool
	Equal(a, b T) bool

	// Format renders a; negative values must start with '-'.
	Format(a T) string
}

// Field is a Ring whose non-zero elements are invertible.
type Field[T any] interface {
	Ring[T]

	// Inv returns the multiplicative inverse or ErrDivisionByZero.
	Inv(a T) (T, error)

	// Characteristic returns 0 for characteristic-zero fields.
	Characteristic() *big.Int
}

// Sign returns (-1)^k in r.
func Sign[T any](r Ring[T], k int) T {
	if k%2 == 0 {
		return r.One()
	}
	return r.Neg(r.One())
}

// Div returns a / b in f.
func Div[T any](f Field[T], a, b T) (T, error) {
	inv, err := f.Inv(b)
	if err != nil {
		var zero T
		return zero, err
	}
	return f.Mul(a, inv), nil
}

// AsField reports whether r also implements Field.
func AsField[T any](r Ring[T]) (Field[T], bool) {
	f, ok := r.(Field[T])
	return f, ok
}
