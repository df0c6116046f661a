package ring

import (
	"fmt"
	"math/big"
	"strconv"
)

// Well-known small primes.
const (
	// M31Modulus is the Mersenne prime 2^31 - 1.
	M31Modulus = 0x7fffffff

	// BabyBearModulus is 15·2^27 + 1.
	BabyBearModulus = 2013265921
)

// PrimeField is GF(p) for a prime p < 2^32, with canonical representatives
// in [0, p) stored as uint64. Products of two reduced values fit in 64 bits.
type PrimeField struct {
	p uint64
}

var _ Field[uint64] = (*PrimeField)(nil)

// NewPrimeField returns GF(p).
// Stage 1 (Validate): 1 < p < 2^32 and p prime (Miller–Rabin, 20 rounds).
// Stage 2 (Finalize): return the field descriptor.
// Complexity: O(log^3 p) for the primality test.
func NewPrimeField(p uint64) (*PrimeField, error) {
	if p < 2 || p >= 1<<32 {
		return nil, fmt.Errorf("NewPrimeField(%d): %w", p, ErrInvalidModulus)
	}
	if !new(big.Int).SetUint64(p).ProbablyPrime(20) {
		return nil, fmt.Errorf("NewPrimeField(%d): %w", p, ErrInvalidModulus)
	}

	return &PrimeField{p: p}, nil
}

// M31 returns GF(2^31 - 1).
func M31() *PrimeField { return &PrimeField{p: M31Modulus} }

// BabyBear returns GF(15·2^27 + 1).
func BabyBear() *PrimeField { return &PrimeField{p: BabyBearModulus} }

// Modulus returns p.
func (f *PrimeField) Modulus() uint64 { return f.p }

func (f *PrimeField) Name() string { return "GF(" + strconv.FormatUint(f.p, 10) + ")" }

func (f *PrimeField) Zero() uint64 { return 0 }

func (f *PrimeField) One() uint64 { return 1 % f.p }

// FromInt64 reduces n into [0, p), mapping negatives to p - (|n| mod p).
func (f *PrimeField) FromInt64(n int64) uint64 {
	if n >= 0 {
		return uint64(n) % f.p
	}
	// -n overflows for MinInt64; work on the unsigned magnitude instead.
	m := uint64(-(n + 1)) + 1
	return f.Neg(m % f.p)
}

func (f *PrimeField) Add(a, b uint64) uint64 {
	s := a + b
	if s >= f.p {
		s -= f.p
	}
	return s
}

func (f *PrimeField) Sub(a, b uint64) uint64 {
	if a >= b {
		return a - b
	}
	return a + f.p - b
}

func (f *PrimeField) Neg(a uint64) uint64 {
	if a == 0 {
		return 0
	}
	return f.p - a
}

func (f *PrimeField) Mul(a, b uint64) uint64 { return (a * b) % f.p }

func (f *PrimeField) IsZero(a uint64) bool { return a == 0 }

func (f *PrimeField) Equal(a, b uint64) bool { return a == b }

// Format prints the canonical representative; it is never negative.
func (f *PrimeField) Format(a uint64) string { return strconv.FormatUint(a, 10) }

// Inv computes a^(p-2) by square-and-multiply (Fermat's little theorem).
func (f *PrimeField) Inv(a uint64) (uint64, error) {
	if a == 0 {
		return 0, ErrDivisionByZero
	}
	var res uint64 = 1
	b := a
	for e := f.p - 2; e > 0; e >>= 1 {
		if e&1 != 0 {
			res = f.Mul(res, b)
		}
		b = f.Mul(b, b)
	}

	return res, nil
}

func (f *PrimeField) Characteristic() *big.Int { return new(big.Int).SetUint64(f.p) }
