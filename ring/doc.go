// Package ring defines the coefficient capability interfaces used by the
// Orlik–Solomon engine and ships a handful of exact implementations.
//
// What
//
//   - Ring[T]: additive group + multiplication + unit over a value type T.
//   - Field[T]: a Ring[T] with inverses and a known characteristic.
//   - Rationals:  ℚ over *big.Rat (field, characteristic 0).
//   - Integers:   ℤ over *big.Int (ring only).
//   - PrimeField: GF(p) over uint64 for primes p < 2^32 (M31 and BabyBear presets).
//   - BN254:      the BN254 scalar field over gnark-crypto fr.Element.
//
// Why
//
//	The reduction and multiplication algorithms are purely combinatorial: they
//	only ever add, negate and multiply coefficients. Keeping arithmetic behind
//	an interface isolates the engine from numeric representation and lets the
//	caller pick exact arithmetic that fits the problem.
//
// Value semantics
//
//	Every operation returns a fresh value and never mutates its arguments,
//	including the pointer-backed rings (*big.Rat, *big.Int). Callers may share
//	coefficients freely between elements and caches.
//
// Errors
//
//   - ErrDivisionByZero  from Inv on a zero element.
//   - ErrInvalidModulus  from NewPrimeField for non-prime or oversized moduli.
package ring
