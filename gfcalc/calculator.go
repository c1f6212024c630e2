// Package gfcalc glues the field and irreducible packages together into a
// calculator for GF(p^n): given a prime characteristic and extension
// degree, it builds the field's modulus polynomial once and then evaluates
// the four field operations on coefficient-vector elements.
package gfcalc

import (
	"errors"
	"fmt"

	"github.com/dlewis/ffcalc/field"
	"github.com/dlewis/ffcalc/irreducible"
)

// supportedPrimes is the fixed, closed list of characteristics this
// calculator accepts: the first 26 primes, up to 101. p is never tested
// for primality at runtime — it is only ever looked up here.
var supportedPrimes = map[int]bool{
	2: true, 3: true, 5: true, 7: true, 11: true, 13: true, 17: true, 19: true,
	23: true, 29: true, 31: true, 37: true, 41: true, 43: true, 47: true,
	53: true, 59: true, 61: true, 67: true, 71: true, 73: true, 79: true,
	83: true, 89: true, 97: true, 101: true,
}

var (
	// ErrInvalidCharacteristic is returned by New when p is not one of the
	// 26 supported primes.
	ErrInvalidCharacteristic = errors.New("gfcalc: characteristic not supported")
	// ErrDivisionByZero is returned by Operate(OpDiv) when the divisor
	// lifts to the zero polynomial. Inverse of zero returns ErrNoInverse.
	ErrDivisionByZero = errors.New("gfcalc: division by zero element")
	// ErrNoInverse is returned by Inverse when asked to invert the zero
	// element.
	ErrNoInverse = errors.New("gfcalc: zero element has no inverse")
	// ErrUnknownOperation is returned by Operate for an out-of-range
	// FieldOp. Unreachable through the exported FieldOp constants, since
	// the type is closed.
	ErrUnknownOperation = errors.New("gfcalc: unknown field operation")
)

// FieldOp is a closed enumeration of the four supported field operations.
type FieldOp int

const (
	OpAdd FieldOp = iota
	OpSub
	OpMul
	OpDiv
)

func (op FieldOp) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpSub:
		return "sub"
	case OpMul:
		return "mul"
	case OpDiv:
		return "div"
	default:
		return fmt.Sprintf("FieldOp(%d)", int(op))
	}
}

// Calculator represents a concrete GF(p^n), built as Z/pZ[x] / (M(x)) for
// an irreducible M of degree n found once at construction. It is immutable
// after New returns and safe for concurrent read-only use.
type Calculator struct {
	p int
	n int
	m field.ModPoly
}

// New constructs a Calculator for GF(p^n): p must be one of the 26
// supported primes, and an irreducible modulus of degree n is located via
// irreducible.Find.
func New(p, n int) (*Calculator, error) {
	if !supportedPrimes[p] {
		return nil, ErrInvalidCharacteristic
	}

	m, err := irreducible.Find(p, n)
	if err != nil {
		return nil, fmt.Errorf("gfcalc: finding irreducible modulus: %w", err)
	}

	return &Calculator{p: p, n: n, m: m}, nil
}

// Characteristic returns the field's prime characteristic.
func (c *Calculator) Characteristic() int {
	return c.p
}

// Degree returns the field's extension degree.
func (c *Calculator) Degree() int {
	return c.n
}

// Modulus returns the field's irreducible modulus polynomial.
func (c *Calculator) Modulus() field.ModPoly {
	return c.m
}

func (c *Calculator) lift(raw []int) (field.ModPoly, error) {
	return field.New(c.p, raw)
}

func (c *Calculator) reduce(p field.ModPoly) (field.ModPoly, error) {
	res, err := p.Div(c.m)
	if err != nil {
		return field.ModPoly{}, err
	}

	return res.Remainder, nil
}

// Operate lifts a and b (coefficient vectors, constant term first) into
// GF(p^n) and evaluates op.
func (c *Calculator) Operate(a, b []int, op FieldOp) (field.ModPoly, error) {
	pa, err := c.lift(a)
	if err != nil {
		return field.ModPoly{}, err
	}
	pb, err := c.lift(b)
	if err != nil {
		return field.ModPoly{}, err
	}

	switch op {
	case OpAdd:
		return pa.Add(pb)
	case OpSub:
		return pa.Sub(pb)
	case OpMul:
		product, err := pa.Mul(pb)
		if err != nil {
			return field.ModPoly{}, err
		}

		return c.reduce(product)
	case OpDiv:
		if pb.IsZero() {
			return field.ModPoly{}, ErrDivisionByZero
		}

		inv, err := c.inverse(pb)
		if err != nil {
			return field.ModPoly{}, err
		}

		product, err := pa.Mul(inv)
		if err != nil {
			return field.ModPoly{}, err
		}

		return c.reduce(product)
	default:
		return field.ModPoly{}, ErrUnknownOperation
	}
}

// Inverse returns the multiplicative inverse of a in GF(p^n).
func (c *Calculator) Inverse(a []int) (field.ModPoly, error) {
	pa, err := c.lift(a)
	if err != nil {
		return field.ModPoly{}, err
	}

	return c.inverse(pa)
}

// constantInverse returns the inverse of a nonzero constant polynomial via
// Fermat's little theorem: c^(p-2) mod p, by exponentiation by squaring.
func (c *Calculator) constantInverse(poly field.ModPoly) (field.ModPoly, error) {
	base := poly.Coeffs()[0] % c.p
	exp := c.p - 2
	result := 1 % c.p

	for exp > 0 {
		if exp&1 == 1 {
			result = (result * base) % c.p
		}
		base = (base * base) % c.p
		exp >>= 1
	}

	return field.New(c.p, []int{result})
}

// inverse computes a^-1 in GF(p^n) via the Extended Euclidean Algorithm,
// following the back-substitution recurrence: run the Euclidean remainder
// sequence (r0 = M, r1 = a) down to the first constant remainder r_k, then
// reconstruct the Bezout coefficient s with s*a = r_k (mod M) using only
// the last two entries of the recurrence (a two-slot rolling window, not
// a full history), and finally scale by r_k's own inverse in Z/pZ.
func (c *Calculator) inverse(a field.ModPoly) (field.ModPoly, error) {
	if a.IsZero() {
		return field.ModPoly{}, ErrNoInverse
	}

	if a.IsConstant() {
		return c.constantInverse(a)
	}

	quotients, finalRemainder, err := c.euclideanQuotients(a)
	if err != nil {
		return field.ModPoly{}, err
	}

	s, err := backSubstitute(c.p, quotients)
	if err != nil {
		return field.ModPoly{}, err
	}

	reduced, err := c.reduce(s)
	if err != nil {
		return field.ModPoly{}, err
	}

	scale, err := c.constantInverse(finalRemainder)
	if err != nil {
		return field.ModPoly{}, err
	}

	product, err := reduced.Mul(scale)
	if err != nil {
		return field.ModPoly{}, err
	}

	return c.reduce(product)
}

// euclideanQuotients runs the Euclidean remainder sequence starting from
// (M, a) until the remainder is a constant polynomial, returning every
// quotient produced along the way and that final constant remainder.
// Since M is irreducible and a != 0, gcd(M, a) is a nonzero constant.
func (c *Calculator) euclideanQuotients(a field.ModPoly) ([]field.ModPoly, field.ModPoly, error) {
	dividend := c.m
	divisor := a

	var quotients []field.ModPoly
	for {
		res, err := dividend.Div(divisor)
		if err != nil {
			return nil, field.ModPoly{}, err
		}

		quotients = append(quotients, res.Quotient)
		if res.Remainder.IsConstant() {
			return quotients, res.Remainder, nil
		}

		dividend, divisor = divisor, res.Remainder
	}
}

// backSubstitute reconstructs the Bezout coefficient s_k from the quotient
// sequence q_1..q_k using s_1 = -q_1, s_2 = q_1*q_2 + 1 (if present), and
// s_i = s_(i-2) - q_i*s_(i-1) for i = 3..k, keeping only the last two
// values at any time.
func backSubstitute(modulus int, quotients []field.ModPoly) (field.ModPoly, error) {
	sPrev2 := quotients[0].Neg() // s_1 = -q_1

	if len(quotients) == 1 {
		return sPrev2, nil
	}

	prod, err := quotients[0].Mul(quotients[1])
	if err != nil {
		return field.ModPoly{}, err
	}
	one, err := field.New(modulus, []int{1})
	if err != nil {
		return field.ModPoly{}, err
	}
	sPrev1, err := prod.Add(one) // s_2 = q_1*q_2 + 1
	if err != nil {
		return field.ModPoly{}, err
	}

	for i := 2; i < len(quotients); i++ {
		term, err := quotients[i].Mul(sPrev1)
		if err != nil {
			return field.ModPoly{}, err
		}
		next, err := sPrev2.Sub(term)
		if err != nil {
			return field.ModPoly{}, err
		}

		sPrev2, sPrev1 = sPrev1, next
	}

	return sPrev1, nil
}
