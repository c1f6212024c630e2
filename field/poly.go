// Package field implements a polynomial ring over Z/pZ: exact integer
// coefficient arithmetic reduced modulo a fixed modulus, Euclidean division,
// and Horner evaluation. It has no notion of primality on its own — the
// modulus only needs to be prime for Div, which inverts the divisor's
// leading coefficient by Fermat's little theorem.
package field

import (
	"errors"
	"strconv"
	"strings"
)

var (
	// ErrInvalidModulus is returned when constructing a ModPoly with a
	// non-positive modulus.
	ErrInvalidModulus = errors.New("field: modulus must be positive")
	// ErrModulusMismatch is returned by binary operations across polynomials
	// with different moduli.
	ErrModulusMismatch = errors.New("field: modulus mismatch")
	// ErrDivisionByZero is returned by Div when the divisor is the zero
	// polynomial.
	ErrDivisionByZero = errors.New("field: division by zero polynomial")
)

// ModPoly is a polynomial with coefficients in Z/pZ, stored lowest degree
// first. It is a plain value: every operation below returns a fresh ModPoly
// and never mutates its receiver or argument.
type ModPoly struct {
	modulus int
	coeffs  []int
}

// New builds a ModPoly from a modulus and raw coefficients (constant term
// first). Coefficients are reduced into [0, modulus), and the result is
// canonicalized: trailing zero coefficients are dropped, except that the
// zero polynomial is always represented as the single coefficient [0].
func New(modulus int, raw []int) (ModPoly, error) {
	if modulus < 1 {
		return ModPoly{}, ErrInvalidModulus
	}

	coeffs := make([]int, len(raw))
	for i, c := range raw {
		coeffs[i] = reduce(c, modulus)
	}

	return ModPoly{modulus: modulus, coeffs: canonicalize(coeffs)}, nil
}

// reduce returns c mod m in [0, m), handling negative c.
func reduce(c, m int) int {
	r := c % m
	if r < 0 {
		r += m
	}

	return r
}

func canonicalize(coeffs []int) []int {
	last := len(coeffs) - 1
	for last >= 0 && coeffs[last] == 0 {
		last--
	}

	if last < 0 {
		return []int{0}
	}

	return coeffs[:last+1]
}

// Modulus returns the polynomial's coefficient modulus.
func (p ModPoly) Modulus() int {
	return p.modulus
}

// Coeffs returns a defensive copy of the polynomial's coefficients, constant
// term first.
func (p ModPoly) Coeffs() []int {
	out := make([]int, len(p.coeffs))
	copy(out, p.coeffs)

	return out
}

// Degree returns len(coeffs)-1. By convention the zero polynomial has
// degree 0; use IsZero to distinguish it from the constant polynomial 1.
func (p ModPoly) Degree() int {
	return len(p.coeffs) - 1
}

// Lead returns the coefficient of the highest-degree term.
func (p ModPoly) Lead() int {
	return p.coeffs[len(p.coeffs)-1]
}

// IsZero reports whether p is the zero polynomial.
func (p ModPoly) IsZero() bool {
	return len(p.coeffs) == 1 && p.coeffs[0] == 0
}

// IsConstant reports whether p has degree 0 (including the zero polynomial).
func (p ModPoly) IsConstant() bool {
	return len(p.coeffs) == 1
}

// Equal reports whether p and other have the same modulus and coefficients.
// Canonicalization at construction makes this a plain slice comparison.
func (p ModPoly) Equal(other ModPoly) bool {
	if p.modulus != other.modulus || len(p.coeffs) != len(other.coeffs) {
		return false
	}

	for i := range p.coeffs {
		if p.coeffs[i] != other.coeffs[i] {
			return false
		}
	}

	return true
}

// String renders p in standard mathematical notation, highest degree
// first, e.g. "x^2 + 2x + 1 mod 11". The zero polynomial renders as
// "0 mod p".
func (p ModPoly) String() string {
	if p.IsZero() {
		return "0 mod " + strconv.Itoa(p.modulus)
	}

	var terms []string
	for power := len(p.coeffs) - 1; power >= 0; power-- {
		c := p.coeffs[power]
		if c == 0 {
			continue
		}

		switch {
		case power == 0:
			terms = append(terms, strconv.Itoa(c))
		case power == 1 && c == 1:
			terms = append(terms, "x")
		case power == 1:
			terms = append(terms, strconv.Itoa(c)+"x")
		case c == 1:
			terms = append(terms, "x^"+strconv.Itoa(power))
		default:
			terms = append(terms, strconv.Itoa(c)+"x^"+strconv.Itoa(power))
		}
	}

	var b strings.Builder
	b.WriteString(strings.Join(terms, " + "))
	b.WriteString(" mod ")
	b.WriteString(strconv.Itoa(p.modulus))

	return b.String()
}

func (p ModPoly) coeffAt(i int) int {
	if i < len(p.coeffs) {
		return p.coeffs[i]
	}

	return 0
}

// Add returns p + b, reduced coefficientwise modulo p's modulus.
func (p ModPoly) Add(b ModPoly) (ModPoly, error) {
	if p.modulus != b.modulus {
		return ModPoly{}, ErrModulusMismatch
	}

	size := len(p.coeffs)
	if len(b.coeffs) > size {
		size = len(b.coeffs)
	}

	out := make([]int, size)
	for i := 0; i < size; i++ {
		out[i] = (p.coeffAt(i) + b.coeffAt(i)) % p.modulus
	}

	return ModPoly{modulus: p.modulus, coeffs: canonicalize(out)}, nil
}

// Neg returns the additive inverse of p: each coefficient c becomes
// (modulus - c) mod modulus.
func (p ModPoly) Neg() ModPoly {
	out := make([]int, len(p.coeffs))
	for i, c := range p.coeffs {
		out[i] = reduce(-c, p.modulus)
	}

	return ModPoly{modulus: p.modulus, coeffs: canonicalize(out)}
}

// Sub returns p - b.
func (p ModPoly) Sub(b ModPoly) (ModPoly, error) {
	if p.modulus != b.modulus {
		return ModPoly{}, ErrModulusMismatch
	}

	return p.Add(b.Neg())
}

// Mul returns p * b via schoolbook convolution, each accumulator reduced
// modulo p's modulus after every update.
func (p ModPoly) Mul(b ModPoly) (ModPoly, error) {
	if p.modulus != b.modulus {
		return ModPoly{}, ErrModulusMismatch
	}

	if p.IsZero() || b.IsZero() {
		return ModPoly{modulus: p.modulus, coeffs: []int{0}}, nil
	}

	out := make([]int, len(p.coeffs)+len(b.coeffs)-1)
	for i, a := range p.coeffs {
		for j, c := range b.coeffs {
			out[i+j] = (out[i+j] + a*c) % p.modulus
		}
	}

	return ModPoly{modulus: p.modulus, coeffs: canonicalize(out)}, nil
}

// Evaluate computes p(x) mod modulus using Horner's method, highest degree
// to lowest.
func (p ModPoly) Evaluate(x int) int {
	result := 0
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		result = (result*x + p.coeffs[i]) % p.modulus
		if result < 0 {
			result += p.modulus
		}
	}

	return result
}

// DivResult is the (quotient, remainder) pair produced by Euclidean
// division: dividend = divisor*Quotient + Remainder, with
// Remainder.Degree() < divisor.Degree() unless Remainder is zero.
type DivResult struct {
	Quotient  ModPoly
	Remainder ModPoly
}

// Div performs Euclidean long division of p by b. It assumes the modulus
// is prime, since each step inverts b's leading coefficient by Fermat's
// little theorem (a^(modulus-2) mod modulus).
func (p ModPoly) Div(b ModPoly) (DivResult, error) {
	if p.modulus != b.modulus {
		return DivResult{}, ErrModulusMismatch
	}
	if b.IsZero() {
		return DivResult{}, ErrDivisionByZero
	}

	q, err := New(p.modulus, []int{0})
	if err != nil {
		return DivResult{}, err
	}
	r := p

	for r.Degree() >= b.Degree() && !r.IsZero() {
		inv := fermatInverse(b.Lead(), p.modulus)
		coeff := reduce(r.Lead()*inv, p.modulus)
		shift := r.Degree() - b.Degree()

		termCoeffs := make([]int, shift+1)
		termCoeffs[shift] = coeff
		term, err := New(p.modulus, termCoeffs)
		if err != nil {
			return DivResult{}, err
		}

		q, err = q.Add(term)
		if err != nil {
			return DivResult{}, err
		}

		subtrahend, err := b.Mul(term)
		if err != nil {
			return DivResult{}, err
		}
		r, err = r.Sub(subtrahend)
		if err != nil {
			return DivResult{}, err
		}
	}

	return DivResult{Quotient: q, Remainder: r}, nil
}

// fermatInverse returns a^(-1) mod m via Fermat's little theorem, assuming
// m is prime and a is not a multiple of m.
func fermatInverse(a, m int) int {
	return powMod(a, m-2, m)
}

// powMod computes base^exp mod m by exponentiation by squaring, assuming
// m >= 1 and exp >= 0.
func powMod(base, exp, m int) int {
	base = reduce(base, m)
	result := 1 % m

	for exp > 0 {
		if exp&1 == 1 {
			result = (result * base) % m
		}
		base = (base * base) % m
		exp >>= 1
	}

	return result
}
