package algebra

import (
	"fmt"
	"strings"
)

// FormatSubset renders a basis label such as "OS{0, 2}".
func (a *Algebra[E, T]) FormatSubset(elems []E) string {
	var sb strings.Builder
	sb.WriteString(a.prefix)
	sb.WriteByte('{')
	for k, e := range elems {
		if k > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, e)
	}
	sb.WriteByte('}')
	return sb.String()
}

// Format renders x as a signed sum in basis order, e.g.
// "-OS{0, 1} + 2*OS{0, 2}". Unit coefficients are omitted; zero is "0".
func (a *Algebra[E, T]) Format(x Element[T]) string {
	terms := a.Terms(x)
	if len(terms) == 0 {
		return "0"
	}
	var sb strings.Builder
	for k, t := range terms {
		a.writeCoefficient(&sb, k, t.Coefficient)
		sb.WriteString(a.FormatSubset(t.Subset))
	}
	return sb.String()
}

// writeCoefficient writes the sign separator of the k-th term of a sum and
// its coefficient followed by '*'. A unit coefficient writes the sign only.
func (a *Algebra[E, T]) writeCoefficient(sb *strings.Builder, k int, c T) {
	s := a.ring.Format(c)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	switch {
	case k == 0 && neg:
		sb.WriteByte('-')
	case k > 0 && neg:
		sb.WriteString(" - ")
	case k > 0:
		sb.WriteString(" + ")
	}
	if s != "1" {
		sb.WriteString(s)
		sb.WriteByte('*')
	}
}
