// Package species resolves chemical formulas to molar masses.
//
// Formulas are element symbols with optional integer counts, nested groups in
// parentheses or brackets, hydrate separators ("CuSO4·5H2O" or "CuSO4.5H2O")
// and an optional trailing phase tag such as "[G]". Molar masses are in g/mol,
// which equals kg/kmol.
package species

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/san-kum/auxi/internal/thermo"
)

// UnknownSpeciesError reports a formula that could not be resolved.
type UnknownSpeciesError struct {
	Formula string
	Element string
	Reason  string
}

func (e *UnknownSpeciesError) Error() string {
	if e.Element != "" {
		return fmt.Sprintf("%s: %q (no element %q)", thermo.ErrUnknownSpecies, e.Formula, e.Element)
	}
	return fmt.Sprintf("%s: %q (%s)", thermo.ErrUnknownSpecies, e.Formula, e.Reason)
}

func (e *UnknownSpeciesError) Unwrap() error {
	return thermo.ErrUnknownSpecies
}

// Table is the molar-mass lookup backed by the built-in atomic weights.
type Table struct{}

// Default is the lookup used when none is configured.
var Default = Table{}

// MolarMass returns the molar mass of formula in g/mol.
func (Table) MolarMass(formula string) (float64, error) {
	return MolarMass(formula)
}

// MolarMass returns the molar mass of formula in g/mol.
func MolarMass(formula string) (float64, error) {
	counts, err := Parse(formula)
	if err != nil {
		return 0, err
	}
	total := 0.0
	for el, n := range counts {
		w, _ := AtomicWeight(el)
		total += w * n
	}
	return total, nil
}

// Parse returns the number of atoms of each element in formula.
func Parse(formula string) (map[string]float64, error) {
	f := strings.TrimSpace(formula)
	if i := strings.LastIndexByte(f, '['); i > 0 && strings.HasSuffix(f, "]") && isPhaseTag(f[i+1:len(f)-1]) {
		f = f[:i]
	}
	if f == "" {
		return nil, &UnknownSpeciesError{Formula: formula, Reason: "empty formula"}
	}

	counts := make(map[string]float64)
	for _, part := range strings.FieldsFunc(f, isHydrateSeparator) {
		mult, rest := leadingNumber(part)
		if mult == 0 {
			mult = 1
		}
		p := &parser{src: rest, formula: formula}
		group, err := p.group(0)
		if err != nil {
			return nil, err
		}
		if p.pos != len(p.src) {
			return nil, &UnknownSpeciesError{Formula: formula, Reason: fmt.Sprintf("unexpected %q", p.src[p.pos:])}
		}
		for el, n := range group {
			counts[el] += n * mult
		}
	}
	if len(counts) == 0 {
		return nil, &UnknownSpeciesError{Formula: formula, Reason: "no elements"}
	}
	return counts, nil
}

type parser struct {
	src     string
	pos     int
	formula string
}

func (p *parser) group(depth int) (map[string]float64, error) {
	counts := make(map[string]float64)
	for p.pos < len(p.src) {
		c := rune(p.src[p.pos])
		switch {
		case c == '(' || c == '[':
			closer := byte(')')
			if c == '[' {
				closer = ']'
			}
			p.pos++
			inner, err := p.group(depth + 1)
			if err != nil {
				return nil, err
			}
			if p.pos >= len(p.src) || p.src[p.pos] != closer {
				return nil, &UnknownSpeciesError{Formula: p.formula, Reason: "unbalanced brackets"}
			}
			p.pos++
			n := p.count()
			for el, m := range inner {
				counts[el] += m * n
			}
		case c == ')' || c == ']':
			if depth == 0 {
				return nil, &UnknownSpeciesError{Formula: p.formula, Reason: "unbalanced brackets"}
			}
			return counts, nil
		case unicode.IsUpper(c):
			start := p.pos
			p.pos++
			for p.pos < len(p.src) && unicode.IsLower(rune(p.src[p.pos])) {
				p.pos++
			}
			symbol := p.src[start:p.pos]
			if _, ok := AtomicWeight(symbol); !ok {
				return nil, &UnknownSpeciesError{Formula: p.formula, Element: symbol}
			}
			counts[symbol] += p.count()
		default:
			return nil, &UnknownSpeciesError{Formula: p.formula, Reason: fmt.Sprintf("unexpected %q", c)}
		}
	}
	if depth > 0 {
		return nil, &UnknownSpeciesError{Formula: p.formula, Reason: "unbalanced brackets"}
	}
	return counts, nil
}

// count reads an optional integer multiplier; absent means 1.
func (p *parser) count() float64 {
	n, rest := leadingNumber(p.src[p.pos:])
	p.pos = len(p.src) - len(rest)
	if n == 0 {
		return 1
	}
	return n
}

func leadingNumber(s string) (float64, string) {
	n, i := 0, 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		n = n*10 + int(s[i]-'0')
		i++
	}
	return float64(n), s[i:]
}

func isHydrateSeparator(r rune) bool {
	return r == '·' || r == '.' || r == '*'
}

func isPhaseTag(tag string) bool {
	switch strings.ToUpper(tag) {
	case "G", "L", "S", "AQ":
		return true
	}
	return false
}
