package matrices

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/krauterlab/permsearch/subsets"
)

// Family identifies one of the structured matrix families.
type Family int

const (
	// FamilyCirculant is the full circulant family C_{n,S}.
	FamilyCirculant Family = iota
	// FamilyToeplitz is the full Toeplitz family T_{n,S}.
	FamilyToeplitz
	// FamilyHankel is the triangle Hankel family H_{n,S}.
	FamilyHankel
	// FamilyUpperTriangular is the free upper-triangular family U_{n,S}.
	FamilyUpperTriangular
)

// String returns the family's notation prefix.
func (f Family) String() string {
	switch f {
	case FamilyCirculant:
		return "C"
	case FamilyToeplitz:
		return "T"
	case FamilyHankel:
		return "H"
	case FamilyUpperTriangular:
		return "U"
	default:
		return "?"
	}
}

// indexRange returns the family's inclusive valid index range for order n.
func (f Family) indexRange(n int) (lo, hi int) {
	switch f {
	case FamilyCirculant:
		return 0, n - 1
	case FamilyToeplitz:
		return -(n - 1), n - 1
	case FamilyHankel:
		return 0, 2*n - 2
	default: // FamilyUpperTriangular
		return 0, n*(n+1)/2 - 1
	}
}

// New constructs the family's matrix for (n, S).
func (f Family) New(n int, s subsets.Set) (Matrix, error) {
	switch f {
	case FamilyCirculant:
		return NewCirculant(n, s)
	case FamilyToeplitz:
		return NewToeplitz(n, s)
	case FamilyHankel:
		return NewHankelTriangular(n, s)
	default:
		return NewUpperTriangular(n, s)
	}
}

// notationRe matches "<F>_<n>{...}" with an optional brace around n, the
// form the original calculators accept: "H_6{0,2,4..10}", "T_{7}{-6,-1..7}".
var notationRe = regexp.MustCompile(`^([CTHU])_\{?(\d+)\}?\{([^}]+)\}$`)

// rangeRe matches one inclusive "a..b" element.
var rangeRe = regexp.MustCompile(`^(-?\d+)\.\.(-?\d+)$`)

// ParseNotation parses compact family notation of the form
//
//	<Family>_<n>{elem, elem, ...}
//
// where Family is C, T, H or U, and each elem is either a single integer
// or an inclusive range "a..b". Every element is validated against the
// family's index range for n; out-of-range values are rejected with the
// offending values and the valid range named in the error.
//
// Errors: ErrBadNotation (malformed text), ErrNonPositiveOrder,
// ErrIndexOutOfRange.
func ParseNotation(notation string) (Family, int, subsets.Set, error) {
	m := notationRe.FindStringSubmatch(strings.TrimSpace(notation))
	if m == nil {
		return 0, 0, nil, fmt.Errorf("%q: %w", notation, ErrBadNotation)
	}

	var family Family
	switch m[1] {
	case "C":
		family = FamilyCirculant
	case "T":
		family = FamilyToeplitz
	case "H":
		family = FamilyHankel
	case "U":
		family = FamilyUpperTriangular
	}

	n, err := strconv.Atoi(m[2])
	if err != nil || n <= 0 {
		return 0, 0, nil, fmt.Errorf("order %q: %w", m[2], ErrNonPositiveOrder)
	}

	s := make(subsets.Set)
	for _, elem := range strings.Split(m[3], ",") {
		elem = strings.TrimSpace(elem)
		if r := rangeRe.FindStringSubmatch(elem); r != nil {
			lo, _ := strconv.Atoi(r[1])
			hi, _ := strconv.Atoi(r[2])
			if hi < lo {
				return 0, 0, nil, fmt.Errorf("empty range %q: %w", elem, ErrBadNotation)
			}
			for v := lo; v <= hi; v++ {
				s[v] = struct{}{}
			}
			continue
		}
		v, err := strconv.Atoi(elem)
		if err != nil {
			return 0, 0, nil, fmt.Errorf("element %q: %w", elem, ErrBadNotation)
		}
		s[v] = struct{}{}
	}

	lo, hi := family.indexRange(n)
	if err := validateIndexRange(s, lo, hi); err != nil {
		return 0, 0, nil, fmt.Errorf("%s_%d: %w", family, n, err)
	}

	return family, n, s, nil
}
