package generator

import (
	"fmt"
	"math"
	"math/big"
	"strings"
)

var maxInt = big.NewInt(math.MaxInt)

// ParseCount parses decimal text into a non-negative arbitrary-precision
// integer. Signs, blanks and non-digit characters are rejected.
func ParseCount(s string) (*big.Int, error) {
	if s == "" || strings.TrimLeft(s, "0123456789") != "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	return n, nil
}

func fitsInt(n *big.Int) bool {
	return n.Sign() >= 0 && n.Cmp(maxInt) <= 0
}
