package generator

import (
	"fmt"
	"iter"
	"math/big"
)

var bigOne = big.NewInt(1)

// Chunks splits n into n/unit chunks of size unit followed by one chunk of
// n%unit when that remainder is non-zero. The sequence is lazy, so the
// quotient may be arbitrarily large. A unit that is not positive or does
// not fit in int fails with ErrInvalidUnit.
func Chunks(n, unit *big.Int) (iter.Seq[int], error) {
	if unit.Sign() <= 0 || !fitsInt(unit) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidUnit, unit)
	}
	q, r := new(big.Int).QuoRem(n, unit, new(big.Int))
	size := int(unit.Int64())
	rest := int(r.Int64())
	return func(yield func(int) bool) {
		if q.IsUint64() {
			for i := q.Uint64(); i > 0; i-- {
				if !yield(size) {
					return
				}
			}
		} else {
			for left := new(big.Int).Set(q); left.Sign() > 0; left.Sub(left, bigOne) {
				if !yield(size) {
					return
				}
			}
		}
		if rest > 0 {
			yield(rest)
		}
	}, nil
}

// ChunkCount returns how many chunks Chunks yields for n and unit.
func ChunkCount(n, unit *big.Int) *big.Int {
	q, r := new(big.Int).QuoRem(n, unit, new(big.Int))
	if r.Sign() > 0 {
		q.Add(q, bigOne)
	}
	return q
}
