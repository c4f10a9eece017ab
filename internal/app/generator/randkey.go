// Package generator builds random keys out of letters, punctuation and
// digits. Counts are arbitrary-precision; generation is split into units
// that are assembled in parallel and then shuffled into the final key.
package generator

import (
	"context"
	"fmt"
	"math/big"
	"strconv"

	"github.com/sirupsen/logrus"
)

// DefaultUnit is the largest chunk a single worker generates at once.
const DefaultUnit = 65535

// KeyOp selects how SetKey adopts an existing key.
type KeyOp int

const (
	// Update adopts the key and takes its composition as the new counts.
	Update KeyOp = iota
	// Check adopts the key only if its composition equals the current counts.
	Check
)

// RandKey owns the requested counts, the character pools, the unit size and
// the last generated key. It is not safe for concurrent use.
type RandKey struct {
	counts  [classCount]*big.Int
	pool    Pool
	unit    *big.Int
	workers int
	key     string
}

// New returns a generator for ltr letters, sbl punctuation marks and num
// digits with the default pools. The key stays empty until Generate.
func New(ltr, sbl, num string) (*RandKey, error) {
	var counts [classCount]*big.Int
	for i, s := range []string{ltr, sbl, num} {
		n, err := ParseCount(s)
		if err != nil {
			return nil, err
		}
		counts[i] = n
	}
	return &RandKey{
		counts: counts,
		pool:   DefaultPool(),
		unit:   big.NewInt(DefaultUnit),
	}, nil
}

func (r *RandKey) Key() string { return r.key }

func (r *RandKey) String() string { return r.key }

// Len returns the key length in bytes, which equals its length in
// characters since keys are ASCII.
func (r *RandKey) Len() string { return strconv.Itoa(len(r.key)) }

func (r *RandKey) IsEmpty() bool { return r.key == "" }

func (r *RandKey) Unit() string { return r.unit.String() }

// SetUnit changes the chunk size. Zero and values that do not fit in int
// are rejected with ErrInvalidUnit.
func (r *RandKey) SetUnit(s string) error {
	n, err := ParseCount(s)
	if err != nil {
		return err
	}
	if n.Sign() == 0 || !fitsInt(n) {
		return fmt.Errorf("%w: %s", ErrInvalidUnit, s)
	}
	r.unit = n
	return nil
}

// Workers returns the parallelism limit; 0 means GOMAXPROCS.
func (r *RandKey) Workers() int { return r.workers }

func (r *RandKey) SetWorkers(n int) {
	if n < 0 {
		n = 0
	}
	r.workers = n
}

func (r *RandKey) Count(c Class) string { return r.counts[c].String() }

// CountValue returns a copy of the requested count for c.
func (r *RandKey) CountValue(c Class) *big.Int { return new(big.Int).Set(r.counts[c]) }

func (r *RandKey) SetCount(c Class, s string) error {
	n, err := ParseCount(s)
	if err != nil {
		return err
	}
	r.counts[c] = n
	return nil
}

func (r *RandKey) Data(c Class) []string { return r.pool.Strings(c) }

func (r *RandKey) AllData() [][]string {
	out := make([][]string, 0, classCount)
	for _, c := range Classes() {
		out = append(out, r.pool.Strings(c))
	}
	return out
}

// Pool returns a copy of the current pools.
func (r *RandKey) Pool() Pool { return r.pool.clone() }

// Replace partitions chars by class and replaces all three pools. It then
// reports whether the new pools can satisfy the current counts.
func (r *RandKey) Replace(chars []string) error {
	b, err := parseTokens(chars)
	if err != nil {
		return err
	}
	r.pool = group(b)
	return r.Validate()
}

// SetPool replaces all three pools with a copy of p, e.g. one built by
// ParsePool, and reports whether it can satisfy the current counts.
func (r *RandKey) SetPool(p Pool) error {
	r.pool = p.clone()
	return r.Validate()
}

// Add appends chars to the pools of their classes. Characters already
// present are kept once.
func (r *RandKey) Add(chars []string) error {
	b, err := parseTokens(chars)
	if err != nil {
		return err
	}
	r.pool.add(b)
	return nil
}

// Remove deletes chars from whichever pools hold them. It fails without
// changing anything if one of them is in no pool.
func (r *RandKey) Remove(chars []string) error {
	b, err := parseTokens(chars)
	if err != nil {
		return err
	}
	return r.pool.remove(b)
}

func (r *RandKey) Clear(c Class) { r.pool[c] = nil }

func (r *RandKey) ClearAll() {
	for i := range r.pool {
		r.pool[i] = nil
	}
}

// Validate fails with ErrMissingCharacter when a class with a non-zero
// count has an empty pool.
func (r *RandKey) Validate() error {
	for _, c := range Classes() {
		if r.counts[c].Sign() > 0 && len(r.pool[c]) == 0 {
			return fmt.Errorf("%w: %s", ErrMissingCharacter, c)
		}
	}
	return nil
}

// Generate builds a new key. On error the previous key is kept.
func (r *RandKey) Generate() error {
	return r.GenerateContext(context.Background())
}

// GenerateContext is Generate with a context that can abandon the work.
func (r *RandKey) GenerateContext(ctx context.Context) error {
	if err := r.Validate(); err != nil {
		return err
	}

	counts := r.counts
	pool := r.pool.clone()
	unit := r.unit

	chunks := new(big.Int)
	for _, n := range counts {
		chunks.Add(chunks, ChunkCount(n, unit))
	}

	logrus.WithFields(logrus.Fields{
		"letters":     counts[Alphabetic].String(),
		"punctuation": counts[Punctuation].String(),
		"digits":      counts[Digit].String(),
		"unit":        unit.String(),
		"chunks":      chunks.String(),
		"workers":     r.workers,
	}).Debug("Generating key")

	buf, err := assemble(ctx, counts, pool, unit, r.workers)
	if err != nil {
		return err
	}
	shuffle(buf)
	r.key = string(buf)
	return nil
}

// SetKey adopts an existing key according to op.
func (r *RandKey) SetKey(val string, op KeyOp) error {
	counts, err := Composition(val)
	if err != nil {
		return err
	}
	switch op {
	case Update:
		r.counts = counts
	case Check:
		for _, c := range Classes() {
			if r.counts[c].Cmp(counts[c]) != 0 {
				return fmt.Errorf("%w: %s want %s, got %s", ErrInconsistentComposition, c, r.counts[c], counts[c])
			}
		}
	default:
		return fmt.Errorf("unknown key operation %d", op)
	}
	r.key = val
	return nil
}

// Composition counts the letters, punctuation marks and digits of s.
func Composition(s string) ([classCount]*big.Int, error) {
	var n [classCount]int
	for i := 0; i < len(s); i++ {
		c, ok := classify(s[i])
		if !ok {
			return [classCount]*big.Int{}, fmt.Errorf("%w: %q at %d", ErrInvalidCharacter, s[i], i)
		}
		n[c]++
	}
	var counts [classCount]*big.Int
	for i := range n {
		counts[i] = big.NewInt(int64(n[i]))
	}
	return counts, nil
}

// FromString returns a generator whose counts are the composition of s,
// with the default pools and s as its current key.
func FromString(s string) (*RandKey, error) {
	counts, err := Composition(s)
	if err != nil {
		return nil, err
	}
	return &RandKey{
		counts: counts,
		pool:   DefaultPool(),
		unit:   big.NewInt(DefaultUnit),
		key:    s,
	}, nil
}
