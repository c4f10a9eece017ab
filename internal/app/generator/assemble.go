package generator

import (
	"context"
	"fmt"
	"math/big"
	"math/rand/v2"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// assembleUnit fills dst with characters drawn uniformly, with replacement,
// from pool. pool must not be empty.
func assembleUnit(dst, pool []byte) {
	for i := range dst {
		dst[i] = pool[rand.IntN(len(pool))]
	}
}

// maxKeyLen bounds a single key allocation. It stays below the largest
// slice the runtime will allocate on 64-bit platforms (2^48 on amd64).
const maxKeyLen = 1 << 40

var bigMaxKeyLen = big.NewInt(maxKeyLen)

// keyLength returns the total requested length, or ErrKeyTooLarge when it
// cannot be allocated as a single key.
func keyLength(counts [classCount]*big.Int) (int, error) {
	total := new(big.Int)
	for _, n := range counts {
		total.Add(total, n)
	}
	if !fitsInt(total) || total.Cmp(bigMaxKeyLen) > 0 {
		return 0, fmt.Errorf("%w: %s characters", ErrKeyTooLarge, total)
	}
	return int(total.Int64()), nil
}

// assemble builds the class-grouped intermediate key: letters, then
// punctuation, then digits, each class in chunk order. Chunks run in
// parallel on at most workers goroutines; each one writes its own
// sub-slice of the result so the layout does not depend on scheduling.
func assemble(ctx context.Context, counts [classCount]*big.Int, pool Pool, unit *big.Int, workers int) ([]byte, error) {
	total, err := keyLength(counts)
	if err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	buf := make([]byte, total)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	off := 0
dispatch:
	for _, c := range Classes() {
		src := pool[c]
		chunks, err := Chunks(counts[c], unit)
		if err != nil {
			return nil, err
		}
		for size := range chunks {
			if gctx.Err() != nil {
				break dispatch
			}
			dst := buf[off : off+size]
			off += size
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				assembleUnit(dst, src)
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return buf, nil
}

// shuffle permutes chars in place with Fisher-Yates.
func shuffle(chars []byte) {
	rand.Shuffle(len(chars), func(i, j int) {
		chars[i], chars[j] = chars[j], chars[i]
	})
}
