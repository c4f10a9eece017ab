package generator

import (
	"fmt"
	"slices"
)

// Pool holds the characters each class may draw from. Every stored byte is
// graphic ASCII and sits in the pool of its own class, once.
type Pool [classCount][]byte

// DefaultPool returns every graphic ASCII character grouped by class.
func DefaultPool() Pool {
	var p Pool
	for b := byte('!'); b <= '~'; b++ {
		c, _ := classify(b)
		p[c] = append(p[c], b)
	}
	return p
}

// parseTokens turns pool-edit tokens into bytes. Each token must be exactly
// one character that belongs to a class.
func parseTokens(tokens []string) ([]byte, error) {
	out := make([]byte, 0, len(tokens))
	for _, t := range tokens {
		if len(t) != 1 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCharacter, t)
		}
		if _, ok := classify(t[0]); !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCharacter, t)
		}
		out = append(out, t[0])
	}
	return out, nil
}

func group(chars []byte) Pool {
	var p Pool
	for _, b := range chars {
		c, _ := classify(b)
		p[c] = append(p[c], b)
	}
	for i := range p {
		p[i] = dedup(p[i])
	}
	return p
}

func dedup(chars []byte) []byte {
	var seen [128]bool
	out := chars[:0]
	for _, b := range chars {
		if seen[b] {
			continue
		}
		seen[b] = true
		out = append(out, b)
	}
	return out
}

func (p *Pool) add(chars []byte) {
	g := group(chars)
	for i := range p {
		p[i] = dedup(append(p[i], g[i]...))
	}
}

func (p *Pool) contains(b byte) bool {
	c, ok := classify(b)
	return ok && slices.Contains(p[c], b)
}

// remove deletes chars from their pools. Nothing is removed when one of
// them is absent from every pool.
func (p *Pool) remove(chars []byte) error {
	chars = dedup(slices.Clone(chars))
	for _, b := range chars {
		if !p.contains(b) {
			return fmt.Errorf("%w: %q", ErrDeleteNonexistent, string(b))
		}
	}
	for _, b := range chars {
		c, _ := classify(b)
		p[c] = slices.DeleteFunc(p[c], func(x byte) bool { return x == b })
	}
	return nil
}

func (p Pool) clone() Pool {
	var out Pool
	for i := range p {
		out[i] = slices.Clone(p[i])
	}
	return out
}

// Strings returns the pool of class c as single-character strings.
func (p Pool) Strings(c Class) []string {
	out := make([]string, len(p[c]))
	for i, b := range p[c] {
		out[i] = string(b)
	}
	return out
}

// Concat returns all pool characters in class order.
func (p Pool) Concat() string {
	n := 0
	for i := range p {
		n += len(p[i])
	}
	buf := make([]byte, 0, n)
	for i := range p {
		buf = append(buf, p[i]...)
	}
	return string(buf)
}

// ParsePool builds a pool from a string of characters, e.g. one produced by
// Concat.
func ParsePool(s string) (Pool, error) {
	tokens := make([]string, len(s))
	for i := 0; i < len(s); i++ {
		tokens[i] = s[i : i+1]
	}
	chars, err := parseTokens(tokens)
	if err != nil {
		return Pool{}, err
	}
	return group(chars), nil
}
