package generator

import "fmt"

// Class is one of the three ASCII character classes a key is built from.
type Class int

const (
	Alphabetic Class = iota
	Punctuation
	Digit
)

const classCount = 3

// Classes returns the classes in the order they are concatenated.
func Classes() []Class {
	return []Class{Alphabetic, Punctuation, Digit}
}

func (c Class) String() string {
	switch c {
	case Alphabetic:
		return "alphabetic"
	case Punctuation:
		return "punctuation"
	case Digit:
		return "digit"
	default:
		return fmt.Sprintf("Class(%d)", int(c))
	}
}

// ParseClass accepts the class names used by the CLI and the presets API.
func ParseClass(s string) (Class, error) {
	switch s {
	case "alphabetic", "letters", "letter", "ltr":
		return Alphabetic, nil
	case "punctuation", "symbols", "symbol", "sbl":
		return Punctuation, nil
	case "digit", "digits", "numbers", "number", "num":
		return Digit, nil
	}
	return 0, fmt.Errorf("unknown class %q", s)
}

// classify reports the class of b. The three predicates are disjoint and
// together cover exactly the graphic ASCII range.
func classify(b byte) (Class, bool) {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z':
		return Alphabetic, true
	case b >= '0' && b <= '9':
		return Digit, true
	case b >= '!' && b <= '~':
		return Punctuation, true
	}
	return 0, false
}
