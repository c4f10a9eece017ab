package generator

import "errors"

var (
	ErrInvalidNumber           = errors.New("invalid number")
	ErrInvalidUnit             = errors.New("unit must be a positive integer that fits in int")
	ErrInvalidCharacter        = errors.New("invalid character: expected a single printable ASCII character")
	ErrMissingCharacter        = errors.New("missing characters for a class with non-zero count")
	ErrDeleteNonexistent       = errors.New("character is not present in any pool")
	ErrInconsistentComposition = errors.New("key composition does not match configured counts")
	ErrKeyTooLarge             = errors.New("requested key length does not fit in memory")
)
