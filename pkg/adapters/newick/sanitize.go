package newick

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/aretw0/orthology/pkg/domain"
)

var (
	// DefaultMaxInputSize bounds Newick text received from the network.
	DefaultMaxInputSize = 4 << 20
	// EnvMaxInputSize is the environment variable to override the default.
	EnvMaxInputSize = "ORTHOLOGY_MAX_INPUT_SIZE"
)

var (
	ErrInputTooLarge = errors.New("input exceeds maximum allowed size")
	ErrInvalidUTF8   = errors.New("input contains invalid UTF-8 sequences")
)

// Sanitize checks untrusted Newick text before parsing: it enforces the size
// limit, validates UTF-8 and strips control characters, so labels echoed to a
// terminal or used in file names cannot carry escape sequences. Failures are
// *domain.MalformedInputError.
func Sanitize(input string) (string, error) {
	limit := maxInputSize()
	if len(input) > limit {
		return "", &domain.MalformedInputError{
			Source: "newick",
			Err:    fmt.Errorf("%w: size=%d limit=%d", ErrInputTooLarge, len(input), limit),
		}
	}
	if !utf8.ValidString(input) {
		return "", &domain.MalformedInputError{Source: "newick", Err: ErrInvalidUTF8}
	}

	// Fast path: nothing to strip.
	if strings.IndexFunc(input, unsafeControl) < 0 {
		return input, nil
	}

	var b strings.Builder
	b.Grow(len(input))
	for _, r := range input {
		if !unsafeControl(r) {
			b.WriteRune(r)
		}
	}
	return b.String(), nil
}

// unsafeControl keeps whitespace controls, which Newick treats as blanks.
func unsafeControl(r rune) bool {
	return unicode.IsControl(r) && r != '\n' && r != '\t' && r != '\r'
}

func maxInputSize() int {
	if val := os.Getenv(EnvMaxInputSize); val != "" {
		if size, err := strconv.Atoi(val); err == nil && size > 0 {
			return size
		}
	}
	return DefaultMaxInputSize
}
