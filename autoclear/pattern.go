package autoclear

import (
	"regexp"
	"regexp/syntax"

	"github.com/pkg/errors"
)

const (
	// MaxPatternLength is the longest accepted pattern source, in bytes.
	MaxPatternLength = 64
	// MaxPatternProgramSize caps the compiled regex program, in instructions.
	// A size budget bounds worst-case matching cost without needing a
	// wall-clock deadline on evaluation.
	MaxPatternProgramSize = 4096
)

// ErrPatternTooLong is returned when a pattern source exceeds MaxPatternLength.
var ErrPatternTooLong = errors.Errorf("pattern must be at most %d characters", MaxPatternLength)

// ErrPatternTooComplex is returned when a pattern compiles past the program
// size budget.
var ErrPatternTooComplex = errors.New("pattern is too complex")

// ValidatePattern checks a content pattern against the source-length and
// compiled-size limits. Rules are validated at write time so evaluation
// never sees a pattern outside budget.
func ValidatePattern(pattern string) error {
	if len(pattern) > MaxPatternLength {
		return ErrPatternTooLong
	}

	parsed, err := syntax.Parse(pattern, syntax.Perl)
	if err != nil {
		return errors.Wrap(err, "invalid pattern")
	}
	prog, err := syntax.Compile(parsed.Simplify())
	if err != nil {
		return errors.Wrap(err, "invalid pattern")
	}
	if len(prog.Inst) > MaxPatternProgramSize {
		return ErrPatternTooComplex
	}
	return nil
}

// compilePattern compiles a pattern under the same budget ValidatePattern
// enforces. Compilation happens per evaluation; the write-time budget keeps
// the cost bounded.
func compilePattern(pattern string) (*regexp.Regexp, error) {
	if err := ValidatePattern(pattern); err != nil {
		return nil, err
	}
	return regexp.Compile(pattern)
}
