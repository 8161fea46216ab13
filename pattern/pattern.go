// Package pattern implements the length-5 feedback pattern and its
// bijective base-3 encoding into a single byte code.
package pattern

import (
	"fmt"

	"github.com/ashgrove-labs/wordle-solver/word"
)

// Symbol is a single position's feedback.
type Symbol uint8

const (
	Absent Symbol = iota
	Misplaced
	Correct
)

// L is the pattern length, fixed to match word.L.
const L = word.L

// Pattern is a length-L sequence of feedback symbols, one per guess
// position.
type Pattern [L]Symbol

// Code is the compact base-3 encoding of a Pattern. 3^5 = 243 fits in a
// byte.
type Code uint8

// pow3[i] == 3^i for i in [0, L].
var pow3 = [L + 1]int{1, 3, 9, 27, 81, 243}

// TerminalCode is the code of the all-Correct pattern, signaling a solved
// game.
const TerminalCode Code = 242 // 3^5 - 1

// Encode returns c = sum(p[i] * 3^i), least-significant position first.
func Encode(p Pattern) Code {
	var c int
	for i := 0; i < L; i++ {
		c += int(p[i]) * pow3[i]
	}
	return Code(c)
}

// Decode reconstructs the Pattern encoded by c.
func Decode(c Code) Pattern {
	var p Pattern
	n := int(c)
	for i := 0; i < L; i++ {
		p[i] = Symbol(n % 3)
		n /= 3
	}
	return p
}

// String renders the pattern using the C/O/_ shorthand: Correct, Misplaced
// ("out of position"), Absent.
func (p Pattern) String() string {
	buf := make([]byte, L)
	for i, s := range p {
		switch s {
		case Correct:
			buf[i] = 'C'
		case Misplaced:
			buf[i] = 'O'
		default:
			buf[i] = '_'
		}
	}
	return string(buf)
}

// Parse is the inverse of String: it reads the C/O/_ shorthand back into a
// Pattern, for decoding feedback carried over the wire (models.GuessEntry).
func Parse(s string) (Pattern, error) {
	var p Pattern
	if len(s) != L {
		return p, fmt.Errorf("pattern %q must be %d characters, got %d", s, L, len(s))
	}
	for i := 0; i < L; i++ {
		switch s[i] {
		case 'C':
			p[i] = Correct
		case 'O':
			p[i] = Misplaced
		case '_':
			p[i] = Absent
		default:
			return Pattern{}, fmt.Errorf("pattern %q has invalid symbol %q at position %d", s, s[i], i)
		}
	}
	return p, nil
}
