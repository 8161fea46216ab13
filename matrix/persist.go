package matrix

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ashgrove-labs/wordle-solver/internal/wordleerr"
	"github.com/ashgrove-labs/wordle-solver/pattern"
	"github.com/ashgrove-labs/wordle-solver/word"
)

const (
	magic   uint32 = 0x574f5244 // "WORD"
	version uint16 = 1
)

// Save writes the portable binary dump described in spec §6: a small
// header, the ordered solution words, the ordered guess words, then the
// raw S*A matrix in row-major order.
func (m *Matrix) Save(w io.Writer) error {
	bw := bufio.NewWriter(w)

	if err := binary.Write(bw, binary.BigEndian, magic); err != nil {
		return err
	}
	if err := binary.Write(bw, binary.BigEndian, version); err != nil {
		return err
	}
	if err := binary.Write(bw, binary.BigEndian, uint8(word.L)); err != nil {
		return err
	}
	if err := binary.Write(bw, binary.BigEndian, uint32(m.S())); err != nil {
		return err
	}
	if err := binary.Write(bw, binary.BigEndian, uint32(m.A())); err != nil {
		return err
	}

	for _, sol := range m.solutions {
		if _, err := bw.Write(sol[:]); err != nil {
			return err
		}
	}
	for _, g := range m.guesses {
		if _, err := bw.Write(g[:]); err != nil {
			return err
		}
	}

	raw := make([]byte, len(m.data))
	for i, c := range m.data {
		raw[i] = byte(c)
	}
	if _, err := bw.Write(raw); err != nil {
		return err
	}

	return bw.Flush()
}

// Load reads back a Matrix written by Save, verifying the header and that
// exactly S*A data bytes remain.
func Load(r io.Reader) (*Matrix, error) {
	br := bufio.NewReader(r)

	var gotMagic uint32
	if err := binary.Read(br, binary.BigEndian, &gotMagic); err != nil {
		return nil, fmt.Errorf("%w: reading magic: %v", wordleerr.ErrCorruptMatrix, err)
	}
	if gotMagic != magic {
		return nil, fmt.Errorf("%w: bad magic 0x%x", wordleerr.ErrCorruptMatrix, gotMagic)
	}

	var gotVersion uint16
	if err := binary.Read(br, binary.BigEndian, &gotVersion); err != nil {
		return nil, fmt.Errorf("%w: reading version: %v", wordleerr.ErrCorruptMatrix, err)
	}
	if gotVersion != version {
		return nil, fmt.Errorf("%w: unsupported version %d", wordleerr.ErrCorruptMatrix, gotVersion)
	}

	var gotL uint8
	if err := binary.Read(br, binary.BigEndian, &gotL); err != nil {
		return nil, fmt.Errorf("%w: reading L: %v", wordleerr.ErrCorruptMatrix, err)
	}
	if int(gotL) != word.L {
		return nil, fmt.Errorf("%w: word length %d != %d", wordleerr.ErrCorruptMatrix, gotL, word.L)
	}

	var s, a uint32
	if err := binary.Read(br, binary.BigEndian, &s); err != nil {
		return nil, fmt.Errorf("%w: reading S: %v", wordleerr.ErrCorruptMatrix, err)
	}
	if err := binary.Read(br, binary.BigEndian, &a); err != nil {
		return nil, fmt.Errorf("%w: reading A: %v", wordleerr.ErrCorruptMatrix, err)
	}

	solutions := make([]word.Word, s)
	buf := make([]byte, word.L)
	for i := range solutions {
		if _, err := io.ReadFull(br, buf); err != nil {
			return nil, fmt.Errorf("%w: reading solution %d: %v", wordleerr.ErrCorruptMatrix, i, err)
		}
		w, err := word.New(string(buf))
		if err != nil {
			return nil, fmt.Errorf("%w: solution %d: %v", wordleerr.ErrCorruptMatrix, i, err)
		}
		solutions[i] = w
	}

	guesses := make([]word.Word, a)
	for i := range guesses {
		if _, err := io.ReadFull(br, buf); err != nil {
			return nil, fmt.Errorf("%w: reading guess %d: %v", wordleerr.ErrCorruptMatrix, i, err)
		}
		w, err := word.New(string(buf))
		if err != nil {
			return nil, fmt.Errorf("%w: guess %d: %v", wordleerr.ErrCorruptMatrix, i, err)
		}
		guesses[i] = w
	}

	solIndex, err := buildIndex(solutions)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", wordleerr.ErrCorruptMatrix, err)
	}
	guessIndex, err := buildIndex(guesses)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", wordleerr.ErrCorruptMatrix, err)
	}

	raw := make([]byte, int(s)*int(a))
	if _, err := io.ReadFull(br, raw); err != nil {
		return nil, fmt.Errorf("%w: reading matrix body (%d bytes expected): %v",
			wordleerr.ErrCorruptMatrix, len(raw), err)
	}

	// Any trailing bytes beyond the expected S*A body also indicate
	// corruption - the format has nothing after the matrix.
	var extra [1]byte
	if n, _ := br.Read(extra[:]); n > 0 {
		return nil, fmt.Errorf("%w: trailing data after matrix body", wordleerr.ErrCorruptMatrix)
	}

	data := make([]pattern.Code, len(raw))
	for i, b := range raw {
		data[i] = pattern.Code(b)
	}

	return &Matrix{
		solutions:  solutions,
		guesses:    guesses,
		solIndex:   solIndex,
		guessIndex: guessIndex,
		data:       data,
	}, nil
}
