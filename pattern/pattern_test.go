package pattern

import "testing"

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for c := 0; c < 243; c++ {
		p := Decode(Code(c))
		if got := Encode(p); got != Code(c) {
			t.Errorf("Encode(Decode(%d)) = %d, want %d", c, got, c)
		}
	}
}

func TestDecodeEncodeRoundTrip(t *testing.T) {
	for a := Symbol(0); a < 3; a++ {
		for b := Symbol(0); b < 3; b++ {
			for c := Symbol(0); c < 3; c++ {
				for d := Symbol(0); d < 3; d++ {
					for e := Symbol(0); e < 3; e++ {
						p := Pattern{a, b, c, d, e}
						if got := Decode(Encode(p)); got != p {
							t.Errorf("Decode(Encode(%v)) = %v, want %v", p, got, p)
						}
					}
				}
			}
		}
	}
}

func TestSpecExampleEncode(t *testing.T) {
	p := Pattern{Correct, Misplaced, Absent, Absent, Correct}
	if got := Encode(p); got != 167 {
		t.Errorf("Encode = %d, want 167", got)
	}
	if got := Decode(167); got != p {
		t.Errorf("Decode(167) = %v, want %v", got, p)
	}
}

func TestTerminalCode(t *testing.T) {
	all := Pattern{Correct, Correct, Correct, Correct, Correct}
	if got := Encode(all); got != TerminalCode {
		t.Errorf("Encode(all-correct) = %d, want TerminalCode=%d", got, TerminalCode)
	}
}

func TestPatternString(t *testing.T) {
	p := Pattern{Misplaced, Correct, Correct, Misplaced, Absent}
	if got := p.String(); got != "OCCO_" {
		t.Errorf("String() = %q, want OCCO_", got)
	}
}

func TestParseStringRoundTrip(t *testing.T) {
	for c := 0; c < 243; c++ {
		p := Decode(Code(c))
		got, err := Parse(p.String())
		if err != nil {
			t.Fatalf("Parse(%s): %v", p.String(), err)
		}
		if got != p {
			t.Errorf("Parse(%s) = %v, want %v", p.String(), got, p)
		}
	}
}

func TestParseRejectsBadInput(t *testing.T) {
	if _, err := Parse("CCCC"); err == nil {
		t.Error("expected error for wrong length")
	}
	if _, err := Parse("CCCCX"); err == nil {
		t.Error("expected error for invalid symbol")
	}
}
