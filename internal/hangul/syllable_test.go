package hangul

import (
	"errors"
	"testing"
)

func TestFromSyllableDecomposes(t *testing.T) {
	tests := []struct {
		name  string
		input rune
		lead  rune
		vowel rune
		trail rune
	}{
		{"neun", '는', 'ㄴ', 'ㅡ', 'ㄴ'},
		{"da no trail", '다', 'ㄷ', 'ㅏ', NoTrail},
		{"block start", '가', 'ㄱ', 'ㅏ', NoTrail},
		{"block end", '힣', 'ㅎ', 'ㅣ', 'ㅎ'},
		{"gaps", '값', 'ㄱ', 'ㅏ', 'ㅄ'},
		{"ppang", '빵', 'ㅃ', 'ㅏ', 'ㅇ'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := FromSyllable(tt.input)
			if err != nil {
				t.Fatalf("FromSyllable(%q) error: %v", tt.input, err)
			}
			if s.Rune() != tt.input {
				t.Errorf("Rune() = %q, want %q", s.Rune(), tt.input)
			}
			if s.Lead() != tt.lead || s.Vowel() != tt.vowel || s.Trail() != tt.trail {
				t.Errorf("jamos = %q %q %q, want %q %q %q",
					s.Lead(), s.Vowel(), s.Trail(), tt.lead, tt.vowel, tt.trail)
			}
			if s.HasTrail() != (tt.trail != NoTrail) {
				t.Errorf("HasTrail() = %v, want %v", s.HasTrail(), tt.trail != NoTrail)
			}
		})
	}
}

func TestFromSyllableOutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		input rune
	}{
		{"below block", 0xABFF},
		{"above block", 0xD7A4},
		{"compatibility jamo", 'ㅁ'},
		{"conjoining lead jamo", 0x1100},
		{"ascii", 'a'},
		{"han", '中'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromSyllable(tt.input)
			var oor *OutOfRangeError
			if !errors.As(err, &oor) {
				t.Fatalf("FromSyllable(%q) error = %v, want *OutOfRangeError", tt.input, err)
			}
			if oor.Codepoint != tt.input {
				t.Errorf("Codepoint = U+%04X, want U+%04X", oor.Codepoint, tt.input)
			}
		})
	}
}

func TestFromSyllableBoundaries(t *testing.T) {
	for _, r := range []rune{SyllableBase, SyllableEnd} {
		if _, err := FromSyllable(r); err != nil {
			t.Errorf("FromSyllable(U+%04X) error: %v", r, err)
		}
	}
}

func TestFromJamosComposes(t *testing.T) {
	tests := []struct {
		name  string
		lead  rune
		vowel rune
		trail rune
		want  rune
	}{
		{"neun", 'ㄴ', 'ㅡ', 'ㄴ', '는'},
		{"da no trail", 'ㄷ', 'ㅏ', NoTrail, '다'},
		{"first syllable", 'ㄱ', 'ㅏ', NoTrail, '가'},
		{"last syllable", 'ㅎ', 'ㅣ', 'ㅎ', '힣'},
		{"cluster trail", 'ㄷ', 'ㅏ', 'ㄺ', '닭'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := FromJamos(tt.lead, tt.vowel, tt.trail)
			if err != nil {
				t.Fatalf("FromJamos(%q, %q, %q) error: %v", tt.lead, tt.vowel, tt.trail, err)
			}
			if s.Rune() != tt.want {
				t.Errorf("Rune() = %q, want %q", s.Rune(), tt.want)
			}
		})
	}
}

func TestFromJamosInvalid(t *testing.T) {
	tests := []struct {
		name  string
		lead  rune
		vowel rune
		trail rune
		slot  Slot
		jamo  rune
	}{
		// ㅁ is a valid lead but never a vowel.
		{"consonant as vowel", 'ㅁ', 'ㅁ', NoTrail, SlotVowel, 'ㅁ'},
		// ㄸ can start a syllable but never end one.
		{"tt as trail", 'ㄱ', 'ㅏ', 'ㄸ', SlotTrail, 'ㄸ'},
		{"vowel as lead", 'ㅏ', 'ㅏ', NoTrail, SlotLead, 'ㅏ'},
		{"latin lead", 'g', 'ㅏ', NoTrail, SlotLead, 'g'},
		{"syllable as vowel", 'ㄱ', '가', NoTrail, SlotVowel, '가'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromJamos(tt.lead, tt.vowel, tt.trail)
			var ije *InvalidJamoError
			if !errors.As(err, &ije) {
				t.Fatalf("FromJamos error = %v, want *InvalidJamoError", err)
			}
			if ije.Slot != tt.slot || ije.Jamo != tt.jamo {
				t.Errorf("error names %s %q, want %s %q", ije.Slot, ije.Jamo, tt.slot, tt.jamo)
			}
		})
	}
}

// Every codepoint in the block must survive decompose → compose unchanged,
// and every valid index triple must survive compose → decompose.
func TestRoundTripWholeBlock(t *testing.T) {
	for r := SyllableBase; r <= SyllableEnd; r++ {
		s, err := FromSyllable(r)
		if err != nil {
			t.Fatalf("FromSyllable(U+%04X) error: %v", r, err)
		}
		back, err := FromJamos(s.Lead(), s.Vowel(), s.Trail())
		if err != nil {
			t.Fatalf("FromJamos(%q, %q, %q) error: %v", s.Lead(), s.Vowel(), s.Trail(), err)
		}
		if back.Rune() != r {
			t.Fatalf("round trip U+%04X -> U+%04X", r, back.Rune())
		}
	}
}

func TestIndexConsistency(t *testing.T) {
	leads, vowels, trails := Leads(), Vowels(), Trails()
	for li := range leads {
		for vi := range vowels {
			for ti := range trails {
				s, err := FromJamos(leads[li], vowels[vi], trails[ti])
				if err != nil {
					t.Fatalf("FromJamos(%d, %d, %d) error: %v", li, vi, ti, err)
				}
				back, err := FromSyllable(s.Rune())
				if err != nil {
					t.Fatalf("FromSyllable(%q) error: %v", s.Rune(), err)
				}
				if back.LeadIndex() != li || back.VowelIndex() != vi || back.TrailIndex() != ti {
					t.Fatalf("indices (%d,%d,%d) -> (%d,%d,%d)",
						li, vi, ti, back.LeadIndex(), back.VowelIndex(), back.TrailIndex())
				}
			}
		}
	}
}

func TestWithTrail(t *testing.T) {
	open, err := FromSyllable('가')
	if err != nil {
		t.Fatal(err)
	}

	closed, err := open.WithTrail('ㅂ')
	if err != nil {
		t.Fatalf("WithTrail(ㅂ) error: %v", err)
	}
	if closed.Rune() != '갑' {
		t.Errorf("WithTrail(ㅂ) = %q, want 갑", closed.Rune())
	}
	// Receiver is unchanged.
	if open.HasTrail() {
		t.Error("WithTrail mutated its receiver")
	}

	if _, err := closed.WithTrail('ㄴ'); err == nil {
		t.Error("WithTrail on a closed syllable did not fail")
	}

	var ije *InvalidJamoError
	if _, err := open.WithTrail('ㄸ'); !errors.As(err, &ije) {
		t.Errorf("WithTrail(ㄸ) error = %v, want *InvalidJamoError", err)
	}
	if _, err := open.WithTrail(NoTrail); !errors.As(err, &ije) {
		t.Errorf("WithTrail(NoTrail) error = %v, want *InvalidJamoError", err)
	}
}

func TestEndsWith(t *testing.T) {
	tests := []struct {
		syllable rune
		jamo     rune
		want     bool
	}{
		{'는', 'ㄴ', true},  // trailing consonant
		{'는', 'ㅡ', false}, // vowel hidden by the trail
		{'다', 'ㅏ', true},  // open syllable falls back to the vowel
		{'다', 'ㄷ', false},
	}
	for _, tt := range tests {
		s, err := FromSyllable(tt.syllable)
		if err != nil {
			t.Fatal(err)
		}
		if got := s.EndsWith(tt.jamo); got != tt.want {
			t.Errorf("%q.EndsWith(%q) = %v, want %v", tt.syllable, tt.jamo, got, tt.want)
		}
	}
}

func TestJamoTables(t *testing.T) {
	if len(Leads()) != LeadCount || len(Vowels()) != VowelCount || len(Trails()) != TrailCount {
		t.Fatalf("table sizes = %d/%d/%d, want %d/%d/%d",
			len(Leads()), len(Vowels()), len(Trails()), LeadCount, VowelCount, TrailCount)
	}
	if Trails()[0] != NoTrail {
		t.Error("trail table index 0 is not NoTrail")
	}

	// Accessors hand out copies, not the tables themselves.
	l := Leads()
	l[0] = 'x'
	if Leads()[0] != 'ㄱ' {
		t.Error("Leads() exposed the internal table")
	}

	if !IsLead('ㄸ') || IsTrail('ㄸ') {
		t.Error("ㄸ must be a lead and not a trail")
	}
	if !IsTrail('ㅄ') || IsLead('ㅄ') {
		t.Error("ㅄ must be a trail and not a lead")
	}
	if !IsTrail(NoTrail) {
		t.Error("NoTrail must be accepted as a trail")
	}
	if !IsVowel('ㅢ') || IsVowel('ㅁ') {
		t.Error("vowel table mismatch")
	}
	if !IsSyllable('한') || IsSyllable('ㅎ') {
		t.Error("IsSyllable mismatch")
	}
}
