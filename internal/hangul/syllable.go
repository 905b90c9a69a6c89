package hangul

import "fmt"

// Syllable is a single precomposed Hangul syllable block together with its
// decomposition into lead, vowel and trail indices. It is an immutable
// value; the indices are always consistent with the rune.
type Syllable struct {
	r     rune
	lead  int
	vowel int
	trail int
}

// FromSyllable decomposes a precomposed syllable block. It returns an
// *OutOfRangeError when r is not in the Hangul Syllables block — bare jamo
// and compatibility jamo are rejected, not silently accepted.
func FromSyllable(r rune) (Syllable, error) {
	if !IsSyllable(r) {
		return Syllable{}, &OutOfRangeError{Codepoint: r}
	}
	offset := int(r - SyllableBase)
	return Syllable{
		r:     r,
		lead:  offset / (VowelCount * TrailCount),
		vowel: (offset / TrailCount) % VowelCount,
		trail: offset % TrailCount,
	}, nil
}

// FromJamos composes a syllable from jamo characters. Pass NoTrail for a
// syllable without a trailing consonant. A character missing from its
// slot's table yields an *InvalidJamoError naming the slot; validation
// happens before any arithmetic.
func FromJamos(lead, vowel, trail rune) (Syllable, error) {
	li, ok := leadIndex[lead]
	if !ok {
		return Syllable{}, &InvalidJamoError{Slot: SlotLead, Jamo: lead}
	}
	vi, ok := vowelIndex[vowel]
	if !ok {
		return Syllable{}, &InvalidJamoError{Slot: SlotVowel, Jamo: vowel}
	}
	ti, ok := trailIndex[trail]
	if !ok {
		return Syllable{}, &InvalidJamoError{Slot: SlotTrail, Jamo: trail}
	}
	return Syllable{
		r:     SyllableBase + rune((li*VowelCount+vi)*TrailCount+ti),
		lead:  li,
		vowel: vi,
		trail: ti,
	}, nil
}

// Rune returns the composed syllable block.
func (s Syllable) Rune() rune { return s.r }

// Codepoint returns the syllable's Unicode codepoint.
func (s Syllable) Codepoint() int { return int(s.r) }

func (s Syllable) String() string { return string(s.r) }

// LeadIndex returns the lead consonant index in [0, 19).
func (s Syllable) LeadIndex() int { return s.lead }

// VowelIndex returns the vowel index in [0, 21).
func (s Syllable) VowelIndex() int { return s.vowel }

// TrailIndex returns the trailing consonant index in [0, 28); 0 means no
// trailing consonant.
func (s Syllable) TrailIndex() int { return s.trail }

// Lead returns the lead consonant character.
func (s Syllable) Lead() rune { return leads[s.lead] }

// Vowel returns the vowel character.
func (s Syllable) Vowel() rune { return vowels[s.vowel] }

// Trail returns the trailing consonant character, or NoTrail when absent.
func (s Syllable) Trail() rune { return trails[s.trail] }

// HasTrail reports whether the syllable has a trailing consonant.
func (s Syllable) HasTrail() bool { return s.trail != 0 }

// WithTrail returns a copy of the syllable with the given trailing
// consonant attached. The receiver must be an open syllable; attaching to a
// closed one is an error, as is a rune outside the trail table (NoTrail
// included).
func (s Syllable) WithTrail(trail rune) (Syllable, error) {
	if s.trail != 0 {
		return Syllable{}, fmt.Errorf("syllable %q already has trailing consonant %q", s.r, trails[s.trail])
	}
	ti, ok := trailIndex[trail]
	if !ok || ti == 0 {
		return Syllable{}, &InvalidJamoError{Slot: SlotTrail, Jamo: trail}
	}
	return Syllable{
		r:     s.r + rune(ti),
		lead:  s.lead,
		vowel: s.vowel,
		trail: ti,
	}, nil
}

// EndsWith reports whether the syllable's last jamo equals the argument:
// the trailing consonant when present, the vowel otherwise.
func (s Syllable) EndsWith(jamo rune) bool {
	if s.trail != 0 {
		return trails[s.trail] == jamo
	}
	return vowels[s.vowel] == jamo
}
