// Package hangul composes and decomposes precomposed Hangul syllable blocks.
//
// The Unicode Hangul Syllables block (U+AC00..U+D7A3) is laid out so that a
// syllable's codepoint is a closed-form function of its jamo indices:
//
//	codepoint = 0xAC00 + (lead*21 + vowel)*28 + trail
//
// with 19 lead consonants, 21 vowels and 28 trailing consonants (index 0
// meaning "no trailing consonant"). This package uses that arithmetic
// directly instead of lookup tables per syllable.
package hangul

const (
	// SyllableBase is the first codepoint of the Hangul Syllables block (가).
	SyllableBase rune = 0xAC00
	// SyllableEnd is the last codepoint of the Hangul Syllables block (힣).
	SyllableEnd rune = 0xD7A3

	LeadCount  = 19
	VowelCount = 21
	TrailCount = 28

	// NoTrail is the trail argument for a syllable without a trailing
	// consonant. It occupies index 0 of the trail table.
	NoTrail rune = 0
)

// Jamo tables in Unicode index order. A character's position is the index
// used by the composition arithmetic.
var (
	leads = []rune{
		'ㄱ', 'ㄲ', 'ㄴ', 'ㄷ', 'ㄸ', 'ㄹ', 'ㅁ', 'ㅂ', 'ㅃ', 'ㅅ',
		'ㅆ', 'ㅇ', 'ㅈ', 'ㅉ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ',
	}
	vowels = []rune{
		'ㅏ', 'ㅐ', 'ㅑ', 'ㅒ', 'ㅓ', 'ㅔ', 'ㅕ', 'ㅖ', 'ㅗ', 'ㅘ',
		'ㅙ', 'ㅚ', 'ㅛ', 'ㅜ', 'ㅝ', 'ㅞ', 'ㅟ', 'ㅠ', 'ㅡ', 'ㅢ',
		'ㅣ',
	}
	trails = []rune{
		NoTrail, 'ㄱ', 'ㄲ', 'ㄳ', 'ㄴ', 'ㄵ', 'ㄶ', 'ㄷ', 'ㄹ', 'ㄺ',
		'ㄻ', 'ㄼ', 'ㄽ', 'ㄾ', 'ㄿ', 'ㅀ', 'ㅁ', 'ㅂ', 'ㅄ', 'ㅅ',
		'ㅆ', 'ㅇ', 'ㅈ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ',
	}

	leadIndex  = make(map[rune]int, LeadCount)
	vowelIndex = make(map[rune]int, VowelCount)
	trailIndex = make(map[rune]int, TrailCount)
)

func init() {
	for i, r := range leads {
		leadIndex[r] = i
	}
	for i, r := range vowels {
		vowelIndex[r] = i
	}
	for i, r := range trails {
		trailIndex[r] = i
	}
}

// IsSyllable reports whether r is a precomposed Hangul syllable block.
// Bare jamo and compatibility jamo live in separate blocks and are not
// syllables.
func IsSyllable(r rune) bool {
	return r >= SyllableBase && r <= SyllableEnd
}

// IsLead reports whether r is one of the 19 lead consonants.
func IsLead(r rune) bool {
	_, ok := leadIndex[r]
	return ok
}

// IsVowel reports whether r is one of the 21 vowels.
func IsVowel(r rune) bool {
	_, ok := vowelIndex[r]
	return ok
}

// IsTrail reports whether r is one of the 27 trailing consonants or NoTrail.
func IsTrail(r rune) bool {
	_, ok := trailIndex[r]
	return ok
}

// Leads returns the lead consonant table in index order.
func Leads() []rune {
	return append([]rune(nil), leads...)
}

// Vowels returns the vowel table in index order.
func Vowels() []rune {
	return append([]rune(nil), vowels...)
}

// Trails returns the trailing consonant table in index order. Index 0 is
// NoTrail.
func Trails() []rune {
	return append([]rune(nil), trails...)
}
