// Package word models Korean words as sequences of Hangul syllables, with
// the jamo-level operations suffix attachment needs: flattening a word to
// its jamo sequence and merging a suffix's first consonant into the last
// syllable's trail slot.
package word

import (
	"fmt"
	"strings"

	"github.com/ippo615/study-korean/internal/hangul"
)

// Form is a Korean word in a specific written form.
type Form struct {
	syllables []hangul.Syllable
}

// Parse builds a Form from a string of precomposed syllable blocks. Any
// other rune fails with the codec's *OutOfRangeError.
func Parse(s string) (*Form, error) {
	if s == "" {
		return nil, fmt.Errorf("empty word")
	}
	var f Form
	for _, r := range s {
		syl, err := hangul.FromSyllable(r)
		if err != nil {
			return nil, fmt.Errorf("parsing word %q: %w", s, err)
		}
		f.syllables = append(f.syllables, syl)
	}
	return &f, nil
}

func (f *Form) String() string {
	var b strings.Builder
	for _, s := range f.syllables {
		b.WriteRune(s.Rune())
	}
	return b.String()
}

// Len returns the number of syllables.
func (f *Form) Len() int { return len(f.syllables) }

// Syllables returns the syllable sequence as a copy.
func (f *Form) Syllables() []hangul.Syllable {
	return append([]hangul.Syllable(nil), f.syllables...)
}

// Jamos flattens the word into its jamo sequence, omitting absent trails.
// 한글 becomes ㅎㅏㄴㄱㅡㄹ.
func (f *Form) Jamos() []rune {
	jamos := make([]rune, 0, 3*len(f.syllables))
	for _, s := range f.syllables {
		jamos = append(jamos, s.Lead(), s.Vowel())
		if s.HasTrail() {
			jamos = append(jamos, s.Trail())
		}
	}
	return jamos
}

// Append attaches suffix to the word. With merge set, the suffix's first
// rune must be a lead consonant and becomes the trailing consonant of the
// last syllable (가 + ㅂ니다 = 갑니다); the remaining runes must be syllable
// blocks. Without merge the whole suffix is parsed as syllable blocks.
func (f *Form) Append(suffix string, merge bool) error {
	if suffix == "" {
		return nil
	}
	runes := []rune(suffix)

	if merge {
		first := runes[0]
		if !hangul.IsLead(first) {
			return fmt.Errorf("appending %q to %q: first rune %q is not a lead consonant", suffix, f, first)
		}
		last := f.syllables[len(f.syllables)-1]
		merged, err := last.WithTrail(first)
		if err != nil {
			return fmt.Errorf("appending %q to %q: %w", suffix, f, err)
		}
		rest, err := parseSyllables(runes[1:])
		if err != nil {
			return fmt.Errorf("appending %q to %q: %w", suffix, f, err)
		}
		f.syllables[len(f.syllables)-1] = merged
		f.syllables = append(f.syllables, rest...)
		return nil
	}

	rest, err := parseSyllables(runes)
	if err != nil {
		return fmt.Errorf("appending %q to %q: %w", suffix, f, err)
	}
	f.syllables = append(f.syllables, rest...)
	return nil
}

// EndsInVowel reports whether the last syllable is open (no trailing
// consonant). Suffix selection hinges on this.
func (f *Form) EndsInVowel() bool {
	return !f.syllables[len(f.syllables)-1].HasTrail()
}

// EndsInConsonant reports whether the last syllable has a trailing
// consonant.
func (f *Form) EndsInConsonant() bool {
	return f.syllables[len(f.syllables)-1].HasTrail()
}

func parseSyllables(runes []rune) ([]hangul.Syllable, error) {
	var out []hangul.Syllable
	for _, r := range runes {
		s, err := hangul.FromSyllable(r)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
