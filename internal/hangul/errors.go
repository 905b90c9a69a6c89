package hangul

import "fmt"

// Slot names the jamo position that failed validation.
type Slot string

const (
	SlotLead  Slot = "lead"
	SlotVowel Slot = "vowel"
	SlotTrail Slot = "trail"
)

// OutOfRangeError reports a codepoint outside the Hangul Syllables block.
// It is returned only by whole-syllable decomposition.
type OutOfRangeError struct {
	Codepoint rune
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("codepoint U+%04X is outside the Hangul Syllables block", e.Codepoint)
}

// InvalidJamoError reports a character that is not a member of its slot's
// jamo table. It is returned only by jamo-based composition.
type InvalidJamoError struct {
	Slot Slot
	Jamo rune
}

func (e *InvalidJamoError) Error() string {
	return fmt.Sprintf("invalid %s jamo %q", e.Slot, e.Jamo)
}
