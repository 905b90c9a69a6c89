// Package deck builds Anki .apkg drill decks from vocabulary entries. Each
// note fronts a word and backs its gloss plus the per-syllable jamo
// breakdown.
//
// An .apkg is a zip archive holding a SQLite collection (collection.anki2)
// and a media manifest.
package deck

import (
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/ippo615/study-korean/internal/config"
	"github.com/ippo615/study-korean/internal/word"
)

// Note is a single front/back flashcard note.
type Note struct {
	Front string // the word
	Back  string // gloss and jamo breakdown
	Tags  string
}

// Deck is an in-memory drill deck, ready to be written as an .apkg.
type Deck struct {
	Name  string
	Notes []Note
}

// Build creates a deck from vocabulary entries. Every word must consist of
// precomposed syllable blocks; anything else is an error rather than a
// half-built card.
func Build(name string, entries []config.Entry) (*Deck, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("no vocabulary entries")
	}

	d := &Deck{Name: name}
	for _, e := range entries {
		back, err := renderBack(e)
		if err != nil {
			return nil, fmt.Errorf("building card for %q: %w", e.Word, err)
		}
		tags := ""
		if e.Notes != "" {
			tags = strings.Join(strings.Fields(e.Notes), "_")
		}
		d.Notes = append(d.Notes, Note{Front: e.Word, Back: back, Tags: tags})
	}
	return d, nil
}

// renderBack builds the answer side: gloss, one line per syllable, and the
// flattened jamo sequence.
func renderBack(e config.Entry) (string, error) {
	f, err := word.Parse(e.Word)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(e.Gloss)
	for _, s := range f.Syllables() {
		b.WriteString("<br>")
		if s.HasTrail() {
			fmt.Fprintf(&b, "%c = %c + %c + %c", s.Rune(), s.Lead(), s.Vowel(), s.Trail())
		} else {
			fmt.Fprintf(&b, "%c = %c + %c", s.Rune(), s.Lead(), s.Vowel())
		}
	}
	fmt.Fprintf(&b, "<br>jamo: %s", string(f.Jamos()))
	return b.String(), nil
}

// fieldSeparator joins note fields in the collection database.
const fieldSeparator = "\x1f"

// checksum returns Anki's sort-field checksum: the first 8 hex digits of
// the field's hash as an integer.
func checksum(sortField string) int64 {
	h := sha256.Sum256([]byte(sortField))
	var csum int64
	for _, b := range h[:4] {
		csum = csum<<8 | int64(b)
	}
	return csum
}

// noteGUID derives a stable GUID for a note from its first field, so
// re-exported decks update in place instead of duplicating.
func noteGUID(front string) string {
	h := sha256.Sum256([]byte(front))
	return fmt.Sprintf("%x", h[:5])
}
