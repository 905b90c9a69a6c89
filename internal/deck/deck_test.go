package deck

import (
	"archive/zip"
	"database/sql"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ippo615/study-korean/internal/config"
)

func TestBuild(t *testing.T) {
	entries := []config.Entry{
		{Word: "한국", Gloss: "Korea"},
		{Word: "다", Gloss: "all"},
		{Word: "먹다", Gloss: "to eat", Notes: "verb"},
	}

	d, err := Build("Korean Vocabulary", entries)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if len(d.Notes) != len(entries) {
		t.Fatalf("built %d notes, want %d", len(d.Notes), len(entries))
	}

	first := d.Notes[0]
	if first.Front != "한국" {
		t.Errorf("Front = %q, want 한국", first.Front)
	}
	for _, want := range []string{"Korea", "한 = ㅎ + ㅏ + ㄴ", "국 = ㄱ + ㅜ + ㄱ", "jamo: ㅎㅏㄴㄱㅜㄱ"} {
		if !strings.Contains(first.Back, want) {
			t.Errorf("Back %q missing %q", first.Back, want)
		}
	}

	// Open syllables render without a trail slot.
	if !strings.Contains(d.Notes[1].Back, "다 = ㄷ + ㅏ") {
		t.Errorf("Back %q missing open-syllable breakdown", d.Notes[1].Back)
	}
	if strings.Contains(d.Notes[1].Back, "다 = ㄷ + ㅏ +") {
		t.Errorf("Back %q renders an absent trail", d.Notes[1].Back)
	}

	if d.Notes[2].Tags != "verb" {
		t.Errorf("Tags = %q, want verb", d.Notes[2].Tags)
	}
}

func TestBuildRejectsBadWords(t *testing.T) {
	tests := []struct {
		name    string
		entries []config.Entry
	}{
		{"empty list", nil},
		{"bare jamo", []config.Entry{{Word: "ㅎㅏㄴ", Gloss: "x"}}},
		{"latin", []config.Entry{{Word: "hangul", Gloss: "x"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Build("deck", tt.entries); err == nil {
				t.Error("Build did not fail")
			}
		})
	}
}

func TestWriteFile(t *testing.T) {
	d, err := Build("Korean Vocabulary", []config.Entry{
		{Word: "이름", Gloss: "name"},
		{Word: "책", Gloss: "book"},
	})
	if err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(t.TempDir(), "drill.apkg")
	if err := d.WriteFile(out); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	// The package must be a zip holding the collection and media manifest.
	zr, err := zip.OpenReader(out)
	if err != nil {
		t.Fatalf("opening apkg as zip: %v", err)
	}
	defer zr.Close()

	names := make(map[string]bool)
	for _, f := range zr.File {
		names[f.Name] = true
	}
	if !names["collection.anki2"] || !names["media"] {
		t.Fatalf("apkg entries = %v, want collection.anki2 and media", names)
	}

	// The collection must be a SQLite database with our notes in it.
	dbPath := filepath.Join(t.TempDir(), "collection.anki2")
	if err := extract(zr, "collection.anki2", dbPath); err != nil {
		t.Fatal(err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	var noteCount, cardCount int
	if err := db.QueryRow("SELECT count(*) FROM notes").Scan(&noteCount); err != nil {
		t.Fatalf("counting notes: %v", err)
	}
	if err := db.QueryRow("SELECT count(*) FROM cards").Scan(&cardCount); err != nil {
		t.Fatalf("counting cards: %v", err)
	}
	if noteCount != 2 || cardCount != 2 {
		t.Errorf("notes/cards = %d/%d, want 2/2", noteCount, cardCount)
	}

	var flds string
	if err := db.QueryRow("SELECT flds FROM notes WHERE sfld = ?", "이름").Scan(&flds); err != nil {
		t.Fatalf("reading note fields: %v", err)
	}
	parts := strings.Split(flds, fieldSeparator)
	if len(parts) != 2 || parts[0] != "이름" || !strings.Contains(parts[1], "름 = ㄹ + ㅡ + ㅁ") {
		t.Errorf("note fields = %q", flds)
	}
}

func extract(zr *zip.ReadCloser, name, dst string) error {
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		r, err := f.Open()
		if err != nil {
			return err
		}
		defer r.Close()
		w, err := os.Create(dst)
		if err != nil {
			return err
		}
		defer w.Close()
		_, err = io.Copy(w, r)
		return err
	}
	return os.ErrNotExist
}
