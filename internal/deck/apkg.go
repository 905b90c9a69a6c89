package deck

import (
	"archive/zip"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "modernc.org/sqlite"
)

// Field is a field definition in a note type.
type Field struct {
	Name   string `json:"name"`
	Ord    int    `json:"ord"`
	Sticky bool   `json:"sticky"`
	RTL    bool   `json:"rtl"`
	Font   string `json:"font"`
	Size   int    `json:"size"`
}

// Template is a card template in a note type.
type Template struct {
	Name string `json:"name"`
	Ord  int    `json:"ord"`
	QFmt string `json:"qfmt"`
	AFmt string `json:"afmt"`
}

const modelCSS = `.card {
 font-family: sans-serif;
 font-size: 28px;
 text-align: center;
}
.word { font-size: 48px; }`

// WriteFile writes the deck as a valid .apkg: a zip archive containing the
// SQLite collection and an empty media manifest.
func (d *Deck) WriteFile(path string) error {
	tempDir, err := os.MkdirTemp("", "study-korean-deck-")
	if err != nil {
		return fmt.Errorf("creating temp dir: %w", err)
	}
	defer os.RemoveAll(tempDir)

	dbPath := filepath.Join(tempDir, "collection.anki2")
	if err := d.writeCollection(dbPath); err != nil {
		return fmt.Errorf("writing collection: %w", err)
	}

	mediaPath := filepath.Join(tempDir, "media")
	if err := os.WriteFile(mediaPath, []byte("{}"), 0644); err != nil {
		return fmt.Errorf("writing media manifest: %w", err)
	}

	outFile, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer outFile.Close()

	zipWriter := zip.NewWriter(outFile)
	for _, name := range []string{"collection.anki2", "media"} {
		w, err := zipWriter.Create(name)
		if err != nil {
			return fmt.Errorf("creating zip entry %s: %w", name, err)
		}
		f, err := os.Open(filepath.Join(tempDir, name))
		if err != nil {
			return fmt.Errorf("opening %s: %w", name, err)
		}
		_, err = io.Copy(w, f)
		f.Close()
		if err != nil {
			return fmt.Errorf("adding %s to zip: %w", name, err)
		}
	}
	if err := zipWriter.Close(); err != nil {
		return fmt.Errorf("closing zip: %w", err)
	}

	return nil
}

// collectionSchema is the legacy Anki 2 collection layout. Anki rebuilds
// its indexes on import, so only the tables are created here.
const collectionSchema = `
CREATE TABLE col (
	id     integer primary key,
	crt    integer not null,
	mod    integer not null,
	scm    integer not null,
	ver    integer not null,
	dty    integer not null,
	usn    integer not null,
	ls     integer not null,
	conf   text not null,
	models text not null,
	decks  text not null,
	dconf  text not null,
	tags   text not null
);
CREATE TABLE notes (
	id    integer primary key,
	guid  text not null,
	mid   integer not null,
	mod   integer not null,
	usn   integer not null,
	tags  text not null,
	flds  text not null,
	sfld  text not null,
	csum  integer not null,
	flags integer not null,
	data  text not null
);
CREATE TABLE cards (
	id     integer primary key,
	nid    integer not null,
	did    integer not null,
	ord    integer not null,
	mod    integer not null,
	usn    integer not null,
	type   integer not null,
	queue  integer not null,
	due    integer not null,
	ivl    integer not null,
	factor integer not null,
	reps   integer not null,
	lapses integer not null,
	left   integer not null,
	odue   integer not null,
	odid   integer not null,
	flags  integer not null,
	data   text not null
);
CREATE TABLE revlog (
	id      integer primary key,
	cid     integer not null,
	usn     integer not null,
	ease    integer not null,
	ivl     integer not null,
	lastIvl integer not null,
	factor  integer not null,
	time    integer not null,
	type    integer not null
);
CREATE TABLE graves (
	usn  integer not null,
	oid  integer not null,
	type integer not null
);
`

func (d *Deck) writeCollection(dbPath string) error {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(collectionSchema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	now := time.Now()
	nowSec := now.Unix()
	nowMilli := now.UnixMilli()
	modelID := nowMilli
	deckID := nowMilli + 1

	models, err := modelsJSON(modelID, deckID)
	if err != nil {
		return err
	}
	decks, err := decksJSON(deckID, d.Name, nowSec)
	if err != nil {
		return err
	}
	confJSON, err := json.Marshal(map[string]interface{}{
		"nextPos": 1,
		"curDeck": deckID,
		"activeDecks": []int64{deckID},
		"curModel": strconv.FormatInt(modelID, 10),
		"estTimes": true,
		"dueCounts": true,
		"sortType": "noteFld",
		"sortBackwards": false,
		"collapseTime": 1200,
		"timeLim": 0,
		"newSpread": 0,
		"addToCur": true,
	})
	if err != nil {
		return fmt.Errorf("marshaling conf: %w", err)
	}
	dconfJSON, err := json.Marshal(map[string]interface{}{
		"1": map[string]interface{}{
			"id": 1,
			"name": "Default",
			"autoplay": true,
			"timer": 0,
			"maxTaken": 60,
			"mod": nowSec,
			"usn": 0,
		},
	})
	if err != nil {
		return fmt.Errorf("marshaling dconf: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO col (id, crt, mod, scm, ver, dty, usn, ls, conf, models, decks, dconf, tags)
		VALUES (1, ?, ?, ?, 11, 0, 0, 0, ?, ?, ?, ?, '{}')
	`, nowSec, nowMilli, nowMilli, string(confJSON), models, decks, string(dconfJSON))
	if err != nil {
		return fmt.Errorf("inserting collection row: %w", err)
	}

	for i, note := range d.Notes {
		noteID := nowMilli + int64(i)
		cardID := nowMilli + int64(len(d.Notes)+i)
		flds := note.Front + fieldSeparator + note.Back

		_, err := db.Exec(`
			INSERT INTO notes (id, guid, mid, mod, usn, tags, flds, sfld, csum, flags, data)
			VALUES (?, ?, ?, ?, -1, ?, ?, ?, ?, 0, '')
		`, noteID, noteGUID(note.Front), modelID, nowSec, note.Tags, flds, note.Front, checksum(note.Front))
		if err != nil {
			return fmt.Errorf("inserting note %q: %w", note.Front, err)
		}

		_, err = db.Exec(`
			INSERT INTO cards (id, nid, did, ord, mod, usn, type, queue, due, ivl, factor, reps, lapses, left, odue, odid, flags, data)
			VALUES (?, ?, ?, 0, ?, -1, 0, 0, ?, 0, 0, 0, 0, 0, 0, 0, 0, '')
		`, cardID, noteID, deckID, nowSec, i+1)
		if err != nil {
			return fmt.Errorf("inserting card for %q: %w", note.Front, err)
		}
	}

	return nil
}

// modelsJSON builds the models map for the col table: one note type with
// Word/Breakdown fields and a single forward template.
func modelsJSON(modelID, deckID int64) (string, error) {
	model := map[string]interface{}{
		"id": modelID,
		"name": "Hangul Drill",
		"type": 0,
		"mod": time.Now().Unix(),
		"usn": -1,
		"sortf": 0,
		"did": deckID,
		"flds": []Field{
			{Name: "Word", Ord: 0, Font: "Arial", Size: 20},
			{Name: "Breakdown", Ord: 1, Font: "Arial", Size: 20},
		},
		"tmpls": []Template{
			{
				Name: "Recognition",
				Ord:  0,
				QFmt: `<div class="word">{{Word}}</div>`,
				AFmt: `{{FrontSide}}<hr id="answer">{{Breakdown}}`,
			},
		},
		"css": modelCSS,
	}

	out, err := json.Marshal(map[string]interface{}{
		strconv.FormatInt(modelID, 10): model,
	})
	if err != nil {
		return "", fmt.Errorf("marshaling models: %w", err)
	}
	return string(out), nil
}

func decksJSON(deckID int64, name string, nowSec int64) (string, error) {
	decks := map[string]interface{}{
		"1": map[string]interface{}{
			"id": 1,
			"name": "Default",
			"desc": "",
			"mod": nowSec,
			"usn": 0,
			"conf": 1,
			"dyn": 0,
			"collapsed": false,
			"newToday": []int{0, 0},
			"revToday": []int{0, 0},
			"lrnToday": []int{0, 0},
			"timeToday": []int{0, 0},
		},
		strconv.FormatInt(deckID, 10): map[string]interface{}{
			"id": deckID,
			"name": name,
			"desc": "Hangul syllable drill deck",
			"mod": nowSec,
			"usn": -1,
			"conf": 1,
			"dyn": 0,
			"collapsed": false,
			"newToday": []int{0, 0},
			"revToday": []int{0, 0},
			"lrnToday": []int{0, 0},
			"timeToday": []int{0, 0},
		},
	}

	out, err := json.Marshal(decks)
	if err != nil {
		return "", fmt.Errorf("marshaling decks: %w", err)
	}
	return string(out), nil
}
