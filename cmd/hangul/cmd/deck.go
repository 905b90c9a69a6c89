package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ippo615/study-korean/internal/config"
	"github.com/ippo615/study-korean/internal/deck"
	"github.com/spf13/cobra"
)

var (
	deckOutput string
	deckVocab  string
	deckName   string
)

var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Export the vocabulary as an Anki drill deck",
	Long: `Build an Anki .apkg deck from the vocabulary file. Each card fronts
a word and backs its gloss with the per-syllable jamo breakdown.

The vocabulary lives at <config>/vocabulary.yaml; a starter list is
written there on first run. Use --vocab to point at a different file.`,
	RunE: runDeck,
}

func init() {
	rootCmd.AddCommand(deckCmd)

	deckCmd.Flags().StringVarP(&deckOutput, "output", "o", "korean-drill.apkg", "output .apkg path")
	deckCmd.Flags().StringVar(&deckVocab, "vocab", "", "vocabulary YAML file (default <config>/vocabulary.yaml)")
	deckCmd.Flags().StringVar(&deckName, "name", "Korean Vocabulary", "deck name shown in Anki")
}

func runDeck(cmd *cobra.Command, args []string) error {
	vocab, err := loadVocab()
	if err != nil {
		return err
	}

	d, err := deck.Build(deckName, vocab.Entries)
	if err != nil {
		return fmt.Errorf("building deck: %w", err)
	}

	if err := d.WriteFile(deckOutput); err != nil {
		return fmt.Errorf("writing %s: %w", deckOutput, err)
	}

	fmt.Printf("Wrote %d cards to %s\n", len(d.Notes), deckOutput)
	return nil
}

// loadVocab loads the requested vocabulary file, seeding the config
// directory with the starter list when nothing exists yet.
func loadVocab() (*config.Vocabulary, error) {
	if deckVocab != "" {
		return config.LoadVocabulary(deckVocab)
	}

	configDir := getConfigDir()
	path := filepath.Join(configDir, "vocabulary.yaml")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		vocab := config.DefaultVocabulary()
		if err := os.MkdirAll(configDir, 0755); err == nil {
			if err := config.SaveVocabulary(path, vocab); err == nil {
				fmt.Fprintf(os.Stderr, "Wrote starter vocabulary to %s\n", path)
			}
		}
		return vocab, nil
	}

	return config.LoadVocabulary(path)
}
