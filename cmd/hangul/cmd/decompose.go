package cmd

import (
	"fmt"
	"strings"

	"github.com/ippo615/study-korean/internal/hangul"
	"github.com/spf13/cobra"
)

var decomposeCmd = &cobra.Command{
	Use:   "decompose <text>",
	Short: "Break syllable blocks into their jamo",
	Long: `Decompose each Hangul syllable in the given text into its lead
consonant, vowel and trailing consonant, with the indices the Unicode
block arithmetic assigns them.

Example:
  hangul decompose 한글
  hangul decompose 는 다`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDecompose,
}

func init() {
	rootCmd.AddCommand(decomposeCmd)
}

func runDecompose(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, "")

	for _, r := range text {
		s, err := hangul.FromSyllable(r)
		if err != nil {
			fmt.Printf("Character: %c\n", r)
			fmt.Printf("  %v\n\n", err)
			continue
		}

		fmt.Printf("Character: %c\n", r)
		fmt.Printf("  Codepoint: U+%04X\n", s.Codepoint())
		fmt.Printf("  Lead:      %c (index %d)\n", s.Lead(), s.LeadIndex())
		fmt.Printf("  Vowel:     %c (index %d)\n", s.Vowel(), s.VowelIndex())
		if s.HasTrail() {
			fmt.Printf("  Trail:     %c (index %d)\n", s.Trail(), s.TrailIndex())
		} else {
			fmt.Printf("  Trail:     (none)\n")
		}
		fmt.Println()
	}

	return nil
}
