package cmd

import (
	"fmt"

	"github.com/ippo615/study-korean/internal/hangul"
	"github.com/spf13/cobra"
)

var composeCmd = &cobra.Command{
	Use:   "compose <lead> <vowel> [trail]",
	Short: "Build a syllable block from jamo",
	Long: `Compose a precomposed syllable block from a lead consonant, a vowel
and an optional trailing consonant.

Example:
  hangul compose ㄴ ㅡ ㄴ
  hangul compose ㄷ ㅏ`,
	Args: cobra.RangeArgs(2, 3),
	RunE: runCompose,
}

func init() {
	rootCmd.AddCommand(composeCmd)
}

func runCompose(cmd *cobra.Command, args []string) error {
	lead, err := singleRune(args[0], "lead")
	if err != nil {
		return err
	}
	vowel, err := singleRune(args[1], "vowel")
	if err != nil {
		return err
	}
	trail := hangul.NoTrail
	if len(args) == 3 {
		trail, err = singleRune(args[2], "trail")
		if err != nil {
			return err
		}
	}

	s, err := hangul.FromJamos(lead, vowel, trail)
	if err != nil {
		return err
	}

	fmt.Printf("%c (U+%04X)\n", s.Rune(), s.Codepoint())
	return nil
}

func singleRune(arg, slot string) (rune, error) {
	runes := []rune(arg)
	if len(runes) != 1 {
		return 0, fmt.Errorf("%s argument %q must be a single jamo character", slot, arg)
	}
	return runes[0], nil
}
