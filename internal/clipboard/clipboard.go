// Package clipboard shells out to the platform clipboard tool.
package clipboard

import (
	"os/exec"
	"runtime"
	"strings"
)

func command() *exec.Cmd {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("pbcopy")
	case "windows":
		return exec.Command("cmd", "/c", "clip")
	default:
		if _, err := exec.LookPath("xclip"); err == nil {
			return exec.Command("xclip", "-selection", "clipboard")
		}
		return exec.Command("xsel", "--clipboard", "--input")
	}
}

// Write copies text to the system clipboard.
func Write(text string) error {
	cmd := command()
	cmd.Stdin = strings.NewReader(text)
	return cmd.Run()
}

// Available reports whether a clipboard tool can be found.
func Available() bool {
	switch runtime.GOOS {
	case "darwin":
		_, err := exec.LookPath("pbcopy")
		return err == nil
	case "windows":
		return true
	default:
		if _, err := exec.LookPath("xclip"); err == nil {
			return true
		}
		_, err := exec.LookPath("xsel")
		return err == nil
	}
}
