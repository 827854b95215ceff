package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/z340/internal/config"
	"golang.org/x/term"
)

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// shouldPause decides whether to wait for acknowledgement.
func shouldPause(mode config.PauseMode, in io.Reader) bool {
	switch mode {
	case config.PauseAlways:
		return true
	case config.PauseNever:
		return false
	}
	return isTerminal(in)
}

// Acknowledge waits for the user to press Enter. EOF counts as acknowledgement.
func Acknowledge(in io.Reader, out io.Writer) error {
	fmt.Fprint(out, "Press Enter to exit...")
	_, err := bufio.NewReader(in).ReadString('\n')
	fmt.Fprintln(out)
	if err == io.EOF {
		return nil
	}
	return err
}
