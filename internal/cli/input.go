package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/z340/pkg/corpus"
)

// readCiphertext returns the built-in transcription when path is empty,
// stdin when it is "-", and the file contents otherwise.
// Line breaks and surrounding whitespace are dropped so that row-per-line
// transcriptions can be used.
func readCiphertext(path string, stdin io.Reader) (string, error) {
	if path == "" {
		return corpus.Z340, nil
	}

	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read ciphertext: %w", err)
	}

	var sb strings.Builder
	for _, line := range strings.Split(string(data), "\n") {
		sb.WriteString(strings.TrimSpace(line))
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("ciphertext %s is empty", path)
	}
	return sb.String(), nil
}
