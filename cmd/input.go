package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// readDescription joins positional args into the text to analyze, or
// falls back to stdin when no args were given (for piped input).
func readDescription(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	stat, err := os.Stdin.Stat()
	if err == nil && (stat.Mode()&os.ModeCharDevice) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	}
	return "", fmt.Errorf("no text given: pass it as arguments or pipe it to stdin")
}
