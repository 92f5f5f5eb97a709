package runner

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/danswartzendruber/liner"
)

// runPrompt reads program lines interactively until a blank line (or ^D),
// joins them with spaces into one source buffer, and interprets it.
func (opts *Runner) runPrompt() error {
	line := liner.NewLiner()
	defer line.Close()

	line.SetMultiLineMode(true)

	fmt.Println("Enter your program (end with an empty line):")

	var source strings.Builder
	for {
		s, err := line.Prompt("> ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			if errors.Is(err, liner.ErrPromptAborted) {
				return nil
			}
			return fmt.Errorf("reading input: %w", err)
		}

		if s == "" {
			break
		}

		line.AppendHistory(s)
		source.WriteString(s)
		source.WriteString(" ")
	}

	fmt.Println("Executing program...")
	return opts.interpret(source.String())
}
