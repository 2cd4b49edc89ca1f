// Package term implements the dialog port on an interactive terminal using
// readline-style prompts.
package term

import (
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"

	"github.com/example/creatorvault/internal/ports/secondary"
)

// Dialogs prompts on the terminal. Ctrl+C, EOF, and an empty answer all
// count as cancellation, mirroring a dismissed dialog.
type Dialogs struct{}

// New creates terminal dialogs.
func New() *Dialogs {
	return &Dialogs{}
}

var _ secondary.Dialogs = (*Dialogs)(nil)

// PickFile asks the user to type a file path.
func (d *Dialogs) PickFile(title string) (string, bool, error) {
	return prompt(title + " (file path): ")
}

// PickDirectory asks the user to type a directory path.
func (d *Dialogs) PickDirectory(title string) (string, bool, error) {
	return prompt(title + " (directory): ")
}

// SaveFile asks the user where to write a file, suggesting defaultName.
func (d *Dialogs) SaveFile(title, defaultName string) (string, bool, error) {
	path, canceled, err := prompt(fmt.Sprintf("%s [%s]: ", title, defaultName))
	if err != nil || canceled {
		return "", canceled, err
	}
	return path, false, nil
}

// Confirm requires a literal "yes" to approve; anything else declines.
func (d *Dialogs) Confirm(message, detail string) (bool, error) {
	if detail != "" {
		fmt.Println(detail)
	}
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	answer, err := line.Prompt(message + " (yes/no): ")
	if err != nil {
		if err == liner.ErrPromptAborted || err == io.EOF {
			return false, nil
		}
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}
	return strings.EqualFold(strings.TrimSpace(answer), "yes"), nil
}

func prompt(label string) (string, bool, error) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	answer, err := line.Prompt(label)
	if err != nil {
		if err == liner.ErrPromptAborted || err == io.EOF {
			return "", true, nil
		}
		return "", false, fmt.Errorf("failed to read input: %w", err)
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return "", true, nil
	}
	return answer, false, nil
}
