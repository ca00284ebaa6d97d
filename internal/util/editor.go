package util

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/nakachan-ing/kanban-cli/internal/model"
)

// EditorCommand prefers the configured editor, then $EDITOR, then vim.
func EditorCommand(config model.Config) string {
	if config.Editor != "" {
		return config.Editor
	}
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	return "vim"
}

func OpenEditor(filePath string, config model.Config) error {
	c := exec.Command(EditorCommand(config), filePath)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	if err := c.Run(); err != nil {
		return fmt.Errorf("failed to open editor (%s): %w", filePath, err)
	}
	return nil
}
