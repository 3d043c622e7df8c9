package cli

import (
	"errors"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
)

// ErrNotInteractive is returned when a confirmation is needed but stdin is not a terminal
var ErrNotInteractive = errors.New("confirmation required: re-run in a terminal or pass --yes")

// IsInteractive reports whether stdin is attached to a terminal
func IsInteractive() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

func huhConfirm(title string) (bool, error) {
	var ok bool
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(&ok),
		),
	).WithTheme(huh.ThemeDracula()).WithShowHelp(false).Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return false, nil
	}
	return ok, err
}

// Confirm asks a yes/no question. skip answers yes without prompting.
func (c *Context) Confirm(title string, skip bool) (bool, error) {
	if skip {
		return true, nil
	}

	interactive := c.Interactive
	if interactive == nil {
		interactive = IsInteractive
	}
	confirmer := c.Confirmer
	if confirmer == nil {
		if !interactive() {
			return false, ErrNotInteractive
		}
		confirmer = huhConfirm
	}
	return confirmer(title)
}
