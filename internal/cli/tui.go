package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"zikirmatik/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewModel(ctx.Zikr, ctx.Streak, ctx.Widget), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
	return nil
}
