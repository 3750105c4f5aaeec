package cli

import (
	"errors"
	"fmt"

	"zikirmatik/internal/zikr"
)

type CountTickCmd struct {
	Times int `arg:"" optional:"" default:"1" help:"How many counts to add."`
}

func (c *CountTickCmd) Validate() error {
	if c.Times < 1 {
		return fmt.Errorf("times must be at least 1")
	}
	return nil
}

func (c *CountTickCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}

	var count int
	completed := false
	for i := 0; i < c.Times; i++ {
		n, done, err := ctx.Zikr.Increment()
		if err != nil {
			if errors.Is(err, zikr.ErrNoSelection) {
				return fmt.Errorf("no zikhr selected, run 'zikirmatik zikr select <name>' first")
			}
			return err
		}
		count = n
		completed = completed || done
	}

	item, _ := ctx.Zikr.Selected()
	target := ctx.Zikr.EffectiveCount(item.Name, item.Count)

	if completed {
		state := ctx.Streak.OnDailyGoalCompleted()
		fmt.Printf("🎉 %s completed! (%d/%d)\n", item.Name, count, target)
		fmt.Printf("Streak: %d day(s)\n", state.CurrentStreak)
	} else {
		fmt.Printf("%s  %s %d/%d\n", formatCount(count), progressBar(count, target, 20), count, target)
	}

	ctx.Widget.Publish(ctx.Zikr.ActiveSnapshot())
	return nil
}

type CountResetCmd struct{}

func (c *CountResetCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}

	item, ok := ctx.Zikr.Selected()
	if !ok {
		return fmt.Errorf("no zikhr selected")
	}
	ctx.Zikr.ResetProgress(item.Name)
	ctx.Widget.Publish(ctx.Zikr.ActiveSnapshot())
	fmt.Printf("Reset %s to %s\n", item.Name, formatCount(0))
	return nil
}

type CountStatusCmd struct{}

func (c *CountStatusCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}

	item, ok := ctx.Zikr.Selected()
	if !ok {
		fmt.Println("No zikhr selected.")
		return nil
	}

	count := ctx.Zikr.Progress(item.Name)
	target := ctx.Zikr.EffectiveCount(item.Name, item.Count)
	fmt.Printf("%s", item.Name)
	if item.ArabicName != "" {
		fmt.Printf("  %s", item.ArabicName)
	}
	fmt.Println()
	fmt.Printf("%s  %s %d/%d\n", formatCount(count), progressBar(count, target, 20), count, target)
	return nil
}
