package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

type StreakShowCmd struct{}

func (c *StreakShowCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}

	state := ctx.Streak.State()
	fmt.Printf("🔥 Current streak: %d day(s)\n", state.CurrentStreak)
	fmt.Printf("   Longest streak: %d day(s)\n", state.LongestStreak)
	if state.LastCompletedDate != "" {
		fmt.Printf("   Last completed: %s\n", state.LastCompletedDate)
	}
	if ctx.Streak.IsTodayCompleted() {
		fmt.Println("   Today's goal is done.")
	} else {
		fmt.Println("   Today's goal is still open.")
	}
	return nil
}

type StreakResetCmd struct{}

func (c *StreakResetCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}

	state := ctx.Streak.State()
	if state.CurrentStreak == 0 && state.LongestStreak == 0 {
		fmt.Println("Nothing to reset.")
		return nil
	}

	fmt.Printf("This clears your %d-day streak (longest: %d). Continue? [y/N]: ", state.CurrentStreak, state.LongestStreak)
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return err
	}
	response = strings.TrimSpace(strings.ToLower(response))
	if response != "y" && response != "yes" {
		fmt.Println("Reset cancelled.")
		return nil
	}

	ctx.Streak.Reset()
	fmt.Println("✓ Streak reset.")
	return nil
}
