package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"zikirmatik/internal/zikr"
)

type SettingsShowCmd struct{}

func (c *SettingsShowCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}

	s := ctx.Zikr.Settings()
	onOff := func(b bool) string {
		if b {
			return "on"
		}
		return "off"
	}
	background := string(s.BackgroundImage)
	if background == "" {
		background = "(none)"
	}

	fmt.Printf("  sound         %s\n", onOff(s.SoundEnabled))
	fmt.Printf("  sfx           %s\n", onOff(s.SfxEnabled))
	fmt.Printf("  vibration     %s\n", onOff(s.VibrationEnabled))
	fmt.Printf("  volume-count  %s\n", onOff(s.VolumeCountEnabled))
	fmt.Printf("  appearance    %s\n", s.AppearanceMode)
	fmt.Printf("  background    %s\n", background)
	return nil
}

type SettingsSetCmd struct {
	Key   string `arg:"" help:"Setting to change."`
	Value string `arg:"" help:"New value."`
}

func (c *SettingsSetCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}

	if err := ctx.Zikr.SetPreference(c.Key, c.Value); err != nil {
		return fmt.Errorf("%w (known keys: %s)", err, strings.Join(zikr.PreferenceKeys(), ", "))
	}
	fmt.Printf("✓ %s = %s\n", c.Key, c.Value)
	return nil
}

type SettingsResetCmd struct{}

func (c *SettingsResetCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}

	fmt.Println("⚠️  This erases ALL data: counts, history, streak, reminders, and settings.")
	fmt.Print("Continue? [y/N]: ")

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

	if err := ctx.Zikr.ResetAll(); err != nil {
		return err
	}
	fmt.Println("✓ All data erased.")
	return nil
}
