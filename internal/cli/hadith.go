package cli

import (
	"fmt"
	"time"

	"zikirmatik/internal/registry"
)

type HadithCmd struct{}

func (c *HadithCmd) Run(ctx *Context) error {
	h := registry.DailyHadith(time.Now())
	fmt.Printf("“%s”\n", h.Text)
	if h.Source != "" {
		fmt.Printf("  — %s\n", h.Source)
	}
	return nil
}
