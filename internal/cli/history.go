package cli

import (
	"fmt"
	"time"

	"zikirmatik/internal/models"
)

type HistoryCmd struct {
	Period string `arg:"" optional:"" default:"all" enum:"all,day,week,month,3month,year" help:"Window to show: all, day, week, month, 3month, or year."`
}

func (c *HistoryCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}

	var completed []models.CompletedZikhr
	switch c.Period {
	case "day":
		completed = ctx.Zikr.CompletedSince(24 * time.Hour)
	case "week":
		completed = ctx.Zikr.CompletedSince(7 * 24 * time.Hour)
	case "month":
		completed = ctx.Zikr.CompletedSince(30 * 24 * time.Hour)
	case "3month":
		completed = ctx.Zikr.CompletedSince(90 * 24 * time.Hour)
	case "year":
		completed = ctx.Zikr.CompletedSince(365 * 24 * time.Hour)
	default:
		completed = ctx.Zikr.Completed()
	}

	if len(completed) == 0 {
		fmt.Println("No completed zikhrs yet.")
		return nil
	}

	total := 0
	for _, z := range completed {
		total += z.Count
	}
	fmt.Printf("%d completion(s), %d counts total:\n\n", len(completed), total)
	for _, z := range completed {
		fmt.Printf("  %s  %-35s %5d\n", z.CompletedAt.Format("2006-01-02 15:04"), z.Name, z.Count)
	}
	return nil
}
