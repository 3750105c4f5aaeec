package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"zikirmatik/internal/models"
)

type ZikrListCmd struct {
	Favorites bool `short:"f" help:"Show only favorites."`
}

func (c *ZikrListCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}

	selected, hasSelected := ctx.Zikr.Selected()
	favs := map[string]bool{}
	for _, name := range ctx.Zikr.Favorites() {
		favs[name] = true
	}

	for _, item := range ctx.Zikr.SortedItems() {
		if c.Favorites && !favs[item.Name] {
			continue
		}

		marker := " "
		if hasSelected && item.Name == selected.Name {
			marker = ">"
		}
		star := " "
		if favs[item.Name] {
			star = "★"
		}
		kind := ""
		if ctx.Zikr.IsCustom(item.Name) {
			kind = "  (custom)"
		}

		count := ctx.Zikr.Progress(item.Name)
		target := ctx.Zikr.EffectiveCount(item.Name, item.Count)
		fmt.Printf("%s %s %-35s %4d/%-5d%s\n", marker, star, item.Name, count, target, kind)
	}
	return nil
}

type ZikrAddCmd struct {
	Name        string `arg:"" optional:"" help:"Name of the new zikhr."`
	Arabic      string `help:"Arabic spelling."`
	Description string `short:"d" help:"Short description."`
	Count       int    `short:"c" default:"33" help:"Target count."`
}

func (c *ZikrAddCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}

	item := models.ZikhrItem{
		Name:        strings.TrimSpace(c.Name),
		ArabicName:  c.Arabic,
		Description: c.Description,
		Count:       c.Count,
	}

	// Without a name on the command line, collect the item interactively.
	if item.Name == "" {
		countStr := fmt.Sprintf("%d", c.Count)
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().Title("Name").Value(&item.Name).Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
				huh.NewInput().Title("Arabic spelling (optional)").Value(&item.ArabicName),
				huh.NewInput().Title("Description (optional)").Value(&item.Description),
				huh.NewInput().Title("Target count").Value(&countStr).Validate(func(s string) error {
					var n int
					if _, err := fmt.Sscanf(strings.TrimSpace(s), "%d", &n); err != nil || n < 1 {
						return fmt.Errorf("enter a positive number")
					}
					return nil
				}),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
		item.Name = strings.TrimSpace(item.Name)
		fmt.Sscanf(strings.TrimSpace(countStr), "%d", &item.Count)
	}

	if err := ctx.Zikr.AddItem(item); err != nil {
		return err
	}
	ctx.Widget.Publish(ctx.Zikr.ActiveSnapshot())
	fmt.Printf("✓ Added and selected %q (target %d)\n", item.Name, item.Count)
	return nil
}

type ZikrDeleteCmd struct {
	Name string `arg:"" help:"Name of the custom zikhr to delete."`
}

func (c *ZikrDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}

	if _, ok := ctx.Zikr.Find(c.Name); !ok {
		return fmt.Errorf("no zikhr named %q", c.Name)
	}
	if !ctx.Zikr.IsCustom(c.Name) {
		return fmt.Errorf("%q is built in and cannot be deleted", c.Name)
	}
	ctx.Zikr.DeleteItem(c.Name)
	ctx.Widget.Publish(ctx.Zikr.ActiveSnapshot())
	fmt.Printf("✓ Deleted %q\n", c.Name)
	return nil
}

type ZikrSelectCmd struct {
	Name string `arg:"" help:"Name of the zikhr to count."`
}

func (c *ZikrSelectCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}

	if err := ctx.Zikr.SetSelected(c.Name); err != nil {
		return err
	}
	ctx.Widget.Publish(ctx.Zikr.ActiveSnapshot())

	item, _ := ctx.Zikr.Selected()
	count := ctx.Zikr.Progress(item.Name)
	target := ctx.Zikr.EffectiveCount(item.Name, item.Count)
	fmt.Printf("✓ Selected %s (%d/%d)\n", item.Name, count, target)
	return nil
}

type ZikrEditCountCmd struct {
	Name  string `arg:"" help:"Name of the zikhr."`
	Count int    `arg:"" help:"New target count."`
}

func (c *ZikrEditCountCmd) Validate() error {
	if c.Count < 1 {
		return fmt.Errorf("count must be at least 1")
	}
	return nil
}

func (c *ZikrEditCountCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}

	if _, ok := ctx.Zikr.Find(c.Name); !ok {
		return fmt.Errorf("no zikhr named %q", c.Name)
	}
	ctx.Zikr.SetCountOverride(c.Name, c.Count)
	ctx.Widget.Publish(ctx.Zikr.ActiveSnapshot())
	fmt.Printf("✓ Target for %s is now %d\n", c.Name, c.Count)
	return nil
}

type ZikrFavCmd struct {
	Name string `arg:"" help:"Name of the zikhr to toggle."`
}

func (c *ZikrFavCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}

	if _, ok := ctx.Zikr.Find(c.Name); !ok {
		return fmt.Errorf("no zikhr named %q", c.Name)
	}
	if ctx.Zikr.ToggleFavorite(c.Name) {
		fmt.Printf("★ %s added to favorites\n", c.Name)
	} else {
		fmt.Printf("☆ %s removed from favorites\n", c.Name)
	}
	return nil
}
