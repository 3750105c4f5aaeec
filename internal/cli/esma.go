package cli

import (
	"fmt"

	"zikirmatik/internal/registry"
)

type EsmaListCmd struct {
	Search string `arg:"" optional:"" help:"Filter by name or meaning."`
}

func (c *EsmaListCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}

	favs := map[string]bool{}
	for _, name := range ctx.Zikr.EsmaFavorites() {
		favs[name] = true
	}

	items := registry.SearchEsmaUlHusna(c.Search)
	if len(items) == 0 {
		fmt.Printf("No names match %q.\n", c.Search)
		return nil
	}
	for _, item := range items {
		star := " "
		if favs[item.Name] {
			star = "★"
		}
		fmt.Printf("%s %-15s %-12s %4d  %s\n", star, item.Name, item.ArabicName, item.Count, item.Meaning)
	}
	return nil
}

type EsmaStartCmd struct {
	Name string `arg:"" help:"Name to start counting (e.g. 'Ya Rahman')."`
}

func (c *EsmaStartCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}

	item, err := ctx.Zikr.StartEsmaUlHusna(c.Name)
	if err != nil {
		return err
	}
	ctx.Widget.Publish(ctx.Zikr.ActiveSnapshot())
	fmt.Printf("✓ Counting %s %s (target %d)\n", item.Name, item.ArabicName, item.Count)
	return nil
}

type EsmaFavCmd struct {
	Name string `arg:"" help:"Name to toggle as favorite."`
}

func (c *EsmaFavCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}

	if _, ok := registry.FindEsmaUlHusna(c.Name); !ok {
		return fmt.Errorf("no name %q in the Esma-ül Hüsna list", c.Name)
	}
	if ctx.Zikr.ToggleEsmaFavorite(c.Name) {
		fmt.Printf("★ %s added to favorites\n", c.Name)
	} else {
		fmt.Printf("☆ %s removed from favorites\n", c.Name)
	}
	return nil
}
