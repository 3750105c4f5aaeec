package cli

import "fmt"

type WidgetSyncCmd struct{}

func (c *WidgetSyncCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}

	snap := ctx.Zikr.ActiveSnapshot()
	ctx.Widget.Publish(snap)
	fmt.Printf("✓ Widget updated: %s %d/%d\n", snap.ZikrName, snap.Count, snap.Target)
	return nil
}

type WidgetShowCmd struct{}

func (c *WidgetShowCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}

	snap, err := ctx.Widget.Snapshot()
	if err != nil {
		return err
	}
	if snap.ZikrName == "" {
		fmt.Println("Widget has no published state yet. Run 'zikirmatik widget sync'.")
		return nil
	}
	fmt.Printf("Published widget state: %s %d/%d\n", snap.ZikrName, snap.Count, snap.Target)
	return nil
}
