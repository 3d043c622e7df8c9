package system

import (
	"fmt"

	"github.com/julianstephens/momentum/internal/cli"
	"github.com/julianstephens/momentum/internal/constants"
)

type InitCmd struct {
	Force bool `help:"Discard all stored data and start over with the defaults."`
	Yes   bool `help:"Skip the confirmation prompt for --force." short:"y"`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Init(); err != nil {
		return err
	}

	if c.Force {
		ok, err := ctx.Confirm("Delete all habits, logs, plans and journal entries?", c.Yes)
		if err != nil {
			return err
		}
		if !ok {
			ctx.Println("Init cancelled.")
			return nil
		}
		for _, key := range constants.StorageKeys {
			if err := ctx.Store.Delete(key); err != nil {
				return fmt.Errorf("failed to reset %s: %w", key, err)
			}
		}
		ctx.Println("Deleted existing data.")
	}

	// Writing every key once makes later loads skip the defaults
	if err := ctx.State.Load(); err != nil {
		return fmt.Errorf("failed to load state: %w", err)
	}
	if err := ctx.State.Commit(); err != nil {
		return fmt.Errorf("failed to save initial state: %w", err)
	}

	ctx.Printf("Initialized momentum storage at: %s\n", ctx.Store.GetConfigPath())
	return nil
}
