package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/secmon-lab/sspgen/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

func cmdFamilies() *cli.Command {
	return &cli.Command{
		Name:  "families",
		Usage: "List the fourteen control family codes",
		Action: func(ctx context.Context, c *cli.Command) error {
			code := color.New(color.FgCyan)
			for _, fam := range types.AllFamilyCodes() {
				fmt.Printf("%-5s %s %s\n", fam.Prefix(), code.Sprintf("%-3s", fam), fam.Name())
			}
			return nil
		},
	}
}
