package cmd

import (
	"fmt"
	"strconv"

	"github.com/masmgr/revlog/internal/money"
	"github.com/urfave/cli/v2"
)

type amountCheck func(amount float64, message string) (float64, error)

// MoneyCmd returns the money command with one subcommand per check.
func MoneyCmd() *cli.Command {
	return &cli.Command{
		Name:  "money",
		Usage: "Validate monetary amounts (at most two decimals)",
		Subcommands: []*cli.Command{
			moneySubcommand("common", "Accept any amount with at most two decimals", money.AssertCommonAmount),
			moneySubcommand("positive", "Accept a common amount greater than zero", money.AssertCommonPositiveAmount),
			moneySubcommand("nonnegative", "Accept a common amount of zero or more", money.AssertCommonNonnegativeAmount),
		},
	}
}

func moneySubcommand(name, usage string, check amountCheck) *cli.Command {
	return &cli.Command{
		Name:      name,
		Usage:     usage,
		ArgsUsage: "AMOUNT",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "message",
				Aliases: []string{"m"},
				Usage:   "Custom failure message",
			},
		},
		Action: func(c *cli.Context) error {
			return moneyAction(c, check)
		},
	}
}

func moneyAction(c *cli.Context, check amountCheck) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one AMOUNT argument, got %d", c.NArg())
	}

	amount, err := money.ParseAmount(c.Args().First())
	if err != nil {
		return err
	}

	valid, err := check(amount, c.String("message"))
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(c.App.Writer, strconv.FormatFloat(valid, 'f', -1, 64))
	return err
}
