package command

import (
	"fmt"
	"os"

	"github.com/google/tink/go/keyset"
	"github.com/urfave/cli/v2"

	"github.com/vdparikh/tstoken/tinktoken"
)

// KeysetCommand returns the keyset command group.
func KeysetCommand() *cli.Command {
	return &cli.Command{
		Name:  "keyset",
		Usage: "Manage salt seed keysets",
		Subcommands: []*cli.Command{
			{
				Name:  "new",
				Usage: "Generate a cleartext JSON keyset holding a fresh salt seed",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "out",
						Aliases: []string{"o"},
						Usage:   "Output file (default stdout); created with mode 0600",
					},
				},
				Action: runKeysetNew,
			},
		},
	}
}

func runKeysetNew(c *cli.Context) error {
	e := envFrom(c)

	if err := tinktoken.Register(); err != nil {
		return fmt.Errorf("register key manager: %w", err)
	}
	handle, err := keyset.NewHandle(tinktoken.KeyTemplate())
	if err != nil {
		return fmt.Errorf("generate keyset: %w", err)
	}

	out := c.String("out")
	if out == "" {
		return tinktoken.WriteCleartextJSON(handle, c.App.Writer)
	}

	f, err := os.OpenFile(out, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return fmt.Errorf("create keyset file: %w", err)
	}
	if err := tinktoken.WriteCleartextJSON(handle, f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close keyset file: %w", err)
	}

	e.log.WithField("path", out).Info("wrote keyset")
	return nil
}
