package command

import (
	"fmt"
	"math/big"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/vdparikh/tstoken"
)

// EncodeCommand returns the encode command.
func EncodeCommand() *cli.Command {
	return &cli.Command{
		Name:  "encode",
		Usage: "Encode a millisecond timestamp; without --ms a value is synthesized",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "ms",
				Usage: "Non-negative timestamp in milliseconds (arbitrary size)",
			},
		},
		Action: runEncode,
	}
}

func runEncode(c *cli.Context) error {
	e := envFrom(c)

	var ms *big.Int
	if c.IsSet("ms") {
		v, ok := new(big.Int).SetString(c.String("ms"), 10)
		if !ok || v.Sign() < 0 {
			return fmt.Errorf("invalid --ms %q: want a non-negative integer", c.String("ms"))
		}
		ms = v
	} else {
		e.log.Debug("no timestamp given, synthesizing one")
	}

	token := e.codec.Encode(ms)
	e.log.WithField("token", token).Debug("encoded")
	fmt.Fprintln(c.App.Writer, token)
	return nil
}

// NowCommand returns the now command.
func NowCommand() *cli.Command {
	return &cli.Command{
		Name:  "now",
		Usage: "Encode the current time",
		Action: func(c *cli.Context) error {
			e := envFrom(c)
			now := time.Now()
			token := e.codec.Encode(big.NewInt(now.UnixMilli()))
			e.log.WithField("unix_ms", now.UnixMilli()).Debug("encoded current time")
			fmt.Fprintln(c.App.Writer, token)
			return nil
		},
	}
}

// DecodeCommand returns the decode command.
func DecodeCommand() *cli.Command {
	return &cli.Command{
		Name:      "decode",
		Usage:     "Decode one or more tokens into integers",
		ArgsUsage: "TOKEN...",
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("decode requires at least one token")
			}
			e := envFrom(c)
			for _, token := range c.Args().Slice() {
				n, err := e.codec.Decode(token)
				if err != nil {
					return fmt.Errorf("decode %q: %w", token, err)
				}
				fmt.Fprintln(c.App.Writer, n.String())
			}
			return nil
		},
	}
}

// InspectCommand returns the inspect command.
func InspectCommand() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "Show the positional part, salt and decoded value of a token",
		ArgsUsage: "TOKEN",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("inspect requires exactly one token")
			}
			e := envFrom(c)
			token := c.Args().First()

			digits, salt, err := tstoken.SplitToken(token)
			if err != nil {
				return fmt.Errorf("inspect %q: %w", token, err)
			}
			decoded, err := e.codec.Decode(token)
			if err != nil {
				return fmt.Errorf("inspect %q: %w", token, err)
			}

			e.log.WithFields(logrus.Fields{
				"encode_radix": tstoken.EncodeRadix(),
				"decode_radix": tstoken.DecodeRadix(),
			}).Debug("inspecting token")

			w := c.App.Writer
			fmt.Fprintf(w, "positional: %s\n", digits)
			fmt.Fprintf(w, "salt:       %c\n", salt)
			fmt.Fprintf(w, "decoded:    %s\n", decoded)
			return nil
		},
	}
}

// RandomCommand returns the random command.
func RandomCommand() *cli.Command {
	return &cli.Command{
		Name:  "random",
		Usage: "Print a random alphanumeric string",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "length",
				Aliases: []string{"n"},
				Usage:   "Number of characters (default from config random.length)",
			},
		},
		Action: func(c *cli.Context) error {
			e := envFrom(c)
			n := e.cfg.Random.Length
			if c.IsSet("length") {
				n = c.Int("length")
			}
			if n < 0 {
				return fmt.Errorf("invalid --length %d: must not be negative", n)
			}
			fmt.Fprintln(c.App.Writer, e.codec.RandomString(n))
			return nil
		},
	}
}
