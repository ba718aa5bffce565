// Package command provides CLI command definitions for the tstoken binary.
//
// It uses urfave/cli/v2 for command parsing, internal/config for settings and
// logrus for diagnostics on stderr. Command results go to stdout.
package command

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/vdparikh/tstoken"
	"github.com/vdparikh/tstoken/internal/buildinfo"
	"github.com/vdparikh/tstoken/internal/config"
	"github.com/vdparikh/tstoken/tinktoken"
)

const envKey = "env"

// env is the per-invocation state built in the App's Before hook.
type env struct {
	cfg   config.Config
	log   *logrus.Logger
	codec tstoken.TokenCodec
}

// envFrom finds the env stored by setup. Nested subcommands may run with
// their own context, so the whole lineage is searched.
func envFrom(c *cli.Context) *env {
	for _, ctx := range c.Lineage() {
		if ctx.App == nil {
			continue
		}
		if e, ok := ctx.App.Metadata[envKey].(*env); ok {
			return e
		}
	}
	panic("command: setup did not run")
}

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:     "tstoken",
		Usage:    "encode timestamps into short tokens and decode tokens back into integers",
		Version:  buildinfo.String(),
		Flags:    globalFlags(),
		Metadata: map[string]interface{}{},
		Commands: []*cli.Command{
			EncodeCommand(),
			NowCommand(),
			DecodeCommand(),
			InspectCommand(),
			RandomCommand(),
			KeysetCommand(),
		},
		Before: setup,
	}
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to a YAML configuration file",
			EnvVars: []string{"TSTOKEN_CONFIG"},
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level: debug, info, warn, error",
		},
		&cli.StringFlag{
			Name:    "keyset",
			Aliases: []string{"k"},
			Usage:   "Cleartext JSON keyset; makes salts and random strings reproducible",
		},
	}
}

// setup loads configuration, applies flag overrides and builds the codec.
func setup(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.IsSet("keyset") {
		cfg.Keyset = c.String("keyset")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logrus.New()
	log.SetOutput(c.App.ErrWriter)
	level, _ := logrus.ParseLevel(cfg.LogLevel)
	log.SetLevel(level)

	codec, err := loadCodec(cfg.Keyset, log)
	if err != nil {
		return err
	}

	c.App.Metadata[envKey] = &env{cfg: cfg, log: log, codec: codec}
	return nil
}

func loadCodec(path string, log *logrus.Logger) (tstoken.TokenCodec, error) {
	if path == "" {
		log.Debug("using crypto random source")
		return tstoken.New(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open keyset: %w", err)
	}
	defer f.Close()

	handle, err := tinktoken.ReadCleartextJSON(f)
	if err != nil {
		return nil, err
	}
	codec, err := tinktoken.New(handle)
	if err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"keyset":         path,
		"primary_key_id": handle.KeysetInfo().PrimaryKeyId,
	}).Debug("using keyed random source")
	return codec, nil
}
