package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/idilsaglam/attendance/internal/config"
	"github.com/idilsaglam/attendance/internal/controller"
	"github.com/idilsaglam/attendance/internal/logging"
	"github.com/idilsaglam/attendance/internal/ui"
)

// app carries what every command needs once the root Before hook ran.
type app struct {
	stdio   Stdio
	console ui.Console
	input   *ui.LineInput

	cfg    *config.Config
	logger *slog.Logger
	closer io.Closer
	ctrl   *controller.Controller
}

// New builds the command tree.
func New(stdio Stdio) *cli.Command {
	a := &app{
		stdio:   stdio,
		console: ui.Console{Out: stdio.Out, Err: stdio.Err},
		input:   ui.NewLineInput(stdio.In, stdio.Out),
	}
	return &cli.Command{
		Name:      "attendance",
		Usage:     "take and review attendance for member rosters",
		Reader:    stdio.In,
		Writer:    stdio.Out,
		ErrWriter: stdio.Err,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "path to a YAML config file (default ./" + config.DefaultFile + ")"},
			&cli.StringFlag{Name: "data-dir", Usage: "directory holding member-lists/ and attendance-lists/"},
			&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error"},
			&cli.StringFlag{Name: "theme", Usage: "classic, neon or mono"},
		},
		Before:         a.setup,
		After:          a.teardown,
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
		Action:         a.runDefault,
		Commands: []*cli.Command{
			a.menuCommand(),
			a.membersCommand(),
			a.rostersCommand(),
			a.recordCommand(),
			a.showCommand(),
		},
	}
}

func (a *app) setup(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	cfg, err := config.Load(ctx, cmd.String("config"))
	if err != nil {
		return ctx, err
	}
	if v := cmd.String("data-dir"); v != "" {
		cfg.DataDir = v
	}
	if v := cmd.String("log-level"); v != "" {
		cfg.LogLevel = v
	}
	if v := cmd.String("theme"); v != "" {
		cfg.Theme = v
	}
	ui.SetTheme(cfg.Theme)

	logger, closer, err := logging.Open(cfg.LogFile, a.stdio.Err, "attendance", cfg.LogLevel)
	if err != nil {
		return ctx, err
	}
	a.cfg, a.logger, a.closer = cfg, logger, closer
	a.ctrl = controller.New(cfg, logger)
	return logging.IntoContext(ctx, logger), nil
}

func (a *app) teardown(context.Context, *cli.Command) error {
	if a.closer != nil {
		return a.closer.Close()
	}
	return nil
}

// With no subcommand the interactive menu runs.
func (a *app) runDefault(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() > 0 {
		return usagef("unknown subcommand: %s", cmd.Args().First())
	}
	return a.runMenu(ctx)
}
