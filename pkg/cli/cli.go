package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/m-mizutani/githuber/pkg/cli/config"
	"github.com/m-mizutani/githuber/pkg/domain/interfaces"
	"github.com/m-mizutani/githuber/pkg/infra"
	"github.com/m-mizutani/githuber/pkg/usecase"
	"github.com/m-mizutani/githuber/pkg/utils/errutil"
	"github.com/m-mizutani/githuber/pkg/utils/logging"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

// ConfigureLogging is exported for testing purposes
var ConfigureLogging = logging.Configure

// UseCaseFactory builds the usecase from configured clients.
type UseCaseFactory func(clients *infra.Clients, out io.Writer) interfaces.UseCase

type CLI struct {
	out        io.Writer
	prompt     config.PromptFunc
	newUseCase UseCaseFactory
}

type Option func(*CLI)

// WithOutput sets writer of human readable progress and results.
func WithOutput(w io.Writer) Option {
	return func(x *CLI) {
		x.out = w
	}
}

// WithPrompt replaces the interactive token prompt.
func WithPrompt(prompt config.PromptFunc) Option {
	return func(x *CLI) {
		x.prompt = prompt
	}
}

func WithUseCaseFactory(f UseCaseFactory) Option {
	return func(x *CLI) {
		x.newUseCase = f
	}
}

func New(options ...Option) *CLI {
	x := &CLI{
		out:    os.Stdout,
		prompt: config.TerminalPrompt,
		newUseCase: func(clients *infra.Clients, out io.Writer) interfaces.UseCase {
			return usecase.New(clients, usecase.WithOutput(out))
		},
	}
	for _, opt := range options {
		opt(x)
	}
	return x
}

func (x *CLI) Run(argv []string) error {
	var (
		logLevel  string
		logFormat string
		logOutput string

		sentry config.Sentry
		opt    runOptions
	)

	app := &cli.Command{
		Name:  "githuber",
		Usage: "Synchronize local clones with repositories of a GitHub organization or user",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "Log level [debug|info|warn|error]",
				Aliases:     []string{"l"},
				Sources:     cli.EnvVars("GITHUBER_LOG_LEVEL"),
				Destination: &logLevel,
				Value:       "warn",
			},
			&cli.StringFlag{
				Name:        "log-format",
				Usage:       "Log format [text|json]",
				Aliases:     []string{"f"},
				Sources:     cli.EnvVars("GITHUBER_LOG_FORMAT"),
				Destination: &logFormat,
				Value:       "text",
			},
			&cli.StringFlag{
				Name:        "log-output",
				Usage:       "Log output [-|stdout|stderr|<file>]",
				Aliases:     []string{"o"},
				Sources:     cli.EnvVars("GITHUBER_LOG_OUTPUT"),
				Destination: &logOutput,
				Value:       "stderr",
			},
		}, opt.Flags(), sentry.Flags()),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if err := ConfigureLogging(logFormat, logLevel, logOutput); err != nil {
				return ctx, err
			}

			runID, ctx := logging.CtxRunID(ctx)
			ctx = logging.With(ctx, logging.Default().With("run_id", runID.String()))

			if err := sentry.Configure(ctx); err != nil {
				return ctx, err
			}
			return ctx, nil
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return x.run(ctx, &opt)
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	defer func() {
		if err := logging.Close(); err != nil {
			fmt.Fprintln(os.Stderr, "failed to close log output:", err)
		}
	}()

	if err := app.Run(ctx, argv); err != nil {
		errutil.HandleError(ctx, "fatal error", err)
		return err
	}

	return nil
}
