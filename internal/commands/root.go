package commands

import (
	"context"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/SscSPs/finstatements/internal/adapters/provider"
	portsrepo "github.com/SscSPs/finstatements/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finstatements/internal/core/ports/services"
	"github.com/SscSPs/finstatements/internal/core/services"
	"github.com/SscSPs/finstatements/internal/middleware"
	"github.com/SscSPs/finstatements/internal/platform/config"
	"github.com/SscSPs/finstatements/internal/repositories/database/pgsql"
	"github.com/SscSPs/finstatements/internal/utils"
	"github.com/SscSPs/finstatements/pkg/database"
)

// Runtime is the wired application a command operates on.
type Runtime struct {
	Reporting   portssvc.ReportingService
	Credentials portsrepo.CredentialRepository
}

// app holds the hooks commands use to reach configuration and the database.
type app struct {
	loadConfig func() (*config.Config, error)
	connect    func(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Runtime, func(), error)
	verbose    bool
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&app{loadConfig: config.LoadConfig, connect: connect})
}

func newRootCommand(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "finctl",
		Short: "Financial statements from a connected accounting provider",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log debug output to stderr")

	rootCmd.AddCommand(newReportCommand(a))
	rootCmd.AddCommand(newCredentialsCommand(a))
	rootCmd.AddCommand(newTokenCommand(a))
	rootCmd.AddCommand(newMigrateCommand(a))

	return rootCmd
}

func (a *app) logger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// connect wires the same stack the API server uses.
func connect(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Runtime, func(), error) {
	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, true, logger)
	if err != nil {
		return nil, nil, err
	}

	sealer, err := utils.NewTokenSealer(cfg.CredentialEncryptionKey)
	if err != nil {
		dbPool.Close()
		return nil, nil, err
	}

	factory := provider.NewFactory(provider.Config{
		BaseURL:      cfg.ProviderBaseURL,
		TokenURL:     cfg.ProviderTokenURL,
		ClientID:     cfg.ProviderClientID,
		ClientSecret: cfg.ProviderClientSecret,
		MaxRetries:   cfg.ProviderMaxRetries,
		RetryInitial: cfg.ProviderRetryInitial,
	})
	repos := pgsql.NewRepositoryProvider(dbPool, sealer, factory)

	return &Runtime{
		Reporting:   services.NewServiceContainer(cfg, repos).Reporting,
		Credentials: repos.CredentialRepo,
	}, dbPool.Close, nil
}

// withRuntime loads configuration, connects and runs fn with a logger carried in ctx.
func (a *app) withRuntime(cmd *cobra.Command, fn func(ctx context.Context, rt *Runtime) error) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	logger := a.logger(cmd.ErrOrStderr())
	ctx := middleware.WithLogger(cmd.Context(), logger)

	rt, closeFn, err := a.connect(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeFn()

	return fn(ctx, rt)
}
