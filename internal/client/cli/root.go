package cli

import (
	"context"
	"io"

	"github.com/dmitrijs2005/facultyip/internal/buildinfo"
	"github.com/dmitrijs2005/facultyip/internal/client/config"
	"github.com/dmitrijs2005/facultyip/internal/logging"
	"github.com/spf13/cobra"
)

// NewRootCommand builds the facultyip command tree. Without a subcommand
// it starts the interactive shell.
func NewRootCommand(in io.Reader) *cobra.Command {
	root := &cobra.Command{
		Use:   "facultyip",
		Short: "Command-line client for Faculty IP Hub",
		Long: `facultyip tracks faculty patents and Google Scholar metrics against a
Faculty IP Hub backend. Without a subcommand it starts an interactive shell.

Environment Variables:
  FACULTYIP_SERVER_URL     Backend base URL (default: http://127.0.0.1:8000)
  FACULTYIP_DATABASE_PATH  Local session database (default: facultyip.db)
  FACULTYIP_CONFIG         JSON config file`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, in, func(ctx context.Context, a *App) error {
				a.Run(ctx)
				return nil
			})
		},
	}
	config.BindFlags(root.PersistentFlags())

	root.AddCommand(
		&cobra.Command{
			Use:   "whoami",
			Short: "Show the signed-in user",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withApp(cmd, in, func(ctx context.Context, a *App) error { return a.WhoAmI(ctx) })
			},
		},
		&cobra.Command{
			Use:   "logout",
			Short: "Forget the stored session",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withApp(cmd, in, func(ctx context.Context, a *App) error { return a.Logout(ctx) })
			},
		},
		&cobra.Command{
			Use:   "open <path>",
			Short: "Show where a path resolves for the stored session",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withApp(cmd, in, func(ctx context.Context, a *App) error { return a.Open(ctx, args[0]) })
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print build information",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, _ []string) {
				buildinfo.PrintBuildData(cmd.OutOrStdout())
			},
		},
	)
	return root
}

// withApp loads configuration from the command's flags, builds the App
// and runs fn with it.
func withApp(cmd *cobra.Command, in io.Reader, fn func(ctx context.Context, a *App) error) error {
	cfg, err := config.LoadConfig(cmd.Flags())
	if err != nil {
		return err
	}

	log, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	app, err := NewApp(ctx, cfg, in, cmd.OutOrStdout(), log)
	if err != nil {
		return err
	}
	defer app.Close()

	return fn(ctx, app)
}
