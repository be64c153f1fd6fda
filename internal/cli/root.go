package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mr-romero/slidegrid/pkg/config"
	"github.com/mr-romero/slidegrid/pkg/editor"
	"github.com/mr-romero/slidegrid/pkg/store"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// This is typically called by the main package during initialization with
// values injected via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// configPath is the --config flag value, shared by all commands.
var configPath string

// Execute runs the slidegrid CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands, configures
// logging based on the --verbose flag, and executes the command tree.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext runs the CLI under the given context, so callers can
// wire OS signals into cancellation.
func ExecuteContext(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "slidegrid",
		Short:        "Slidegrid lays out lesson slides on a grid",
		Long:         `Slidegrid is the layout engine behind grid-based lesson slides: blocks are anchored to cells, spans stretch them across rows and columns, and every operation silently clamps into bounds instead of erroring.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("slidegrid %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/slidegrid/config.toml)")

	root.AddCommand(newNewCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newShowCmd())
	root.AddCommand(newBlockCmd())
	root.AddCommand(newLayoutCmd())
	root.AddCommand(newRenderCmd())
	root.AddCommand(newEditCmd())
	root.AddCommand(newServeCmd())

	return root.ExecuteContext(ctx)
}

// loadConfig reads the config file named by --config, falling back to the
// default location.
func loadConfig() (config.Config, error) {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	return config.Load(path)
}

// openEditor builds an editor over the configured store. The caller must
// close the returned store.
func openEditor(ctx context.Context) (*editor.Editor, store.Store, config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, cfg, err
	}
	s, err := config.OpenStore(ctx, cfg)
	if err != nil {
		return nil, nil, cfg, fmt.Errorf("open store: %w", err)
	}
	ed := editor.New(s, editor.WithLogger(loggerFromContext(ctx)))
	return ed, s, cfg, nil
}
