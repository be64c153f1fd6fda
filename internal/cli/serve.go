package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mr-romero/slidegrid/internal/httpapi"
	"github.com/mr-romero/slidegrid/pkg/config"
	"github.com/mr-romero/slidegrid/pkg/editor"
	"github.com/mr-romero/slidegrid/pkg/events"
)

// newServeCmd creates the "serve" command running the HTTP editor API.
func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP editor API",
		Long: `Serve the slide editor over HTTP: slide CRUD, layout operations,
SVG previews, and live presentation sessions. Sessions use Redis when
configured, in-memory otherwise.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}

			s, err := config.OpenStore(ctx, cfg)
			if err != nil {
				return fmt.Errorf("open store: %w", err)
			}
			defer s.Close()

			sessions, err := config.OpenSessionStore(ctx, cfg)
			if err != nil {
				return fmt.Errorf("open session store: %w", err)
			}

			bus := events.NewBus()
			bus.Subscribe(func(e events.Event) {
				logger.Debug("event", "name", e.Name())
			})

			ed := editor.New(s, editor.WithLogger(logger), editor.WithBus(bus))
			srv := httpapi.NewServer(ed, sessions, cfg, logger)

			printInfo("listening on %s", StyleHighlight.Render(cfg.Server.Addr))
			return srv.ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	return cmd
}
