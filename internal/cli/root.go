package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lotworks/lotview/internal/config"
	"github.com/lotworks/lotview/internal/logger"
	"github.com/lotworks/lotview/internal/session"
	"github.com/lotworks/lotview/internal/tui"
	"github.com/spf13/cobra"
)

var (
	logLevel   string
	logFile    string
	logConsole bool
	catalogURL string
)

var rootCmd = &cobra.Command{
	Use:   "lotview",
	Short: "LotView - Terminal vehicle auction browser",
	Long: `LotView is a terminal client for browsing a vehicle auction catalog:
filter, sort and page through the lots, mark favorites, and keep your
last search and session across restarts.

Run 'lotview' without arguments to launch the interactive TUI.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			cfg = config.DefaultConfig()
		}

		// Override with CLI flags if provided
		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel = logLevel
		}
		if cmd.Flags().Changed("log-file") {
			cfg.LogFile = logFile
		}
		if cmd.Flags().Changed("log-console") {
			cfg.LogConsole = logConsole
		}
		if cmd.Flags().Changed("catalog-url") {
			cfg.CatalogURL = catalogURL
			if err := cfg.Save(); err != nil {
				logger.Warn("Failed to save config", logger.F("error", err))
			}
		}

		logConfig := logger.DefaultConfig()
		logConfig.Level = logger.ParseLevel(cfg.LogLevel)
		logConfig.FilePath = cfg.LogFile
		logConfig.Console = cfg.LogConsole

		if err := logger.Init(logConfig); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		logger.Info("LotView started", logger.F("command", cmd.Name()))
		return nil
	},

	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			logger.Error("Failed to open app", logger.F("error", err))
			return err
		}
		defer app.Close()

		monitor := session.NewMonitor(app.Store, session.DefaultTickInterval)
		monitor.Start()
		defer monitor.Stop()

		logger.Info("Launching TUI")
		m := tui.NewModel(app.Store, app.Client, monitor, app.Config.TTL())
		p := tea.NewProgram(m, tea.WithAltScreen())

		if _, err := p.Run(); err != nil {
			logger.Error("TUI error", logger.F("error", err))
			return fmt.Errorf("failed to run TUI: %w", err)
		}

		logger.Info("TUI exited normally")
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Info("LotView exiting", logger.F("command", cmd.Name()))
		logger.Close()
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (DEBUG, INFO, WARN, ERROR)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Path to log file")
	rootCmd.PersistentFlags().BoolVar(&logConsole, "log-console", false, "Enable console logging")
	rootCmd.PersistentFlags().StringVar(&catalogURL, "catalog-url", "", "Catalog server base URL")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(favoritesCmd)
	rootCmd.AddCommand(authCmd)
	rootCmd.AddCommand(searchCmd)
}
