package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hue-hunt/internal/config"
	"github.com/vovakirdan/hue-hunt/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagLogLevel    string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Hue Hunt SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with a difficulty menu.
Final stages are stored per-server under the SSH user name.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.huehunt/host_key

Environment (flags take precedence):
  HUEHUNT_SSH_ADDR, HUEHUNT_HOST_KEY, HUEHUNT_DB_PATH,
  HUEHUNT_IDLE_TIMEOUT (e.g. 45m), HUEHUNT_LOG_LEVEL

Examples:
  huehunt serve                           # Listen on :23234 with auto-generated key
  huehunt serve --ssh :2222               # Listen on port 2222
  huehunt serve --host-key ./my_host_key  # Use specific host key
  huehunt serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

func runServe(cmd *cobra.Command, _ []string) {
	cfg, err := serverConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting Hue Hunt SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

// serverConfig layers explicitly set flags over the environment.
func serverConfig(cmd *cobra.Command) (tui.SSHServerConfig, error) {
	envCfg, err := config.LoadServerEnv()
	if err != nil {
		return tui.SSHServerConfig{}, err
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = envCfg.Address
	cfg.HostKeyPath = envCfg.HostKeyPath
	cfg.DBPath = envCfg.DBPath
	cfg.IdleTimeout = envCfg.IdleTimeout
	cfg.LogLevel = envCfg.LogLevel
	cfg.TickRate = flagFPS

	flags := cmd.Flags()
	if flags.Changed("ssh") {
		cfg.Address = flagSSHAddr
	}
	if flags.Changed("host-key") {
		cfg.HostKeyPath = flagHostKey
	}
	if flags.Changed("db") {
		cfg.DBPath = flagDBPath
	}
	if flags.Changed("idle-timeout") {
		cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = flagLogLevel
	}
	return cfg, nil
}
