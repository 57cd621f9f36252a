package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"codegem/internal/cache"
	"codegem/internal/config"
	"codegem/internal/gemini"
	"codegem/internal/input"
	"codegem/internal/logging"
	"codegem/internal/protocol"
	"codegem/internal/server"
	"codegem/internal/tools"
)

var (
	// Global flags
	configPath string
	verbose    bool
)

// rootCmd starts the stdio server. Running the binary with no
// subcommand is the normal way an MCP client launches it.
var rootCmd = &cobra.Command{
	Use:   "codegem",
	Short: "codegem - Gemini-backed coding tools over MCP stdio",
	Long: `codegem is an MCP server that exposes Gemini-backed coding tools
(spec writing, code review, refactoring, debugging and more) over
newline-delimited JSON-RPC on stdin/stdout.

Run without arguments to start serving. All logs go to stderr; stdout
carries only protocol traffic.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

// versionCmd prints the server version.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the server version",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Default()
		fmt.Printf("%s v%s\n", cfg.Server.Name, cfg.Server.Version)
	},
}

// toolsCmd dumps the tool catalog as JSON, handy for wiring up clients.
var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "Print the tool catalog as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		registry := tools.NewRegistry(tools.Deps{
			Generator: stubGenerator{},
			Version:   config.Default().Server.Version,
		})
		data, err := json.MarshalIndent(registry.List(), "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	},
}

// stubGenerator makes the registry build its full catalog without a
// live API key. The tools command never invokes it.
type stubGenerator struct{}

func (stubGenerator) Generate(ctx context.Context, prompt string, opts gemini.Options) (string, error) {
	return "", fmt.Errorf("no backend configured")
}

func runServe(ctx context.Context) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}
	if err := logging.Initialize(level); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer logging.Sync()

	logging.Boot("%s v%s starting", cfg.Server.Name, cfg.Server.Version)

	if cfg.Gemini.APIKey == "" {
		// No key means no session at all: tell the client once on the
		// protocol channel and bail.
		resp := protocol.NewError(nil, protocol.CodeInternalError,
			"Please set your Gemini API key in the GEMINI_API_KEY environment variable")
		data, _ := json.Marshal(resp)
		fmt.Fprintln(os.Stdout, string(data))
		logging.BootError("missing %s, refusing to serve", config.EnvAPIKey)
		os.Exit(1)
	}

	deps := tools.Deps{
		Cache:    cache.New(cfg.CacheTTL(), cfg.Cache.MaxEntries),
		Resolver: input.NewResolver(cfg.Input.MaxTextLength),
		Version:  cfg.Server.Version,
	}

	client, err := gemini.NewClient(ctx, cfg.Gemini)
	if err != nil {
		// Degraded mode: serve anyway, but only server_info is offered
		// and it reports what went wrong.
		logging.BootError("gemini client init failed, serving degraded: %v", err)
		deps.InitError = err.Error()
	} else {
		deps.Generator = client
		logging.Boot("gemini client ready (pro=%s fast=%s)", cfg.Gemini.ProModel, cfg.Gemini.FastModel)
	}

	registry := tools.NewRegistry(deps)
	srv := server.New(cfg.Server.Name, cfg.Server.Version, cfg.Server.ResponseTag, registry)
	return srv.Serve(ctx, os.Stdin, os.Stdout)
}

func main() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(toolsCmd)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
