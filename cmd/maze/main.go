// maze is a terminal maze game: find the way out of a randomly generated
// perfect maze and collect coins on the way.
//
// Usage:
//
//	maze play               - Play in the current terminal
//	maze print              - Print a generated maze as ASCII
//	maze serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 30)
//	--seed <value>   - Set RNG seed for reproducible mazes
//	--config <path>  - Path to a custom maze config YAML
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/game"
	"github.com/vovakirdan/tui-maze/internal/platform/tui"
	"github.com/vovakirdan/tui-maze/internal/telemetry"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagConfig string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "maze"})

func main() {
	// Not fatal: env vars might be set directly
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Warn(".env file not loaded", "error", err)
	}

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx)
	switch {
	case errors.Is(err, telemetry.ErrDisabled):
		// No exporter configured
	case err != nil:
		logger.Warn("telemetry setup failed, running without tracing", "error", err)
	default:
		defer func() {
			if err := shutdown(ctx); err != nil {
				logger.Warn("telemetry shutdown failed", "error", err)
			}
		}()
	}

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		// Deferred shutdown does not run after os.Exit
		if shutdown != nil {
			_ = shutdown(ctx)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "maze",
	Short: "Maze Runner - find the way out in your terminal",
	Long: `Maze Runner generates a perfect maze and drops you in the top-left
corner. Reach the goal in the bottom-right corner; coins along the way
add to your score.

Available commands:
  play     - Play in the current terminal
  print    - Print a generated maze as ASCII
  serve    - Start SSH server for remote play

Examples:
  maze play
  maze play --seed 42
  maze print --columns 10 --rows 5 --coins
  maze serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom maze config YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(printCmd)
	rootCmd.AddCommand(serveCmd)
}

// gameFactory loads the maze config once and returns a factory for the
// platform layer.
func gameFactory() (tui.Factory, error) {
	cfg, err := config.LoadMaze(flagConfig)
	if err != nil {
		return nil, err
	}
	return func() tui.Game { return game.New(cfg) }, nil
}
