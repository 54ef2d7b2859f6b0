// ABOUTME: Root Cobra command for meso CLI.
// ABOUTME: Opens storage via PersistentPreRunE and closes it after every command.
package main

import (
	"fmt"

	"github.com/liftlab/meso/internal/config"
	"github.com/liftlab/meso/internal/session"
	"github.com/liftlab/meso/internal/storage"
	"github.com/spf13/cobra"
)

var (
	cfg        *config.Config
	repo       storage.Repository
	sessionMgr *session.Manager
)

var rootCmd = &cobra.Command{
	Use:   "meso",
	Short: "Progressive overload workout tracker",
	Long: `Meso is a CLI tool for tracking strength training with automatic
progressive-overload suggestions.

WHAT IT DOES:

  Programmes     Mesocycles: multi-week plans with per-week RIR targets
  Workouts       Log sets with weight, reps, and effort (RIR or RPE)
  Suggestions    Next-session weight and rep targets from your last performance
  Stats          Streaks, weekly volume, personal records, insights

QUICK START:

  $ meso init                              # Create the database and catalog
  $ meso programme import plan.toml        # Load a training plan
  $ meso programme start <id>              # Activate it
  $ meso workout start --day 1             # Begin today's session
  $ meso workout set "Barbell Squat" 100 8 --rir 2
  $ meso workout finish                    # Persist and detect PRs
  $ meso suggest                           # See next session's targets

PROGRESSION:

  Suggestions follow a rep-range double progression: hit the top of the
  range at or below the week's target RIR and the weight goes up (2.5 for
  upper body, 5.0 for lower body, capped at 10% per jump); too much left
  in the tank and the weight nudges up half an increment; high fatigue
  backs the volume off.

MCP INTEGRATION:

  Run 'meso mcp' to start the Model Context Protocol server for use with
  MCP-compatible AI assistants:

  {
    "mcpServers": {
      "meso": { "command": "meso", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Data lives in a SQLite database at ~/.local/share/meso/meso.db.
  Config (data dir override) is at ~/.config/meso/config.json.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		repo, err = cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}

		sessionMgr = session.NewManager(cfg.GetDataDir(), repo)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if repo != nil {
			return repo.Close()
		}
		return nil
	},
}
