package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/napolitain/microciv/internal/agent"
	"github.com/napolitain/microciv/internal/game"
	"github.com/napolitain/microciv/internal/loader"
	"github.com/napolitain/microciv/internal/models"
)

var (
	configFile string
	verbose    bool
	agentKind  string
	agentSeed  int64
	llmBase    string
	llmModel   string
	maxTurns   int
	quiet      bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "civ",
		Short: "Turn-based civilization simulation",
		Long: `A turn-based strategy simulation: civilizations build, recruit and
attack across a procedurally generated map. Non-human civilizations are
driven by a pluggable agent, locally random or backed by a remote
text-generation service.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
			slog.SetDefault(logger)
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging")
	rootCmd.PersistentFlags().StringVar(&agentKind, "agents", "random", "Agent backend: random or llm")
	rootCmd.PersistentFlags().Int64Var(&agentSeed, "agent-seed", 1, "Seed for the random agent")
	rootCmd.PersistentFlags().StringVar(&llmBase, "llm-base-url", "", "OpenAI-compatible endpoint (default $OPENAI_BASE_URL)")
	rootCmd.PersistentFlags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "Model for the llm agent")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run a headless simulation",
		Run:   runHeadless,
	}
	runCmd.Flags().IntVarP(&maxTurns, "turns", "t", 100, "Stop after this many turns")
	runCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Minimal output")

	playCmd := &cobra.Command{
		Use:   "play",
		Short: "Play interactively in the terminal",
		Run:   runPlay,
	}

	rootCmd.AddCommand(runCmd, playCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newGame loads the config (or defaults) and wires agents to every
// agent-controlled civilization.
func newGame(ctx context.Context) (*game.Game, error) {
	var cfg *models.Config
	if configFile != "" {
		loaded, err := loader.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		cfg = models.DefaultConfig()
	}

	g := game.New(cfg)

	for i, civ := range g.Civs {
		if civ.City.Kind != models.PlayerAgent {
			continue
		}
		switch agentKind {
		case "llm":
			bridge := agent.NewBridge(agent.NewLLM(llmBase, "", llmModel))
			bridge.Start(ctx)
			g.RegisterAgent(i, bridge)
		default:
			g.RegisterAgent(i, agent.NewRandom(agentSeed+int64(i)))
		}
	}
	return g, nil
}

func runHeadless(cmd *cobra.Command, args []string) {
	titleColor := color.New(color.FgCyan, color.Bold)
	successColor := color.New(color.FgGreen, color.Bold)

	if !quiet {
		titleColor.Println("\n╭───────────────────────────╮")
		titleColor.Println("│  microciv                 │")
		titleColor.Println("│  Headless Simulation      │")
		titleColor.Println("╰───────────────────────────╯")
		fmt.Println()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g, err := newGame(ctx)
	if err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}

	for g.Turn <= maxTurns && !g.Over() {
		if g.Civs[g.Active].City.Kind == models.PlayerAgent {
			g.RunAgentTurn()
		} else {
			// Headless humans pass; their economy still ticks.
			g.Step()
		}
	}

	snap := g.Snapshot()
	if !quiet {
		fmt.Printf("Finished at turn %d (seed %q)\n\n", snap.Turn, snap.Seed)
	}
	printSnapshot(snap)

	if snap.Over && snap.Winner >= 0 {
		successColor.Printf("\n✓ Winner: %s\n", snap.Players[snap.Winner].Name)
	} else if !quiet {
		fmt.Println("\nNo winner yet.")
	}
}

// printSnapshot renders the per-civilization summary table.
func printSnapshot(snap game.Snapshot) {
	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"Civilization", "Resources", "Buildings", "Units", "Status"}),
	)
	for i, p := range snap.Players {
		status := "alive"
		if !p.Alive {
			status = "defeated"
		}
		if i == snap.Active {
			status += " (active)"
		}
		table.Append([]string{
			p.Name,
			fmt.Sprintf("%d", p.Resources),
			fmt.Sprintf("%d", p.Buildings),
			fmt.Sprintf("%d", p.Units),
			status,
		})
	}
	table.Render()
}
