package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-slingshot/internal/audio"
	"github.com/vovakirdan/tui-slingshot/internal/core"
	"github.com/vovakirdan/tui-slingshot/internal/games/slingshot"
	"github.com/vovakirdan/tui-slingshot/internal/platform/tui"
	"github.com/vovakirdan/tui-slingshot/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagSound      bool
	flagVolume     float64
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing. The game defaults to slingshot.

Controls:
  Mouse      - Drag the bird on the slingshot and release to fire
  Click      - Use the flying bird's power
  Space      - Use the flying bird's power
  Enter      - Start from the title screen
  I / B      - Show instructions / go back
  R          - Restart
  Esc        - Quit

Difficulty options:
  easy   - Weaker gravity, longer drag
  normal - Default physics
  hard   - Stronger gravity, shorter drag

Examples:
  slingshot play
  slingshot play --difficulty hard
  slingshot play --config ./my-level.yaml --sound`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom level config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.5, "Sound effect volume (0-1)")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := slingshot.ID
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'slingshot list' to see available games.")
		os.Exit(1)
	}

	// play owns the log file and the speaker; exit only after its deferred closes ran
	if err := play(gameID); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func play(gameID string) error {
	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	// Level setup failure is fatal: the game cannot start without its scene
	slingshot.SetConfigPath(flagConfig)
	if err := slingshot.SetDifficultyPreset(flagDifficulty); err != nil {
		return err
	}
	if _, err := slingshot.LoadConfig(); err != nil {
		logger.Error("level setup failed", "error", err)
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	var sound *audio.SoundManager
	if flagSound {
		seed := soundSeed()
		sound = audio.NewSoundManager(flagVolume, seed)
		if err := sound.Initialize(); err != nil {
			// Continue silently - audio is optional
			logger.Warn("audio unavailable", "error", err)
		}
		defer sound.Close()
		logger.Debug("sound enabled", "volume", flagVolume, "seed", seed)
	}

	logger.Info("starting", "game", gameID, "difficulty", flagDifficulty, "fps", cfg.TickRate)
	final, err := tui.Run(game, cfg, tui.Options{Logger: logger, Sound: sound})
	if err != nil {
		logger.Error("run failed", "error", err)
		return err
	}

	if final.State().GameOver {
		if table := tui.SummaryTable(game); table != "" {
			fmt.Println(table)
		}
	}
	fmt.Printf("Final score: %d\n", final.State().Score)
	return nil
}

// soundSeed returns --seed, or a time-based seed when it is zero.
func soundSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}
