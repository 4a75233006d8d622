package main

import (
	"os"

	"github.com/spf13/cobra"

	"svw.info/sudokugen/internal/generator"
	"svw.info/sudokugen/internal/hint"
	"svw.info/sudokugen/internal/infrastructure/storage"
	"svw.info/sudokugen/internal/render"
	"svw.info/sudokugen/internal/solver"
	"svw.info/sudokugen/internal/usecase"
	"svw.info/sudokugen/internal/validator"
)

var (
	configPath string
	noColor    bool
	verbose    bool

	cfg appConfig
)

var rootCommand = &cobra.Command{
	Use:   "sudokugen",
	Short: "Solve and generate 9x9 Sudoku puzzles",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		loaded, err := loadConfig(configPath)
		if err != nil {
			logger.Fatal().Err(err).Msg("load config")
		}
		cfg = loaded
	},
}

func init() {
	rootCommand.PersistentFlags().StringVarP(&configPath, "config", "c", defaultConfigPath, "configuration file path")
	rootCommand.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCommand.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log search statistics")
}

func main() {
	if err := rootCommand.Execute(); err != nil {
		logger.Fatal().Err(err).Msg("command failed")
	}
}

// newService wires the solver into every component that needs it, the
// same solver instance backing solving, uniqueness checks, and
// generation.
func newService() *usecase.Service {
	s := solver.NewBacktracking()
	return usecase.NewService(
		s,
		generator.NewUniqueGenerator(s),
		validator.New(),
		hint.NewSingles(),
		storage.NewFiles(),
	)
}

// newRenderer resolves color from flag, config, NO_COLOR, and whether
// stdout is a terminal.
func newRenderer() *render.Renderer {
	color := cfg.Color && !noColor
	if os.Getenv("NO_COLOR") != "" {
		color = false
	}
	if fi, err := os.Stdout.Stat(); err == nil && fi.Mode()&os.ModeCharDevice == 0 {
		color = false
	}
	return render.New(color)
}
