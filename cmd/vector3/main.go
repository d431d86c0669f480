package main

import (
	"fmt"
	"io"
	"os"

	"cosmossdk.io/log"
	"github.com/spf13/cobra"

	"github.com/oxygene76/vector3/internal/config"
)

const (
	appName = "vector3"
	version = "v1.0.0"
)

// app carries state shared by every subcommand after PersistentPreRunE
type app struct {
	cfgFile  string
	logLevel string

	cfg    *config.Config
	logger log.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   appName,
		Short: "3D vector arithmetic and geometry",
		Long: `vector3 evaluates componentwise arithmetic, scalar arithmetic and geometry
helpers on 3D vectors. Vectors are written as x,y,z. Quote vectors with a
leading minus sign as "(-1,2,3)" or pass them after --.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.vector3/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override the configured log level")

	rootCmd.AddCommand(vectorCommands(a)...)
	rootCmd.AddCommand(scalarCommands(a)...)
	rootCmd.AddCommand(geometryCommands(a)...)
	rootCmd.AddCommand(nbodyCmd(a))
	rootCmd.AddCommand(configCmd(a))

	return rootCmd
}

func (a *app) setup(stderr io.Writer) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	a.cfg = cfg

	opts := []log.Option{log.LevelOption(cfg.LogLevel()), log.ColorOption(false)}
	if cfg.Log.JSON {
		opts = append(opts, log.OutputJSONOption())
	}
	a.logger = log.NewLogger(stderr, opts...)
	return nil
}
