package main

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/spf13/cobra"

	"github.com/oxygene76/vector3/pkg/nbody"
)

func nbodyCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nbody",
		Short: "N-body integration built on vector3",
	}
	cmd.AddCommand(simulateCmd(a))
	return cmd
}

func simulateCmd(a *app) *cobra.Command {
	var (
		duration  float64
		timestep  float64
		snapEvery int
		mass      float64
		distance  float64
		ecc       float64
		incl      float64
		outPath   string
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Integrate a star and one planet",
		Long: `Integrate a 1 M☉ star and a planet starting at perihelion of the orbit
given by --distance (semi-major axis), --eccentricity and --inclination with the
leapfrog integrator. Snapshots are written as JSON lines to --out (stdout when
empty). Units are AU, days and solar masses.

Examples:
  # one year of Sun-Earth
  vector3 nbody simulate --duration 365.25 --dt 0.5 --out earth.jsonl

  # Jupiter-like orbit
  vector3 nbody simulate --distance 5.2 --mass 9.5e-4 --eccentricity 0.048 --duration 4333`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("dt") {
				timestep = a.cfg.NBody.Timestep
			}
			if !cmd.Flags().Changed("snap-every") {
				snapEvery = a.cfg.NBody.SnapEvery
			}

			sys := nbody.NewSystem().WithLogger(a.logger)
			sys.G = a.cfg.NBody.Gravity
			sys.Softening = a.cfg.NBody.Softening

			orbit := nbody.Elements{
				SemiMajorAxis: distance,
				Eccentricity:  ecc,
				Inclination:   incl * math.Pi / 180,
			}
			pos, vel, err := orbit.ToState(sys.G * (1 + mass))
			if err != nil {
				return err
			}
			a.logger.Debug("initial state", "position", pos.String(), "velocity", vel.String(),
				"period_days", orbit.Period(sys.G*(1+mass)))

			if err := sys.AddBody(nbody.Body{ID: "star", Mass: 1}); err != nil {
				return err
			}
			if err := sys.AddBody(nbody.Body{ID: "planet", Mass: mass, Position: pos, Velocity: vel}); err != nil {
				return err
			}

			// stdout is flushed by OnEnd and must not be closed
			sink := nbody.NewJSONLWriter(writerOnly{cmd.OutOrStdout()})
			var file *nbody.JSONLSnapshotWriter
			if outPath != "" {
				file, err = nbody.NewJSONLSnapshotWriter(outPath)
				if err != nil {
					return fmt.Errorf("failed to open snapshot file: %w", err)
				}
				sink = file
			}

			e0 := sys.TotalEnergy()
			err = sys.Integrate(duration, timestep, snapEvery, sink)
			if file != nil {
				if cerr := file.Close(); cerr != nil {
					err = errors.Join(err, fmt.Errorf("failed to close snapshot file: %w", cerr))
				}
			}
			if err != nil {
				return err
			}

			planet, err := sys.Body("planet")
			if err != nil {
				return err
			}
			drift := 0.0
			if e0 != 0 {
				drift = math.Abs((sys.TotalEnergy() - e0) / e0)
			}
			a.logger.Info("simulation complete",
				"days", sys.Time,
				"planet", planet.Position.Format(6),
				"energy_drift", drift,
			)
			return nil
		},
	}

	cmd.Flags().Float64Var(&duration, "duration", 365.25, "simulated time in days")
	cmd.Flags().Float64Var(&timestep, "dt", 1, "timestep in days (default from config)")
	cmd.Flags().IntVar(&snapEvery, "snap-every", 10, "steps between snapshots (default from config)")
	cmd.Flags().Float64Var(&mass, "mass", 3.0e-6, "planet mass in solar masses")
	cmd.Flags().Float64Var(&distance, "distance", 1, "semi-major axis in AU")
	cmd.Flags().Float64Var(&ecc, "eccentricity", 0, "orbital eccentricity, 0 <= e < 1")
	cmd.Flags().Float64Var(&incl, "inclination", 0, "inclination in degrees")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "snapshot file (JSON lines)")

	return cmd
}

// writerOnly hides any Close method of the wrapped writer
type writerOnly struct {
	io.Writer
}
