package main

import (
	"strconv"

	errorsmod "cosmossdk.io/errors"
	"github.com/spf13/cobra"

	"github.com/oxygene76/vector3/pkg/vector"
)

func parsePair(args []string) (vector.Vector3, vector.Vector3, error) {
	a, err := vector.Parse(args[0])
	if err != nil {
		return vector.Vector3{}, vector.Vector3{}, err
	}
	b, err := vector.Parse(args[1])
	if err != nil {
		return vector.Vector3{}, vector.Vector3{}, err
	}
	return a, b, nil
}

func parseScalar(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errorsmod.Wrapf(vector.ErrInvalidVector, "scalar %q: %v", s, err)
	}
	return f, nil
}

// vectorCommands are the componentwise binary operations
func vectorCommands(a *app) []*cobra.Command {
	binary := func(use, short string, op func(x, y vector.Vector3) vector.Vector3) *cobra.Command {
		return &cobra.Command{
			Use:   use + " [a] [b]",
			Short: short,
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				x, y, err := parsePair(args)
				if err != nil {
					return err
				}
				return printVector(cmd.OutOrStdout(), a.cfg, use, op(x, y))
			},
		}
	}

	divCmd := &cobra.Command{
		Use:   "div [a] [b]",
		Short: "Elementwise quotient a / b",
		Long:  `Divide a by b component by component. Fails if any component of b is zero.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, y, err := parsePair(args)
			if err != nil {
				return err
			}
			q, err := x.Div(y)
			if err != nil {
				a.logger.Error("division failed", "dividend", x.String(), "divisor", y.String(), "err", err)
				return err
			}
			return printVector(cmd.OutOrStdout(), a.cfg, "div", q)
		},
	}

	return []*cobra.Command{
		binary("add", "Componentwise sum a + b", vector.Vector3.Add),
		binary("sub", "Componentwise difference a - b", vector.Vector3.Sub),
		binary("mul", "Elementwise (Hadamard) product a * b", vector.Vector3.Mul),
		binary("cross", "Cross product a × b", vector.Vector3.Cross),
		divCmd,
	}
}

// scalarCommands take a vector and a scalar
func scalarCommands(a *app) []*cobra.Command {
	scaleCmd := &cobra.Command{
		Use:   "scale [v] [s]",
		Short: "Multiply every component of v by s",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := vector.Parse(args[0])
			if err != nil {
				return err
			}
			s, err := parseScalar(args[1])
			if err != nil {
				return err
			}
			return printVector(cmd.OutOrStdout(), a.cfg, "scale", v.Scale(s))
		},
	}

	sdivCmd := &cobra.Command{
		Use:   "sdiv [v] [s]",
		Short: "Divide every component of v by s",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := vector.Parse(args[0])
			if err != nil {
				return err
			}
			s, err := parseScalar(args[1])
			if err != nil {
				return err
			}
			q, err := v.DivScalar(s)
			if err != nil {
				a.logger.Error("division failed", "dividend", v.String(), "divisor", s, "err", err)
				return err
			}
			return printVector(cmd.OutOrStdout(), a.cfg, "sdiv", q)
		},
	}

	return []*cobra.Command{scaleCmd, sdivCmd}
}

// geometryCommands reduce vectors to a scalar or a flag
func geometryCommands(a *app) []*cobra.Command {
	scalarOp := func(use, short string, op func(x, y vector.Vector3) float64) *cobra.Command {
		return &cobra.Command{
			Use:   use + " [a] [b]",
			Short: short,
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				x, y, err := parsePair(args)
				if err != nil {
					return err
				}
				return printScalar(cmd.OutOrStdout(), a.cfg, use, op(x, y))
			},
		}
	}

	eqCmd := &cobra.Command{
		Use:   "eq [a] [b]",
		Short: "Report whether a and b are componentwise equal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, y, err := parsePair(args)
			if err != nil {
				return err
			}
			return printBool(cmd.OutOrStdout(), a.cfg, "eq", vector.Equal(x, y))
		},
	}

	normCmd := &cobra.Command{
		Use:   "norm [v]",
		Short: "Length of v",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := vector.Parse(args[0])
			if err != nil {
				return err
			}
			return printScalar(cmd.OutOrStdout(), a.cfg, "norm", v.Magnitude())
		},
	}

	return []*cobra.Command{
		scalarOp("dot", "Dot product of a and b", vector.Dot),
		scalarOp("dist", "Euclidean distance between a and b", vector.Distance),
		scalarOp("dist2", "Squared distance between a and b", vector.DistanceSquared),
		eqCmd,
		normCmd,
	}
}
