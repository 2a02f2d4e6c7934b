package main

import (
	"flag"
	"fmt"
	"slices"

	"github.com/gomlx/exceptions"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/born-ml/compare/backend/cpu"
	"github.com/born-ml/compare/compare"
	"github.com/born-ml/compare/internal/config"
	"github.com/born-ml/compare/tensor"
)

// NewCLI builds the root command with every subcommand attached.
func NewCLI() *cobra.Command {
	cobra.EnableCommandSorting = false

	rootCmd := &cobra.Command{
		Use:           "compare",
		Short:         "Comparison and selection operations on tensors",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	klogFlags := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(klogFlags)
	rootCmd.PersistentFlags().AddGoFlagSet(klogFlags)

	rootCmd.AddCommand(
		newClampCmd(),
		newIsInCmd(),
		newIsCloseCmd(),
		newAllCloseCmd(),
		newPredicateCmd("isnan", "Report NaN elements", compare.IsNaN),
		newPredicateCmd("isinf", "Report infinite elements", compare.IsInf),
		newPredicateCmd("isposinf", "Report positive infinities", compare.IsPosInf),
		newPredicateCmd("isneginf", "Report negative infinities", compare.IsNegInf),
		newPredicateCmd("isfinite", "Report finite elements", compare.IsFinite),
		newPredicateCmd("isreal", "Report elements with a zero imaginary part", compare.IsReal),
		newWhereCmd(),
		newReduceCmd("max", "Largest value along a dimension and its index", compare.Max),
		newReduceCmd("min", "Smallest value along a dimension and its index", compare.Min),
		newReduceCmd("mode", "Most frequent value along a dimension and its index", compare.Mode),
		newKernelsCmd(),
		newEnvCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

// runOp runs fn, turning a fatal kernel panic into an error.
func runOp(fn func() error) error {
	var err error
	if panicErr := exceptions.TryCatch[error](func() { err = fn() }); panicErr != nil {
		return panicErr
	}
	return err
}

func addDTypeFlag(cmd *cobra.Command, defaultValue string) {
	cmd.Flags().String("dtype", defaultValue, "Element type of the input tensors")
}

func newClampCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clamp",
		Short: "Limit every element to [--min, --max]",
		Args:  cobra.NoArgs,
	}
	values := addTensorFlag(cmd, "values", "Input elements")
	addDTypeFlag(cmd, "float32")
	cmd.Flags().String("min", "", "Lower bound")
	cmd.Flags().String("max", "", "Upper bound")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		dtype, err := dtypeFlag(cmd)
		if err != nil {
			return err
		}
		x, err := values.build(dtype)
		if err != nil {
			return err
		}
		var bounds [2]*tensor.Scalar
		for i, name := range []string{"min", "max"} {
			if !cmd.Flags().Changed(name) {
				continue
			}
			s, _ := cmd.Flags().GetString(name)
			v, err := parseScalar(s)
			if err != nil {
				return err
			}
			bounds[i] = &v
		}
		return runOp(func() error {
			y, err := compare.Clamp(x, bounds[0], bounds[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), y)
			return nil
		})
	}
	return cmd
}

func newIsInCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "isin",
		Short: "Report which elements of --values occur in --test",
		Args:  cobra.NoArgs,
	}
	values := addTensorFlag(cmd, "values", "Elements")
	test := addTensorFlag(cmd, "test", "Test elements")
	addDTypeFlag(cmd, "int64")
	cmd.Flags().Bool("assume-unique", false, "Both operands hold no duplicates")
	cmd.Flags().Bool("invert", false, "Report elements that do not occur")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		dtype, err := dtypeFlag(cmd)
		if err != nil {
			return err
		}
		x, err := values.build(dtype)
		if err != nil {
			return err
		}
		t, err := test.build(dtype)
		if err != nil {
			return err
		}
		assumeUnique, _ := cmd.Flags().GetBool("assume-unique")
		invert, _ := cmd.Flags().GetBool("invert")
		return runOp(func() error {
			mask, err := compare.IsIn(x, t, assumeUnique, invert)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), mask)
			return nil
		})
	}
	return cmd
}

// closeFlags registers the operands and tolerances shared by isclose and allclose.
func closeFlags(cmd *cobra.Command) (values, other *tensorFlag) {
	values = addTensorFlag(cmd, "values", "Elements")
	other = addTensorFlag(cmd, "other", "Elements compared against")
	addDTypeFlag(cmd, "float32")
	cmd.Flags().Float64("rtol", compare.DefaultRTol, "Relative tolerance, scaled by |other|")
	cmd.Flags().Float64("atol", compare.DefaultATol, "Absolute tolerance")
	cmd.Flags().Bool("equal-nan", false, "Treat NaN as close to NaN")
	return values, other
}

func closeArgs(cmd *cobra.Command, values, other *tensorFlag) (a, b *tensor.RawTensor, rtol, atol float64, equalNaN bool, err error) {
	dtype, err := dtypeFlag(cmd)
	if err != nil {
		return
	}
	if a, err = values.build(dtype); err != nil {
		return
	}
	if b, err = other.build(dtype); err != nil {
		return
	}
	rtol, _ = cmd.Flags().GetFloat64("rtol")
	atol, _ = cmd.Flags().GetFloat64("atol")
	equalNaN, _ = cmd.Flags().GetBool("equal-nan")
	return
}

func newIsCloseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "isclose",
		Short: "Report which elements are within tolerance of --other",
		Args:  cobra.NoArgs,
	}
	values, other := closeFlags(cmd)
	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		a, b, rtol, atol, equalNaN, err := closeArgs(cmd, values, other)
		if err != nil {
			return err
		}
		return runOp(func() error {
			mask, err := compare.IsClose(a, b, rtol, atol, equalNaN)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), mask)
			return nil
		})
	}
	return cmd
}

func newAllCloseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "allclose",
		Short: "Report whether every element is within tolerance of --other",
		Args:  cobra.NoArgs,
	}
	values, other := closeFlags(cmd)
	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		a, b, rtol, atol, equalNaN, err := closeArgs(cmd, values, other)
		if err != nil {
			return err
		}
		return runOp(func() error {
			all, err := compare.AllClose(a, b, rtol, atol, equalNaN)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), all)
			return nil
		})
	}
	return cmd
}

func newPredicateCmd(use, short string, pred func(*tensor.RawTensor) (*tensor.RawTensor, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
	}
	values := addTensorFlag(cmd, "values", "Input elements")
	addDTypeFlag(cmd, "float32")
	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		dtype, err := dtypeFlag(cmd)
		if err != nil {
			return err
		}
		x, err := values.build(dtype)
		if err != nil {
			return err
		}
		return runOp(func() error {
			mask, err := pred(x)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), mask)
			return nil
		})
	}
	return cmd
}

func newWhereCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "where",
		Short: "Select --x where --cond holds and --y elsewhere",
		Args:  cobra.NoArgs,
	}
	cond := addTensorFlag(cmd, "cond", "Condition")
	x := addTensorFlag(cmd, "x", "Elements selected where the condition holds")
	y := addTensorFlag(cmd, "y", "Elements selected elsewhere")
	addDTypeFlag(cmd, "float32")
	cmd.Flags().String("cond-dtype", "bool", "Element type of --cond")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		dtype, err := dtypeFlag(cmd)
		if err != nil {
			return err
		}
		name, _ := cmd.Flags().GetString("cond-dtype")
		condDType, err := tensor.ParseDataType(name)
		if err != nil {
			return err
		}
		c, err := cond.build(condDType)
		if err != nil {
			return err
		}
		a, err := x.build(dtype)
		if err != nil {
			return err
		}
		b, err := y.build(dtype)
		if err != nil {
			return err
		}
		return runOp(func() error {
			z, err := compare.Where(c, a, b)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), z)
			return nil
		})
	}
	return cmd
}

type reduceFn func(self *tensor.RawTensor, dim int, keepDim bool) (values, indices *tensor.RawTensor, err error)

func newReduceCmd(use, short string, reduce reduceFn) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
	}
	values := addTensorFlag(cmd, "values", "Input elements")
	addDTypeFlag(cmd, "float32")
	cmd.Flags().Int("dim", 0, "Dimension to reduce; negative counts from the end")
	cmd.Flags().Bool("keepdim", false, "Keep the reduced dimension with size 1")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		dtype, err := dtypeFlag(cmd)
		if err != nil {
			return err
		}
		x, err := values.build(dtype)
		if err != nil {
			return err
		}
		dim, _ := cmd.Flags().GetInt("dim")
		keepDim, _ := cmd.Flags().GetBool("keepdim")
		return runOp(func() error {
			v, i, err := reduce(x, dim, keepDim)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "values: ", v)
			fmt.Fprintln(cmd.OutOrStdout(), "indices:", i)
			return nil
		})
	}
	return cmd
}

func newKernelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kernels",
		Short: "List the operations with a CPU kernel",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			b := cpu.New()
			for _, op := range b.Kernels() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", b.Name(), op)
			}
		},
	}
}

func newEnvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Show the environment configuration",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			vars := config.AsMap()
			names := make([]string, 0, len(vars))
			for name := range vars {
				names = append(names, name)
			}
			slices.Sort(names)
			for _, name := range names {
				v := vars[name]
				fmt.Fprintf(cmd.OutOrStdout(), "%-24s %-10v %s\n", v.Name, v.Value, v.Description)
			}
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "compare %s\n", version)
		},
	}
}
