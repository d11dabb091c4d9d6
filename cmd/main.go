package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"go.booleval.dev/pkg"
)

var (
	cfgFile string
	expr    string
	verbose bool
	noColor bool

	cfg *booleval.Config
)

// errReported marks a failure whose diagnostic was already printed.
var errReported = errors.New("reported")

var rootCmd = &cobra.Command{
	Use:   "booleval [file]",
	Short: "Evaluate boolean expressions over declared bits",
	Long: `booleval evaluates a program of the form

  <n> <bit_1> ... <bit_n> <expr>

where the bits are bound to the variables A, B, C, ... and <expr> is a
variable or a call to not, and or or, for example "2 1 0 and(A, not(B))".

Without a file or -e an interactive prompt is started.`,
	Args:              cobra.MaximumNArgs(1),
	PersistentPreRunE: setup,
	SilenceUsage:      true,
	SilenceErrors:     true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 && expr == "" {
			return repl(newInterpreter(), cfg)
		}

		src, err := readSource(args)
		if err != nil {
			return err
		}

		return evalSource(cmd.OutOrStdout(), newInterpreter(), src)
	},
}

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Print the tokens of a program",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := readSource(args)
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), booleval.TokensString(src))
		return nil
	},
}

var treeCmd = &cobra.Command{
	Use:   "tree [file]",
	Short: "Print the expression tree of a program",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := readSource(args)
		if err != nil {
			return err
		}

		program, err := newInterpreter().Parse(src)
		if err != nil {
			return report(src, err)
		}

		fmt.Fprint(cmd.OutOrStdout(), booleval.TreeString(program.Expr))
		return nil
	},
}

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Report every undefined name and bad call without evaluating",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := readSource(args)
		if err != nil {
			return err
		}

		errs, err := newInterpreter().Check(src)
		if err != nil {
			return report(src, err)
		}

		for _, e := range errs {
			fmt.Fprint(os.Stderr, printer().Format(e, src))
		}

		if len(errs) != 0 {
			return errReported
		}

		fmt.Fprintln(cmd.OutOrStdout(), "ok")
		return nil
	},
}

var irCmd = &cobra.Command{
	Use:   "ir [file]",
	Short: "Print the LLVM IR of a program",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := readSource(args)
		if err != nil {
			return err
		}

		out, err := newInterpreter().CompileIR(src)
		if err != nil {
			return report(src, err)
		}

		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (.toml or .yaml)")
	rootCmd.PersistentFlags().StringVarP(&expr, "expr", "e", "", "program text to run instead of a file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every pipeline stage")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored diagnostics")

	rootCmd.AddCommand(tokensCmd, treeCmd, checkCmd, irCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}

		os.Exit(1)
	}
}

func setup(cmd *cobra.Command, _ []string) error {
	cfg = booleval.DefaultConfig()
	if cfgFile != "" {
		loaded, err := booleval.LoadConfig(cfgFile)
		if err != nil {
			return err
		}

		cfg = loaded
	}

	if noColor {
		cfg.Color = false
	}

	if verbose {
		cfg.LogLevel = "debug"
	}

	return nil
}

func newInterpreter() *booleval.Interpreter {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelWarn
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return booleval.NewInterpreter(slog.New(handler))
}

func printer() booleval.DiagnosticPrinter {
	return booleval.DiagnosticPrinter{Color: cfg.Color}
}

func readSource(args []string) (string, error) {
	if expr != "" || len(args) == 0 {
		return expr, nil
	}

	if args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}

		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", err
	}

	return string(data), nil
}

func evalSource(w io.Writer, interp *booleval.Interpreter, src string) error {
	src = strings.TrimRight(src, "\r\n")

	if cfg.ShowTokens {
		fmt.Fprint(w, booleval.TokensString(src))
	}

	if cfg.ShowTree {
		if program, err := booleval.Parse(src); err == nil {
			fmt.Fprint(w, booleval.TreeString(program.Expr))
		}
	}

	result, err := interp.Run(src)
	if err != nil {
		return report(src, err)
	}

	fmt.Fprintln(w, result)
	return nil
}

// report prints positioned errors as diagnostics and passes others through.
func report(src string, err error) error {
	if _, ok := booleval.AsError(err); !ok {
		return err
	}

	fmt.Fprint(os.Stderr, printer().Format(err, src))
	return errReported
}
