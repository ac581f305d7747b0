// Command lisk is a pure Go implementation of a minimal, parenthesised,
// prefix-notation expression language interpreter. It loads an optional
// standard-library file, evaluates any files given on the command line,
// and then starts a read-eval-print loop.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/conneroisu/lisk/internal/config"
	"github.com/conneroisu/lisk/internal/logging"
	"github.com/conneroisu/lisk/internal/value"
	"github.com/conneroisu/lisk/pkg/eval"
	"github.com/conneroisu/lisk/pkg/lexer"
	"github.com/conneroisu/lisk/pkg/list"
	"github.com/conneroisu/lisk/pkg/parser"
)

func main() {
	var noStdlib bool
	var stdlibOverride string

	root := &cobra.Command{
		Use:           "lisk [files...]",
		Short:         "A minimal Lisp-family expression language interpreter",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args, noStdlib, stdlibOverride)
		},
	}

	root.Flags().BoolVar(&noStdlib, "no-stdlib", false, "skip loading the standard-library bootstrap file")
	root.Flags().StringVar(&stdlibOverride, "stdlib", "", "override the standard-library bootstrap file path")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(files []string, noStdlib bool, stdlibOverride string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	if stdlibOverride != "" {
		cfg.StdlibPath = stdlibOverride
	}

	sessionID := uuid.New()
	logger, closer, err := logging.New(cfg.LogLevel, sessionID)
	if err != nil {
		return fmt.Errorf("initialising logger: %w", err)
	}
	defer closer()

	evaluator := eval.New()
	env := eval.NewGlobalStack()

	if !noStdlib {
		loadStdlib(evaluator, env, cfg.StdlibPath, logger)
	}

	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Errorw("failed to open file", "path", path, "error", err)

			return fmt.Errorf("failed to open file %q: %w", path, err)
		}
		if diag := runSource(evaluator, env, string(data), false); diag != nil {
			logger.Warnw("file load produced diagnostics", "path", path, "errors", len(diag.Errors))
		}
	}

	logger.Infow("starting REPL", "prompt", cfg.Prompt)
	startREPL(evaluator, env, cfg.Prompt)

	return nil
}

// loadStdlib attempts to load the standard-library bootstrap file. Its
// absence is not fatal: a warning is logged and startup continues, per the
// language's own documented behaviour for a missing stdlib.
func loadStdlib(evaluator *eval.Evaluator, env *value.Stack, path string, logger *zap.SugaredLogger) {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warnw("Failed to open file", "path", path, "error", err)

		return
	}
	runSource(evaluator, env, string(data), false)
}

// runSource lexes, builds, lowers, and evaluates every top-level form in
// src against env. Each top-level form's value is printed when printValues
// is true (interactive mode). A syntax error halts this source (the
// remaining top-level forms are not attempted); a runtime error only
// aborts the form that raised it, and evaluation moves on to the next
// one. Both taxa are always printed, with their respective prefix, and
// aggregated into the returned diagnostics so the caller can log a
// summary without re-deriving it.
func runSource(evaluator *eval.Evaluator, env *value.Stack, src string, printValues bool) *multierror.Error {
	var diagnostics *multierror.Error

	tokens := lexer.New(src).Tokenize()
	root := list.New(tokens).Build()

	for _, form := range root.Children {
		expr, err := parser.Lower(form)
		if err != nil {
			fmt.Println("Syntax error:", err)
			diagnostics = multierror.Append(diagnostics, err)

			break
		}

		result, err := evaluator.Eval(expr, env)
		if err != nil {
			fmt.Println("Runtime error:", err)
			diagnostics = multierror.Append(diagnostics, err)

			continue
		}

		if printValues {
			fmt.Println(result.String())
		}
	}

	return diagnostics
}

func startREPL(evaluator *eval.Evaluator, env *value.Stack, prompt string) {
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print(prompt)
		if !scanner.Scan() {
			return
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "exit" {
			return
		}
		if line == "" {
			fmt.Println()

			continue
		}

		runSource(evaluator, env, line, true)
		fmt.Println()
	}
}
