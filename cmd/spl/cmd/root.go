package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/spf13/cobra"
	"github.com/xiam/spl"
	"github.com/xiam/spl/ast"
	"github.com/xiam/spl/config"
	"github.com/xiam/spl/lexer"
	"github.com/xiam/spl/parser"
)

type options struct {
	cfgFile string
	verbose bool

	tokens  bool
	ast     bool
	style   string
	strict  bool
	noColor bool
}

// NewRootCmd builds the spl command with its subcommands
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "spl <file.spl>",
		Short: "SPL front end",
		Long: `spl scans and parses an SPL program and prints what it found.

Example program:

` + spl.Example,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return run(cmd, opts, args[0])
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&opts.cfgFile, "config", "", "config file (.toml, .yaml or .yml)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")
	flags.BoolVar(&opts.tokens, "tokens", false, "dump the token stream")
	flags.BoolVar(&opts.ast, "ast", true, "print the syntax tree")
	flags.StringVar(&opts.style, "format", config.StyleTree, "syntax tree format: tree or sexpr")
	flags.BoolVar(&opts.strict, "strict", false, "fail on malformed escapes, unterminated literals and illegal characters")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable highlighting")

	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the spl command line
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		printError(rootCmd.ErrOrStderr(), err)
		return err
	}
	return nil
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
}

// loadConfig reads the config file, if any, and lets explicit flags override
// its values.
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg := config.Default()
	if opts.cfgFile != "" {
		var err error
		if cfg, err = config.Load(opts.cfgFile); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("tokens") {
		cfg.Output.Tokens = opts.tokens
	}
	if flags.Changed("ast") {
		cfg.Output.AST = opts.ast
	}
	if flags.Changed("format") {
		cfg.Output.Style = opts.style
	}
	if flags.Changed("strict") {
		cfg.Lexer.Strict = opts.strict
	}
	if opts.noColor {
		cfg.Output.Color = false
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(cmd *cobra.Command, opts *options, path string) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	logger := log.New(io.Discard, "", 0)
	if opts.verbose {
		logger = log.New(cmd.ErrOrStderr(), "spl: ", log.LstdFlags)
	}

	source, err := spl.ReadFile(path)
	if err != nil {
		if errors.Is(err, spl.ErrEmptyProgram) {
			fmt.Fprintf(out, "%s: %v, try something like:\n\n%s\n", path, err, spl.Example)
			return nil
		}
		return err
	}

	lexOpts := []lexer.Option{}
	if cfg.Lexer.Strict {
		lexOpts = append(lexOpts, lexer.Strict())
	}
	switch {
	case opts.verbose:
		lexOpts = append(lexOpts, lexer.WithLogger(logger))
	case cfg.Lexer.LogRecoveries:
		lexOpts = append(lexOpts, lexer.WithLogger(log.New(cmd.ErrOrStderr(), "spl: ", 0)))
	}

	start := time.Now()
	tokens, err := lexer.Tokenize(source, lexOpts...)
	if err != nil {
		return err
	}
	logger.Printf("scanned %d bytes into %d tokens in %v", len(source), tokens.Len(), time.Since(start))

	if cfg.Output.Tokens {
		dumpTokens(out, tokens, cfg.Output.Color)
	}

	start = time.Now()
	root, err := parser.ParseTokens(tokens)
	if err != nil {
		return err
	}
	logger.Printf("parsed %d top level items in %v", len(root.List()), time.Since(start))

	if cfg.Output.AST {
		switch cfg.Output.Style {
		case config.StyleSexpr:
			fmt.Fprintf(out, "%s\n", ast.Encode(root))
		default:
			ast.Fprint(out, root)
		}
	}

	return nil
}
