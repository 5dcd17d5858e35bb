package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fagongzi/log"
	"github.com/spf13/cobra"

	"github.com/benbjohnson/scss/grammar"
	"github.com/benbjohnson/scss/match"
	"github.com/benbjohnson/scss/scanner"
	"github.com/benbjohnson/scss/token"
)

var logger = log.NewLoggerWithPrefix("[scsslex]")

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// options holds the flags shared by every subcommand.
type options struct {
	file          string
	expr          string
	terminators   string
	foldImportant bool
	debug         bool
}

// newGrammar builds a grammar from the command line configuration.
func (o *options) newGrammar() (*grammar.Grammar, error) {
	return grammar.New(grammar.Config{
		Terminators:   o.terminators,
		FoldImportant: o.foldImportant,
	})
}

// input returns the source text from --expr, stdin ("-") or a file.
func (o *options) input(stdin io.Reader) ([]byte, error) {
	switch {
	case o.expr != "":
		return []byte(o.expr), nil
	case o.file == "-":
		return io.ReadAll(stdin)
	case o.file == "":
		return nil, errors.New("no input: use --file or --expr")
	}

	src, err := os.ReadFile(o.file)
	if err != nil {
		return nil, fmt.Errorf("error reading file %s: %w", o.file, err)
	}
	if o.debug {
		logger.Infof("read %d bytes from %s", len(src), o.file)
	}
	return src, nil
}

func newRootCommand() *cobra.Command {
	var opt options
	def := grammar.DefaultConfig()

	rootCmd := &cobra.Command{
		Use:           "scsslex",
		Short:         "Inspect the lexical grammar of CSS and SCSS source",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&opt.file, "file", "f", "", "Path to the source file (- for stdin)")
	rootCmd.PersistentFlags().StringVarP(&opt.expr, "expr", "e", "", "Source text given on the command line")
	rootCmd.PersistentFlags().StringVar(&opt.terminators, "terminators", def.Terminators, "Bytes that may end a static value")
	rootCmd.PersistentFlags().BoolVar(&opt.foldImportant, "fold-important", def.FoldImportant, "Match !important ignoring case")
	rootCmd.PersistentFlags().BoolVar(&opt.debug, "debug", false, "Enable debug output")

	rootCmd.AddCommand(newRulesCommand(&opt), newMatchCommand(&opt), newScanCommand(&opt))
	return rootCmd
}

func newRulesCommand(opt *options) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the grammar rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := opt.newGrammar()
			if err != nil {
				return err
			}
			for _, name := range g.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func newMatchCommand(opt *options) *cobra.Command {
	return &cobra.Command{
		Use:   "match RULE",
		Short: "Match one rule at the start of the input",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := opt.newGrammar()
			if err != nil {
				return err
			}
			src, err := opt.input(cmd.InOrStdin())
			if err != nil {
				return err
			}

			end, err := g.Match(args[0], src)
			var merr *match.Error
			if errors.As(err, &merr) {
				if opt.debug {
					logger.Errorf("rule %s failed, furthest offset %d of %d", args[0], merr.Furthest, len(src))
				}
				return fmt.Errorf("%s: %w", args[0], err)
			} else if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\t%q\n", args[0], end, src[:end])
			return nil
		},
	}
}

func newScanCommand(opt *options) *cobra.Command {
	return &cobra.Command{
		Use:   "scan",
		Short: "Print the token stream of the input",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := opt.newGrammar()
			if err != nil {
				return err
			}
			src, err := opt.input(cmd.InOrStdin())
			if err != nil {
				return err
			}

			s := scanner.NewWithGrammar(g, src)
			var n int
			for tok := s.Scan(); tok.Kind != token.EOF; tok = s.Scan() {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%q\n", tok.Pos, tok.Kind, tok.Value)
				n++
			}
			if opt.debug {
				logger.Infof("scanned %d tokens", n)
			}
			return nil
		},
	}
}
