// Command cmarkw renders document descriptions to CommonMark or HTML.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

type rootFlags struct {
	preset  string
	config  string
	strict  bool
	lenient bool
	gfm     bool
	verbose bool
}

func bindRootFlags(fs *pflag.FlagSet, f *rootFlags) {
	fs.StringVar(&f.preset, "preset", presetCommonMark, "Preset: commonmark|gfm|lenient|strict")
	fs.StringVarP(&f.config, "config", "c", "", "Options file (.toml, .yaml, .yml or .json)")
	fs.BoolVar(&f.strict, "strict", false, "Fail on the first structural violation")
	fs.BoolVar(&f.lenient, "lenient", false, "Recover from structural violations and report warnings")
	fs.BoolVar(&f.gfm, "gfm", false, "Enable every GitHub-flavored extension")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "Log diagnostics to stderr")
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return logger, nil
}

func newRootCmd() *cobra.Command {
	var flags rootFlags
	root := &cobra.Command{
		Use:   "cmarkw",
		Short: "Render document descriptions to CommonMark or HTML",
		Long: `cmarkw reads a JSON or YAML document description and writes it as
CommonMark (optionally with GitHub extensions) or as HTML.

Usage:
  cmarkw render doc.yaml --preset gfm
  cmarkw html doc.json
  cmarkw verify doc.yaml`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	bindRootFlags(root.PersistentFlags(), &flags)

	root.AddCommand(
		newRenderCmd(&flags),
		newHTMLCmd(&flags),
		newVerifyCmd(&flags),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
