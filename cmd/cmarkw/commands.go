package main

import (
	"encoding/json"
	"fmt"

	"github.com/rgonek/cmark-writer/ast"
	"github.com/rgonek/cmark-writer/cmark"
	"github.com/rgonek/cmark-writer/htmlrender"
	"github.com/rgonek/cmark-writer/internal/docfile"
	"github.com/rgonek/cmark-writer/internal/verify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// session bundles what every subcommand needs.
type session struct {
	doc    ast.Node
	writer *cmark.Writer
	logger *zap.Logger
}

func openSession(flags *rootFlags, path string) (*session, error) {
	logger, err := newLogger(flags.verbose)
	if err != nil {
		return nil, err
	}
	opts, err := resolveOptions(*flags)
	if err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	opts.Logger = logger

	w, err := cmark.New(opts)
	if err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	doc, err := docfile.ReadFile(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("document loaded", zap.String("path", path), zap.Int("depth", ast.Depth(doc)))
	return &session{doc: doc, writer: w, logger: logger}, nil
}

// render writes the document as markdown and logs every warning.
func (s *session) render() (cmark.Result, error) {
	result, err := s.writer.Render(s.doc)
	if err != nil {
		return cmark.Result{}, fmt.Errorf("error rendering document: %w", err)
	}
	for _, w := range result.Warnings {
		s.logger.Warn(w.Message, zap.String("type", string(w.Type)), zap.String("node", w.NodeType))
	}
	return result, nil
}

func (s *session) close() {
	_ = s.logger.Sync()
}

func newRenderCmd(flags *rootFlags) *cobra.Command {
	var preview bool
	cmd := &cobra.Command{
		Use:   "render <doc-file>",
		Short: "Render a document as CommonMark",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(flags, args[0])
			if err != nil {
				return err
			}
			defer s.close()

			result, err := s.render()
			if err != nil {
				return err
			}
			if !preview {
				fmt.Fprint(cmd.OutOrStdout(), result.Markdown)
				return nil
			}
			html, err := verify.New(s.writer.Options().GFM.Enabled).Preview(result.Markdown)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), html)
			return nil
		},
	}
	cmd.Flags().BoolVar(&preview, "preview", false, "Print the rendered markdown as HTML")
	return cmd
}

func newHTMLCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "html <doc-file>",
		Short: "Render a document directly as HTML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(flags, args[0])
			if err != nil {
				return err
			}
			defer s.close()

			out, err := htmlrender.Render(s.doc, s.writer.Options().HTMLOptions())
			if err != nil {
				return fmt.Errorf("error rendering HTML: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

// verifyOutput is printed by the verify command.
type verifyOutput struct {
	Warnings []cmark.Warning `json:"warnings,omitempty"`
	Report   verify.Report   `json:"report"`
}

func newVerifyCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "verify <doc-file>",
		Short: "Render a document and report how a CommonMark parser reads it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(flags, args[0])
			if err != nil {
				return err
			}
			defer s.close()

			result, err := s.render()
			if err != nil {
				return err
			}
			out := verifyOutput{
				Warnings: result.Warnings,
				Report:   verify.New(s.writer.Options().GFM.Enabled).Check(result.Markdown),
			}
			pretty, err := json.MarshalIndent(out, "", "  ")
			if err != nil {
				return fmt.Errorf("error formatting report: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(pretty))
			return nil
		},
	}
}
