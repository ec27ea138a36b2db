package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/tinyc/format"
	"github.com/dhamidi/tinyc/lexer"
	"github.com/dhamidi/tinyc/parser"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var parseFormat string

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a source file and print its parse tree",
		Long: `Parse a source file and print its parse tree.

If no file is provided, reads source from stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, filename, err := readSource(args)
			if err != nil {
				return err
			}

			tokens, err := lexer.Scan(source, filename)
			if err != nil {
				return fmt.Errorf("tokenize: %w", err)
			}

			tree, err := parser.Parse(tokens)
			if err != nil {
				return fmt.Errorf("parse: %w", err)
			}

			res := &format.Result{File: filename, Tokens: tokens, Tree: tree}
			switch parseFormat {
			case "text":
				return format.NewTreeEncoder(os.Stdout).Encode(res)
			case "json":
				if err := format.NewJSONEncoder(os.Stdout).Encode(res); err != nil {
					return err
				}
				fmt.Println()
				return nil
			default:
				return fmt.Errorf("unknown format: %s (expected text or json)", parseFormat)
			}
		},
	}

	cmd.Flags().StringVarP(&parseFormat, "format", "f", "text", "output format (text, json)")

	return cmd
}
