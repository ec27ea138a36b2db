package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/tinyc/format"
	"github.com/dhamidi/tinyc/lexer"
	"github.com/spf13/cobra"
)

func newLexCmd() *cobra.Command {
	var lexFormat string

	cmd := &cobra.Command{
		Use:   "lex [file]",
		Short: "Tokenize a source file and print the token stream",
		Long: `Tokenize a source file and print the token stream.

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

			res := &format.Result{File: filename, Tokens: tokens}
			switch lexFormat {
			case "table":
				return format.NewTableEncoder(os.Stdout).Encode(res)
			case "json":
				if err := format.NewJSONEncoder(os.Stdout).Encode(res); err != nil {
					return err
				}
				fmt.Println()
				return nil
			default:
				return fmt.Errorf("unknown format: %s (expected table or json)", lexFormat)
			}
		},
	}

	cmd.Flags().StringVarP(&lexFormat, "format", "f", "table", "output format (table, json)")

	return cmd
}
