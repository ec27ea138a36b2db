package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "tinyc",
		Short: "Lexer and parser tools for a tiny C-like language",
	}

	rootCmd.AddCommand(newLexCmd())
	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newGrammarCmd())
	rootCmd.AddCommand(newLSPCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// readSource returns the contents and name of the file named in args,
// or stdin when no file was given.
func readSource(args []string) ([]byte, string, error) {
	if len(args) == 0 {
		source, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, "", fmt.Errorf("read stdin: %w", err)
		}
		return source, "", nil
	}

	filename := args[0]
	source, err := os.ReadFile(filename)
	if err != nil {
		return nil, "", fmt.Errorf("read file: %w", err)
	}
	return source, filename, nil
}
