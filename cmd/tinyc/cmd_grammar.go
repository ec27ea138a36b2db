package main

import (
	"fmt"
	"reflect"

	"github.com/dhamidi/tinyc/parser"
	"github.com/spf13/cobra"
)

func newGrammarCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "grammar",
		Short:         "Print and verify the language grammar",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Print(parser.Grammar)

			if err := parser.CheckGrammar(); err != nil {
				printErrors(err)
				return err
			}
			return nil
		},
	}
}

// ebnf.Parse and ebnf.Verify return an error list; print each entry on
// its own line.
func printErrors(err error) {
	v := reflect.ValueOf(err)
	if v.Kind() == reflect.Slice {
		for i := 0; i < v.Len(); i++ {
			fmt.Println(v.Index(i).Interface())
		}
	} else {
		fmt.Println(err)
	}
}
