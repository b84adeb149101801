package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/singlestore-labs/to-wit/ffi"
)

var listCmd = &cobra.Command{
	Use:   "list FILE",
	Short: "List the functions of a document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		s := ffi.NewSession()
		doc, err := parseFile(s, args[0])
		if err != nil {
			return err
		}
		defer s.DocumentDispose(doc)

		var count uint64
		if !s.FuncCount(doc, &count) {
			return sessionErr(s, "func count")
		}

		fmt.Println(titleStyle.Render(args[0]))
		for i := uint64(0); i < count; i++ {
			var fn *ffi.Function
			if !s.FuncByIndex(doc, i, &fn) {
				return sessionErr(s, "func by index")
			}
			var name string
			if !s.FuncName(fn, &name) {
				return sessionErr(s, "func name")
			}
			fmt.Printf("  %s\n", funcStyle.Render(name))
		}
		return nil
	},
}
