package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openbiblio/authormail/source"
)

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List supported source formats",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range source.DefaultRegistry.List() {
			s, _ := source.Get(name)
			fmt.Printf("%-12s %s\n", name, s.Description())
		}
	},
}
