package viz

import (
	"fmt"

	"github.com/bmeg/vitelink/cmd/common"
	"github.com/spf13/cobra"
)

var dynamic bool

// Cmd is the declaration of the command line
var Cmd = &cobra.Command{
	Use:   "viz",
	Short: "Draw the manifest import graph",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := common.Manifest(cmd.Context())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "digraph manifest {\n")
		nameMap := map[string]string{}
		for _, k := range m.Keys() {
			nameMap[k] = fmt.Sprintf("%d", len(nameMap))
		}
		for _, k := range m.Keys() {
			c, _ := m.Lookup(k)
			shape := "box"
			if c.IsEntry {
				shape = "doubleoctagon"
			}
			fmt.Fprintf(out, "\t%s [label=%q shape=%s]\n", nameMap[k], k, shape)
		}
		for _, k := range m.Keys() {
			c, _ := m.Lookup(k)
			for _, i := range c.Imports {
				if d, ok := nameMap[i]; ok {
					fmt.Fprintf(out, "\t%s -> %s\n", nameMap[k], d)
				}
			}
			if dynamic {
				for _, i := range c.DynamicImports {
					if d, ok := nameMap[i]; ok {
						fmt.Fprintf(out, "\t%s -> %s [style=dashed]\n", nameMap[k], d)
					}
				}
			}
		}
		fmt.Fprintf(out, "}\n")
		return nil
	},
}

func init() {
	flags := Cmd.Flags()
	flags.BoolVar(&dynamic, "dynamic", false, "Include dynamic imports as dashed edges")
}
