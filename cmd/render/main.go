package render

import (
	"fmt"

	"github.com/bmeg/vitelink/cmd/common"
	"github.com/google/shlex"
	"github.com/spf13/cobra"
)

var entryList string

// Cmd is the declaration of the command line
var Cmd = &cobra.Command{
	Use:   "render [entry]...",
	Short: "Print the tags for a set of entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries := append([]string{}, args...)
		if entryList != "" {
			extra, err := shlex.Split(entryList)
			if err != nil {
				return fmt.Errorf("bad --entries value: %w", err)
			}
			entries = append(entries, extra...)
		}
		if len(entries) == 0 {
			return fmt.Errorf("no entries given")
		}

		v, err := common.Vite(cmd.Context())
		if err != nil {
			return err
		}
		out, err := v.ResolveAndRender(entries)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	flags := Cmd.Flags()
	flags.StringVar(&entryList, "entries", "", "Shell quoted list of entries, added after the positional ones")
}
