package script

import (
	"github.com/bmeg/vitelink/cmd/common"
	"github.com/bmeg/vitelink/integration/jsvm"
	"github.com/spf13/cobra"
)

// Cmd is the declaration of the command line
var Cmd = &cobra.Command{
	Use:   "script <file.js>",
	Short: "Run a javascript file with vite() available",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := common.Vite(cmd.Context())
		if err != nil {
			return err
		}
		return jsvm.RunFile(args[0], v, cmd.OutOrStdout())
	},
}
