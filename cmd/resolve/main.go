package resolve

import (
	"encoding/json"
	"fmt"

	"github.com/bmeg/vitelink/cmd/common"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"
)

var asJSON bool

// Cmd is the declaration of the command line
var Cmd = &cobra.Command{
	Use:   "resolve <entry>...",
	Short: "Print the scripts, styles and preloads an entry needs",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := common.Vite(cmd.Context())
		if err != nil {
			return err
		}
		assets, err := v.Resolve(args)
		if err != nil {
			return err
		}

		var out []byte
		if asJSON {
			out, err = json.MarshalIndent(assets, "", "  ")
			out = append(out, '\n')
		} else {
			out, err = yaml.Marshal(assets)
		}
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	flags := Cmd.Flags()
	flags.BoolVar(&asJSON, "json", false, "Output JSON instead of YAML")
}
