package template

import (
	"fmt"
	"os"

	"github.com/bmeg/vitelink/cmd/common"
	"github.com/bmeg/vitelink/integration/handlebars"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"
)

var dataPath string

// Cmd is the declaration of the command line
var Cmd = &cobra.Command{
	Use:   "template <file>",
	Short: "Render a handlebars template with the vite helpers",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		data := map[string]any{}
		if dataPath != "" {
			raw, err := os.ReadFile(dataPath)
			if err != nil {
				return err
			}
			if err := yaml.Unmarshal(raw, &data); err != nil {
				return fmt.Errorf("failed to parse data at path %s: \n%v", dataPath, err)
			}
		}

		v, err := common.Vite(cmd.Context())
		if err != nil {
			return err
		}
		out, err := handlebars.Render(string(source), data, v)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	flags := Cmd.Flags()
	flags.StringVarP(&dataPath, "data", "d", "", "YAML or JSON file used as the template context")
}
