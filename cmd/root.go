package cmd

import (
	"os"

	"github.com/bmeg/vitelink/cmd/assets_check"
	"github.com/bmeg/vitelink/cmd/check"
	"github.com/bmeg/vitelink/cmd/common"
	"github.com/bmeg/vitelink/cmd/render"
	"github.com/bmeg/vitelink/cmd/resolve"
	"github.com/bmeg/vitelink/cmd/script"
	"github.com/bmeg/vitelink/cmd/template"
	"github.com/bmeg/vitelink/cmd/viz"
	"github.com/bmeg/vitelink/logger"

	"github.com/spf13/cobra"
)

// RootCmd represents the root command
var RootCmd = &cobra.Command{
	Use:           "vitelink",
	Short:         "Resolve Vite entry points into HTML tags",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(common.Verbose, common.JSONLog)
	},
}

func init() {
	flags := RootCmd.PersistentFlags()
	flags.StringVarP(&common.ConfigFile, "config", "c", "", "Config file (YAML or JSON)")
	flags.StringVar(&common.Mode, "mode", "", "development or production (default guessed from LOCO_ENV/RAILS_ENV/NODE_ENV)")
	flags.StringVar(&common.Host, "host", "", "Dev server origin")
	flags.StringVarP(&common.ManifestPath, "manifest", "m", "", "Path or s3+http(s) URL of the build manifest")
	flags.BoolVarP(&common.Verbose, "verbose", "v", false, "Debug logging")
	flags.BoolVar(&common.JSONLog, "json-log", false, "Log in JSON format")

	RootCmd.AddCommand(render.Cmd)
	RootCmd.AddCommand(resolve.Cmd)
	RootCmd.AddCommand(check.Cmd)
	RootCmd.AddCommand(viz.Cmd)
	RootCmd.AddCommand(template.Cmd)
	RootCmd.AddCommand(script.Cmd)
	RootCmd.AddCommand(assets_check.Cmd)
	RootCmd.AddCommand(genBashCompletionCmd)
}

var genBashCompletionCmd = &cobra.Command{
	Use:   "bash",
	Short: "Generate bash completions file",
	Run: func(cmd *cobra.Command, args []string) {
		RootCmd.GenBashCompletion(os.Stdout)
	},
}
