package check

import (
	"fmt"

	"github.com/bmeg/vitelink/cmd/common"
	"github.com/bmeg/vitelink/logger"
	"github.com/spf13/cobra"
)

// Cmd is the declaration of the command line
var Cmd = &cobra.Command{
	Use:   "check",
	Short: "Check the manifest for imports of missing chunks",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := common.Manifest(cmd.Context())
		if err != nil {
			return err
		}
		logger.Info("Checking manifest", "chunks", m.Len(), "entries", len(m.Entries()))

		dangling := m.Check()
		for _, d := range dangling {
			logger.AddSummaryError("Dangling import", "from", d.From, "to", d.To)
		}
		logger.Close()

		if len(dangling) > 0 {
			return fmt.Errorf("%d dangling imports", len(dangling))
		}
		fmt.Fprintf(cmd.OutOrStdout(), "ok: %d chunks\n", m.Len())
		return nil
	},
}
