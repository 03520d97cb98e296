package assets_check

import (
	"fmt"
	"path"
	"sync"

	"github.com/bmeg/vitelink/cmd/common"
	"github.com/bmeg/vitelink/logger"
	"github.com/bmeg/vitelink/util"
	"github.com/minio/minio-go/v7"
	"github.com/spf13/cobra"
)

var nWorkers int = 4

type statResult struct {
	key  string
	size int64
	err  error
}

// Cmd is the declaration of the command line
var Cmd = &cobra.Command{
	Use:   "assets-check <s3+http(s)://host/bucket/prefix>",
	Short: "Check that every file in the manifest was uploaded",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if nWorkers < 1 {
			return fmt.Errorf("nworkers must be at least 1")
		}
		dstURL := util.GetS3URL(args[0])
		if dstURL == nil {
			return fmt.Errorf("not an s3+http(s) URL: %s", args[0])
		}
		bucketName, prefix, err := util.SplitS3Path(dstURL)
		if err != nil {
			return err
		}

		m, err := common.Manifest(cmd.Context())
		if err != nil {
			return err
		}
		mc, err := util.GetS3Client(dstURL)
		if err != nil {
			return err
		}
		files := m.Files()
		logger.Info("Checking assets", "bucket", bucketName, "prefix", prefix, "files", len(files))

		keys := make(chan string, nWorkers)
		go func() {
			for _, f := range files {
				keys <- path.Join(prefix, f)
			}
			close(keys)
		}()

		results := make(chan statResult, 10)
		wg := &sync.WaitGroup{}
		for i := 0; i < nWorkers; i++ {
			wg.Add(1)
			go func() {
				for key := range keys {
					stats, err := mc.StatObject(cmd.Context(), bucketName, key, minio.StatObjectOptions{})
					results <- statResult{key: key, size: stats.Size, err: err}
				}
				wg.Done()
			}()
		}
		go func() {
			wg.Wait()
			close(results)
		}()

		missing := 0
		for r := range results {
			if r.err != nil {
				missing++
				if minio.ToErrorResponse(r.err).Code == "NoSuchKey" {
					logger.AddSummaryError("File not found", "key", r.key)
				} else {
					logger.AddSummaryError("Stat failed", "key", r.key, "error", r.err)
				}
				continue
			}
			logger.Debug("Found", "key", r.key, "size", r.size)
		}
		logger.Close()

		if missing > 0 {
			return fmt.Errorf("%d of %d files missing", missing, len(files))
		}
		fmt.Fprintf(cmd.OutOrStdout(), "ok: %d files\n", len(files))
		return nil
	},
}

func init() {
	flags := Cmd.Flags()
	flags.IntVarP(&nWorkers, "nworkers", "n", nWorkers, "Number of workers")
}
