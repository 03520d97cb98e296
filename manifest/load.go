package manifest

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"

	"github.com/bmeg/vitelink/util"
	"github.com/minio/minio-go/v7"
)

// LoadFile reads and parses a manifest. The path is either a local file or
// an s3+http(s)://host/bucket/key URL.
func LoadFile(ctx context.Context, path string) (*Manifest, error) {
	if u := util.GetS3URL(path); u != nil {
		return loadS3(ctx, u)
	}

	path = util.AbsPath(path)
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest at path %s: %w", path, err)
	}
	m, err := Parse(source)
	if err != nil {
		return nil, fmt.Errorf("failed to parse manifest at path %s: %w", path, err)
	}
	return m, nil
}

func loadS3(ctx context.Context, u *url.URL) (*Manifest, error) {
	bucket, key, err := util.SplitS3Path(u)
	if err != nil {
		return nil, err
	}
	mc, err := util.GetS3Client(u)
	if err != nil {
		return nil, err
	}
	obj, err := mc.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest at %s: %w", u, err)
	}
	defer obj.Close()
	source, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest at %s: %w", u, err)
	}
	m, err := Parse(source)
	if err != nil {
		return nil, fmt.Errorf("failed to parse manifest at %s: %w", u, err)
	}
	return m, nil
}
