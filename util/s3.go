package util

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// GetS3Client builds a client for the host of an s3+http(s) URL. Credentials
// come from AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY.
func GetS3Client(u *url.URL) (*minio.Client, error) {

	useSSL := false
	if u.Scheme == "s3+https" {
		useSSL = true
	}

	accessKeyID := os.Getenv("AWS_ACCESS_KEY_ID")
	if accessKeyID == "" {
		return nil, fmt.Errorf("AWS_ACCESS_KEY_ID not set")
	}
	secretAccessKey := os.Getenv("AWS_SECRET_ACCESS_KEY")
	if secretAccessKey == "" {
		return nil, fmt.Errorf("AWS_SECRET_ACCESS_KEY not set")
	}

	mc, err := minio.New(u.Host, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKeyID, secretAccessKey, os.Getenv("AWS_SESSION_TOKEN")),
		Secure: useSSL,
		Region: os.Getenv("AWS_REGION"),
	})
	return mc, err
}

// GetS3URL returns the parsed URL when path uses the s3+http or s3+https
// scheme, and nil for anything else.
func GetS3URL(path string) *url.URL {
	if strings.HasPrefix(path, "s3+http://") || strings.HasPrefix(path, "s3+https://") {
		u, err := url.Parse(path)
		if err != nil {
			return nil
		}
		return u
	}
	return nil
}

// SplitS3Path splits the URL path into bucket name and object key (or key prefix).
func SplitS3Path(u *url.URL) (string, string, error) {
	tmp := strings.SplitN(u.Path, "/", 3)
	if len(tmp) < 2 || tmp[1] == "" {
		return "", "", fmt.Errorf("no bucket in %s", u.String())
	}
	key := ""
	if len(tmp) > 2 {
		key = tmp[2]
	}
	return tmp[1], key, nil
}
