package main

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/config"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	miniogo "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/hupe1980/wordlego/blobstore"
	minioblob "github.com/hupe1980/wordlego/blobstore/minio"
	s3blob "github.com/hupe1980/wordlego/blobstore/s3"
)

// openSnapshotStore resolves the --snapshot location to a blob store
// and a blob name within it. Supported forms:
//
//	/path/to/table.snap               local filesystem
//	s3://bucket/path/table.snap       AWS S3 (ambient credentials)
//	minio://endpoint/bucket/table.snap  MinIO (MINIO_ACCESS_KEY / MINIO_SECRET_KEY)
func openSnapshotStore(location string) (blobstore.BlobStore, string, error) {
	switch {
	case strings.HasPrefix(location, "s3://"):
		u, err := url.Parse(location)
		if err != nil {
			return nil, "", err
		}
		name := strings.TrimPrefix(u.Path, "/")
		if u.Host == "" || name == "" {
			return nil, "", fmt.Errorf("snapshot location %q needs s3://bucket/key", location)
		}
		cfg, err := config.LoadDefaultConfig(context.Background())
		if err != nil {
			return nil, "", err
		}
		return s3blob.NewStore(awss3.NewFromConfig(cfg), u.Host, ""), name, nil

	case strings.HasPrefix(location, "minio://"):
		u, err := url.Parse(location)
		if err != nil {
			return nil, "", err
		}
		bucket, name, ok := strings.Cut(strings.TrimPrefix(u.Path, "/"), "/")
		if u.Host == "" || !ok || name == "" {
			return nil, "", fmt.Errorf("snapshot location %q needs minio://endpoint/bucket/key", location)
		}
		client, err := miniogo.New(u.Host, &miniogo.Options{
			Creds:  credentials.NewEnvMinio(),
			Secure: u.Query().Get("insecure") != "true",
		})
		if err != nil {
			return nil, "", err
		}
		return minioblob.NewStore(client, bucket, ""), name, nil

	default:
		dir, name := filepath.Split(location)
		if dir == "" {
			dir = "."
		}
		return blobstore.NewLocalStore(dir), name, nil
	}
}
