// Package blobstore abstracts where the solver reads and writes its
// artifacts: vocabulary files, compatibility-table snapshots and result
// logs. Backends exist for the local filesystem, memory (tests), AWS S3
// (sub-package s3) and MinIO / S3-compatible object storage
// (sub-package minio).
package blobstore
