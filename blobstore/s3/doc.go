// Package s3 implements blobstore.BlobStore on AWS S3. Uploads stream
// through the s3 transfer manager; a blob becomes visible only once the
// upload completes.
package s3
