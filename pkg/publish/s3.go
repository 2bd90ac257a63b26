package publish

import (
	"bytes"
	"context"
	"io/fs"
	"log/slog"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.opentelemetry.io/otel/attribute"

	crelerrors "github.com/crel-dev/crel/internal/errors"
	"github.com/crel-dev/crel/pkg/middleware"
)

// ErrPublish is the sentinel for a failed upload.
var ErrPublish = crelerrors.New("E040")

// HTMLContentType is the content type of uploaded pages.
const HTMLContentType = "text/html; charset=utf-8"

// PutObjectAPI is the part of the S3 client the uploader needs.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Options configures NewS3Client.
type S3Options struct {
	// Region is the bucket's AWS region.
	Region string

	// Endpoint overrides the S3 endpoint; path-style addressing is used
	// when set, as S3-compatible stores expect.
	Endpoint string
}

// NewS3Client creates an S3 client that reads credentials from the
// standard AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY and AWS_SESSION_TOKEN
// environment variables.
func NewS3Client(opts S3Options) *s3.Client {
	o := s3.Options{
		Region:      opts.Region,
		Credentials: aws.NewCredentialsCache(aws.CredentialsProviderFunc(envCredentials)),
	}
	if opts.Endpoint != "" {
		o.BaseEndpoint = aws.String(opts.Endpoint)
		o.UsePathStyle = true
	}
	return s3.New(o)
}

func envCredentials(context.Context) (aws.Credentials, error) {
	id := os.Getenv("AWS_ACCESS_KEY_ID")
	secret := os.Getenv("AWS_SECRET_ACCESS_KEY")
	if id == "" || secret == "" {
		return aws.Credentials{}, crelerrors.New(ErrPublish.Code).
			WithDetail("AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY must be set")
	}
	return aws.Credentials{
		AccessKeyID:     id,
		SecretAccessKey: secret,
		SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
		Source:          "crel-environment",
	}, nil
}

// S3Uploader uploads built pages to a bucket.
type S3Uploader struct {
	client PutObjectAPI
	bucket string
	prefix string
	logger *slog.Logger
}

// NewS3Uploader creates a new uploader writing under prefix in bucket.
func NewS3Uploader(client PutObjectAPI, bucket, prefix string) *S3Uploader {
	return &S3Uploader{
		client: client,
		bucket: bucket,
		prefix: prefix,
		logger: slog.Default(),
	}
}

// WithLogger sets the logger for upload progress.
func (u *S3Uploader) WithLogger(logger *slog.Logger) *S3Uploader {
	u.logger = logger
	return u
}

// Key returns the object key for a path relative to the output dir. The
// prefix is a key segment: "www" and "www/" both yield "www/<rel>".
func (u *S3Uploader) Key(rel string) string {
	return path.Join(u.prefix, filepath.ToSlash(rel))
}

// Upload stores body under the key for rel.
func (u *S3Uploader) Upload(ctx context.Context, rel string, body []byte) error {
	key := u.Key(rel)
	ctx, span := middleware.StartSpan(ctx, "crel.publish",
		attribute.String("crel.bucket", u.bucket),
		attribute.String("crel.key", key))

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType(rel)),
	})
	if err != nil {
		err = crelerrors.New(ErrPublish.Code).WithPath("s3://" + u.bucket + "/" + key).Wrap(err)
	}
	middleware.RecordPublish(err)
	middleware.EndSpan(span, err)
	return err
}

// UploadDir uploads every file under dir and returns the keys written.
// It stops at the first failure.
func (u *S3Uploader) UploadDir(ctx context.Context, dir string) ([]string, error) {
	var keys []string
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return crelerrors.New(ErrPublish.Code).WithPath(p).Wrap(err)
		}
		if d.IsDir() {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		body, err := os.ReadFile(p)
		if err != nil {
			return crelerrors.New(ErrPublish.Code).WithPath(p).Wrap(err)
		}
		if err := u.Upload(ctx, rel, body); err != nil {
			return err
		}
		key := u.Key(rel)
		u.logger.Info("uploaded", "key", key, "bytes", len(body))
		keys = append(keys, key)
		return nil
	})
	return keys, err
}

func contentType(name string) string {
	ext := strings.ToLower(path.Ext(filepath.ToSlash(name)))
	if ext == ".html" || ext == ".htm" {
		return HTMLContentType
	}
	if t := mime.TypeByExtension(ext); t != "" {
		return t
	}
	return "application/octet-stream"
}
