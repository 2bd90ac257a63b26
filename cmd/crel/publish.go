package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	crelerrors "github.com/crel-dev/crel/internal/errors"
	"github.com/crel-dev/crel/pkg/publish"
)

func publishCmd() *cobra.Command {
	var (
		bucket    string
		prefix    string
		region    string
		endpoint  string
		skipBuild bool
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Build the site and upload it to S3",
		Long: `Build every page and upload the output directory to an S3 bucket.

Credentials are read from AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY
and AWS_SESSION_TOKEN.

Examples:
  crel publish
  crel publish --bucket=my-site --prefix=www/ --region=eu-west-1
  crel publish --endpoint=http://localhost:9000 --skip-build`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig("", "")
			if err != nil {
				return err
			}
			p := &cfg.Publish
			if bucket != "" {
				p.Bucket = bucket
			}
			if prefix != "" {
				p.Prefix = prefix
			}
			if region != "" {
				p.Region = region
			}
			if endpoint != "" {
				p.Endpoint = endpoint
			}
			if p.Bucket == "" {
				return crelerrors.New("E031").
					WithDetail("no bucket configured").
					WithSuggestion("Set publish.bucket in crel.json or pass --bucket")
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			if !skipBuild {
				if _, err := runBuild(ctx, cfg, false); err != nil {
					return err
				}
			}

			client := publish.NewS3Client(publish.S3Options{
				Region:   p.Region,
				Endpoint: p.Endpoint,
			})
			uploader := publish.NewS3Uploader(client, p.Bucket, p.Prefix)

			info("Uploading %s to s3://%s/%s", cfg.OutputPath(), p.Bucket, p.Prefix)
			keys, err := uploader.UploadDir(ctx, cfg.OutputPath())
			if err != nil {
				return err
			}

			success("Published %d objects", len(keys))
			return nil
		},
	}

	cmd.Flags().StringVar(&bucket, "bucket", "", "Destination bucket (default from crel.json)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Object key prefix (default from crel.json)")
	cmd.Flags().StringVar(&region, "region", "", "AWS region (default from crel.json)")
	cmd.Flags().StringVar(&endpoint, "endpoint", "", "S3-compatible endpoint URL")
	cmd.Flags().BoolVar(&skipBuild, "skip-build", false, "Upload the existing output without building")

	return cmd
}
