package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/vango-dev/pagelayout/internal/publish"
)

// newS3Client is replaced in tests.
var newS3Client = func(ctx context.Context, region string) (publish.ObjectPutter, error) {
	return publish.NewS3Client(ctx, region)
}

func publishCmd(load configLoader) *cobra.Command {
	var (
		bucket string
		prefix string
		region string
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Render the page and upload it to S3",
		Long: `Render the page and upload it to an S3 bucket.

Credentials come from the standard AWS chain (environment, shared
config, instance role).

Examples:
  pagelayout publish --bucket my-site
  pagelayout publish --bucket my-site --prefix preview/ --region eu-west-1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}

			if bucket != "" {
				cfg.Publish.Bucket = bucket
			}
			if cmd.Flags().Changed("prefix") {
				cfg.Publish.Prefix = prefix
			}
			if region != "" {
				cfg.Publish.Region = region
			}
			logger := newLogger(cfg)

			ctx := cmd.Context()

			html, err := renderPage(ctx, cfg, logger)
			if err != nil {
				return err
			}

			client, err := newS3Client(ctx, cfg.Publish.Region)
			if err != nil {
				return err
			}
			publisher, err := publish.New(client, cfg.Publish.Bucket,
				publish.WithPrefix(cfg.Publish.Prefix),
				publish.WithLogger(logger),
			)
			if err != nil {
				return err
			}

			res, err := publisher.Publish(ctx, cfg.Publish.Object, html)
			if err != nil {
				return err
			}
			success(cmd.OutOrStdout(), "Published s3://%s/%s (%d bytes)", res.Bucket, res.Key, res.Size)
			return nil
		},
	}

	cmd.Flags().StringVarP(&bucket, "bucket", "b", "", "Target S3 bucket (default from pagelayout.json)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Key prefix for the uploaded object")
	cmd.Flags().StringVarP(&region, "region", "r", "", "AWS region (default from the AWS config chain)")

	return cmd
}
