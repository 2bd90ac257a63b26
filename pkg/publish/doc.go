// Package publish turns a directory of page documents into a static site.
//
// A Builder discovers every .yaml, .yml and .json document under the pages
// directory, decodes it with the markup package and renders it to
// <output>/<name>.html. Nested directories are kept, so pages/docs/intro.yaml
// becomes dist/docs/intro.html.
//
//	b := publish.NewBuilder(publish.BuilderConfig{
//	    PagesDir:  "pages",
//	    OutputDir: "dist",
//	    MaxDepth:  256,
//	})
//	result, err := b.Build(ctx)
//
// An S3Uploader then copies the output directory to a bucket:
//
//	client := publish.NewS3Client(publish.S3Options{Region: "eu-west-1"})
//	up := publish.NewS3Uploader(client, "my-site", "www/")
//	keys, err := up.UploadDir(ctx, "dist")
package publish
