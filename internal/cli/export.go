package cli

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"landingkit/internal/export"
	"landingkit/internal/render"
	"landingkit/internal/storage"
	"landingkit/web"
)

func exportCommand(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	site, err := loadSite(cfg)
	if err != nil {
		return err
	}
	rn, err := render.New(site)
	if err != nil {
		return fmt.Errorf("initialize renderer: %w", err)
	}

	opts := export.Options{OutDir: c.String("out"), Static: web.Static()}
	var bucket *storage.Client
	if c.Bool("upload") {
		if !cfg.HasStorage() {
			return errors.New("--upload needs S3_BUCKET (and usually S3_ENDPOINT and keys)")
		}
		bucket, err = storage.New(c.Context, storage.Options{
			Endpoint:  cfg.S3Endpoint,
			Region:    cfg.S3Region,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			Bucket:    cfg.S3Bucket,
			PublicURL: cfg.S3PublicURL,
		})
		if err != nil {
			return err
		}
		opts.Upload = bucket
	}

	res, err := export.Export(c.Context, rn, site, opts)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "exported %d files to %s (%d changed)\n", len(res.Files), opts.OutDir, res.Written)
	if bucket != nil {
		fmt.Fprintf(c.App.Writer, "uploaded %d files, site at %s\n", res.Uploaded, bucket.FileURL("index.html"))
	}
	return nil
}
