package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/urfave/cli/v2"

	"landingkit/internal/siteconfig"
)

func initCommand(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		path = "site.yaml"
	}

	if !c.Bool("force") {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}

	doc := siteconfig.DefaultDocument()
	if c.Bool("example") {
		doc = siteconfig.ExampleDocument()
	}
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	fmt.Fprintf(c.App.Writer, "wrote %s\nedit it, then run: landingkit --site %s validate\n", path, path)
	return nil
}
