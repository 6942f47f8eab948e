// Package web provides the embedded browser assets served at /static/: the
// lead form, checkout, and sign-in glue scripts plus a small stylesheet.
package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var staticFS embed.FS

// Static returns the asset tree rooted at web/static.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
