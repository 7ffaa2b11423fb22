// Package web serves the storefront and admin panel assets.
package web

import (
	"embed"
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path"
	"strings"
)

//go:embed static
var embedded embed.FS

const indexFile = "index.html"

// FS returns the asset tree: dir when set, otherwise the assets compiled into the binary.
func FS(dir string) (fs.FS, error) {
	if dir == "" {
		return fs.Sub(embedded, "static")
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, errors.New("static dir is not a directory: " + dir)
	}
	return os.DirFS(dir), nil
}

// Handler serves files from fsys. Paths that do not name a file get index.html so the
// single-page app can handle them.
func Handler(fsys fs.FS) http.Handler {
	files := http.FileServerFS(fsys)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")
		if name == "" {
			files.ServeHTTP(w, r)
			return
		}

		if info, err := fs.Stat(fsys, name); err == nil && !info.IsDir() {
			files.ServeHTTP(w, r)
			return
		}

		http.ServeFileFS(w, r, fsys, indexFile)
	})
}
