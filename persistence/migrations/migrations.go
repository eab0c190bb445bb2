// SPDX-License-Identifier: GPL-3.0-or-later
package migrations

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed sql/*.sql
var files embed.FS

// Dir serves the embedded migrations with the sql files at the root.
func Dir() http.FileSystem {
	sub, err := fs.Sub(files, "sql")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
