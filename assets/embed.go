// Package assets holds the files compiled into the server binary: the
// default word list and the SQL migrations for the solve history.
package assets

import (
	"bufio"
	"embed"
	"io/fs"
	"strings"
)

//go:embed common_words.txt sql/*.sql
var FS embed.FS

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToLower(s))
	}
	return out, sc.Err()
}

// CommonWords returns the embedded default word list.
func CommonWords() ([]string, error) {
	return readLines("common_words.txt")
}

// Migrations returns the embedded migration scripts rooted at "sql".
func Migrations() (fs.FS, error) {
	return fs.Sub(FS, "sql")
}
