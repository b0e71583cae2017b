// Package migrations holds the parts of schema bootstrapping shared by the
// SQL stores.
package migrations

import (
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

// UpFiles lists the .up.sql files of dir in apply order.
func UpFiles(fsys fs.FS, dir string) ([]string, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("migrations: read embedded migrations: %w", err)
	}

	filenames := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".up.sql") {
			continue
		}
		filenames = append(filenames, entry.Name())
	}

	sort.Strings(filenames)

	return filenames, nil
}

// Version is the file name up to the first underscore, e.g. "0001".
func Version(filename string) string {
	name := strings.TrimSuffix(filename, ".up.sql")
	if idx := strings.Index(name, "_"); idx > 0 {
		return name[:idx]
	}

	return name
}

// SplitStatements cuts a script on semicolons that end a line, skipping
// comment-only lines.
func SplitStatements(script string) []string {
	var (
		statements []string
		current    strings.Builder
	)

	for _, line := range strings.Split(script, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "--") {
			continue
		}

		current.WriteString(line)
		current.WriteString("\n")

		if strings.HasSuffix(trimmed, ";") {
			if stmt := strings.TrimSpace(current.String()); stmt != "" {
				statements = append(statements, strings.TrimSuffix(stmt, ";"))
			}
			current.Reset()
		}
	}

	if stmt := strings.TrimSpace(current.String()); stmt != "" {
		statements = append(statements, stmt)
	}

	return statements
}
