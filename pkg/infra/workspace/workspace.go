package workspace

import (
	"os"
	"sort"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// ListDirectories returns names of direct child directories of root, excluding hidden ones.
// root is created when it does not exist.
func ListDirectories(root string) ([]string, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, goerr.Wrap(err, "failed to create sync root", goerr.V("root", root))
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read sync root", goerr.V("root", root))
	}

	names := []string{}
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	return names, nil
}

// IsDir returns true if path exists and is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
