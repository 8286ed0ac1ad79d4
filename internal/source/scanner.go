package source

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Discover returns the import files at path. A regular file is returned as
// is; a directory is walked for *.jsonl files, sorted by path.
func Discover(path string) ([]DiscoveredFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []DiscoveredFile{discovered(path)}, nil
	}

	var files []DiscoveredFile
	err = filepath.WalkDir(path, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return nil //nolint:nilerr // skip unreadable entries
		}
		if d.IsDir() || filepath.Ext(p) != ".jsonl" {
			return nil
		}
		files = append(files, discovered(p))
		return nil
	})
	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, err
}

func discovered(path string) DiscoveredFile {
	name := filepath.Base(path)
	return DiscoveredFile{
		Path: path,
		Plan: strings.TrimSuffix(name, filepath.Ext(name)),
	}
}
