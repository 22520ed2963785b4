package zone

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Directories searched for the host zone database, in order.
var zoneDirs = []string{
	"/usr/share/zoneinfo/",
	"/usr/share/lib/zoneinfo/",
	"/usr/lib/locale/TZ/",
	"/etc/zoneinfo/",
}

// Info describes one available zone.
type Info struct {
	ID     string
	Offset time.Duration
}

// Available lists the zone identifiers in the host zone database with their
// UTC offset at the instant now. $ZONEINFO, when set to a directory, is
// searched first.
func Available(now time.Time) ([]Info, error) {
	dirs := zoneDirs
	if env := os.Getenv("ZONEINFO"); env != "" {
		dirs = append([]string{env}, dirs...)
	}

	var lastErr error
	for _, dir := range dirs {
		ids, err := listDir(dir)
		if err != nil {
			lastErr = err
			continue
		}
		if len(ids) == 0 {
			continue
		}
		infos := make([]Info, 0, len(ids)+1)
		infos = append(infos, Info{ID: "UTC"})
		for _, id := range ids {
			if id == "UTC" {
				continue
			}
			loc, err := time.LoadLocation(id)
			if err != nil {
				continue
			}
			_, offset := now.In(loc).Zone()
			infos = append(infos, Info{ID: id, Offset: time.Duration(offset) * time.Second})
		}
		return infos, nil
	}
	return []Info{{ID: "UTC"}}, lastErr
}

func listDir(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, nil
	}

	var ids []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil || rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)
		if d.IsDir() {
			if rel == "posix" || rel == "right" {
				return filepath.SkipDir
			}
			return nil
		}
		if !isZoneName(rel) {
			return nil
		}
		ids = append(ids, rel)
		return nil
	})
	sort.Strings(ids)
	return ids, err
}

// isZoneName filters out the database's metadata files.
func isZoneName(rel string) bool {
	if strings.Contains(rel, ".") {
		return false
	}
	switch rel {
	case "posixrules", "Factory":
		return false
	}
	first := rel[0]
	return first >= 'A' && first <= 'Z'
}
