package imageset

import (
	"io/ioutil"
	"path/filepath"
	"sort"
	"strings"

	"github.com/kiteco/imageset/errors"
)

// Record identifies one image discovered during listing: the path to the
// file, the textual class label, and the numeric class index.
type Record struct {
	Path         string
	Label        string
	NumericLabel int
}

// List walks the immediate subdirectories of root, treating each as one class
// of images. Class indices are assigned by the lexicographic order of the
// subdirectory names, starting at 0 and incrementing once per subdirectory
// even when a directory contains no matching files, so the mapping is stable
// for an unchanged tree. The class label is the part of the directory name
// after the first underscore ("007_ostrich" is labeled "ostrich"); names
// without an underscore are used whole. Only files ending in .jpg
// (case-insensitive) directly inside a class directory are listed; other
// extensions and nested directories are skipped.
func List(root string) ([]Record, error) {
	entries, err := ioutil.ReadDir(root)
	if err != nil {
		return nil, errors.Wrapf(err, "error listing %s", root)
	}

	var classes []string
	for _, entry := range entries {
		if entry.IsDir() {
			classes = append(classes, entry.Name())
		}
	}
	sort.Strings(classes)

	var records []Record
	for numeric, class := range classes {
		files, err := ioutil.ReadDir(filepath.Join(root, class))
		if err != nil {
			return nil, errors.Wrapf(err, "error listing class %s", class)
		}
		label := classLabel(class)
		for _, file := range files {
			if file.IsDir() || !strings.HasSuffix(strings.ToLower(file.Name()), ".jpg") {
				continue
			}
			records = append(records, Record{
				Path:         filepath.Join(root, class, file.Name()),
				Label:        label,
				NumericLabel: numeric,
			})
		}
	}
	return records, nil
}

// classLabel strips the "<id>_" prefix from a class directory name.
func classLabel(dir string) string {
	if i := strings.Index(dir, "_"); i >= 0 {
		return dir[i+1:]
	}
	return dir
}

// ClassCounts reports the number of listed records per textual label.
func ClassCounts(records []Record) map[string]int {
	counts := make(map[string]int)
	for _, r := range records {
		counts[r.Label]++
	}
	return counts
}
