// Package fsutil lists files by name pattern and derives directory sets from paths.
package fsutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"facette.io/natsort"
)

// DefaultMask matches text files.
const DefaultMask = `.*\.txt$`

// ErrBadMask is returned when a mask is not a valid regular expression.
var ErrBadMask = errors.New("fsutil: invalid mask")

// Exists reports whether name can be stat'ed.
func Exists(name string) bool {
	_, err := os.Stat(name)

	return err == nil
}

// ListFiles returns the paths of regular files directly inside root whose base
// name matches mask, in natural order ("file2" before "file10").
func ListFiles(root, mask string) ([]string, error) {
	re, err := compileMask(mask)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}

	var out []string

	for _, e := range entries {
		if e.Type().IsRegular() && re.MatchString(e.Name()) {
			out = append(out, filepath.Join(root, e.Name()))
		}
	}

	natsort.Sort(out)

	return out, nil
}

// ListFilesRecursive is ListFiles over root and every directory below it.
func ListFilesRecursive(root, mask string) ([]string, error) {
	re, err := compileMask(mask)
	if err != nil {
		return nil, err
	}

	var out []string

	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.Type().IsRegular() && re.MatchString(d.Name()) {
			out = append(out, p)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	natsort.Sort(out)

	return out, nil
}

func compileMask(mask string) (*regexp.Regexp, error) {
	if mask == "" {
		mask = DefaultMask
	}

	re, err := regexp.Compile(mask)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadMask, err)
	}

	return re, nil
}

// NonEmptyDirs takes slash-separated paths of existing entries and returns
// every directory that must therefore be non-empty: each proper ancestor of
// each path. The result is deduplicated and in lexicographic order.
// The root "/" of an absolute path is not reported.
func NonEmptyDirs(paths []string) []string {
	seen := make(map[string]struct{})

	for _, p := range paths {
		p = path.Clean(strings.TrimSpace(p))

		for dir := path.Dir(p); dir != "." && dir != "/"; dir = path.Dir(dir) {
			seen[dir] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for dir := range seen {
		out = append(out, dir)
	}

	slices.Sort(out)

	return out
}
