package scanner

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Result is the outcome of one directory scan
type Result struct {
	Directory  string   `json:"directory"`
	Recursive  bool     `json:"recursive"`
	PhotoCount int      `json:"photo_count"`
	Photos     []string `json:"photos"`
}

// Scan enumerates photo files under root whose extension is in allowedExts.
// Matching is case-insensitive, so a file never appears twice even when the
// allow-list carries overlapping patterns. Paths come back lexicographically
// sorted. A missing or non-directory root is reported as an error with an
// empty Result, never a panic.
func Scan(root string, recursive bool, allowedExts []string) (Result, error) {
	result := Result{
		Directory: root,
		Recursive: recursive,
		Photos:    []string{},
	}

	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return result, fmt.Errorf("directory %s does not exist", root)
		}
		return result, fmt.Errorf("failed to stat directory %s: %w", root, err)
	}
	if !info.IsDir() {
		return result, fmt.Errorf("%s is not a directory", root)
	}

	extSet := make(map[string]bool, len(allowedExts))
	for _, ext := range allowedExts {
		extSet[strings.ToLower(ext)] = true
	}

	seen := map[string]bool{}

	if recursive {
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				// unreadable subdirectory; skip it rather than failing the scan
				log.Printf("scanner: skipping %s: %v", path, walkErr)
				if d != nil && d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if d.IsDir() {
				return nil
			}
			if extSet[strings.ToLower(filepath.Ext(path))] && !seen[path] {
				seen[path] = true
				result.Photos = append(result.Photos, path)
			}
			return nil
		})
		if err != nil {
			return Result{Directory: root, Recursive: recursive, Photos: []string{}}, fmt.Errorf("failed to walk directory %s: %w", root, err)
		}
	} else {
		entries, err := os.ReadDir(root)
		if err != nil {
			return result, fmt.Errorf("failed to read directory %s: %w", root, err)
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			path := filepath.Join(root, entry.Name())
			if extSet[strings.ToLower(filepath.Ext(path))] && !seen[path] {
				seen[path] = true
				result.Photos = append(result.Photos, path)
			}
		}
	}

	sort.Strings(result.Photos)
	result.PhotoCount = len(result.Photos)

	return result, nil
}
