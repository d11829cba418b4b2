package stockview

import (
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/stockview/chart"
)

// tempMarker is part of the name of every temporary file the app creates.
const tempMarker = "stockview"

// CreateTempCSV writes s to a new temporary CSV file in dir (os.TempDir()
// when empty) and returns its path. The file is not removed automatically,
// see RemoveTempFiles.
func CreateTempCSV(dir string, s chart.Series) (string, error) {
	f, err := os.CreateTemp(dir, tempMarker+"-*.csv")
	if err != nil {
		return "", err
	}
	if err := EncodeCSV(f, s); err != nil {
		f.Close()
		return "", err
	}
	return f.Name(), f.Close()
}

// RemoveTempFiles deletes every file below dir (os.TempDir() when empty)
// whose name contains "stockview", case insensitive, and returns how many
// were removed. Unreadable directories are skipped.
func RemoveTempFiles(dir string) (int, error) {
	if dir == "" {
		dir = os.TempDir()
	}
	if _, err := os.Stat(dir); err != nil {
		return 0, err
	}
	count := 0
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() && path != dir {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || !strings.Contains(strings.ToLower(d.Name()), tempMarker) {
			return nil
		}
		if err := os.Remove(path); err != nil {
			log.Printf("cannot remove %q (ignored): %v", path, err)
			return nil
		}
		count++
		return nil
	})
	log.Printf("temporary files: %d removed from %s", count, dir)
	return count, err
}
