package processor

import "path/filepath"

// Resolve joins filename onto baseDir. Nothing is validated here; a bad
// name surfaces as a Load error.
func Resolve(baseDir, filename string) string {
	return filepath.Join(baseDir, filename)
}
