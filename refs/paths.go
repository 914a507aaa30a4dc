package refs

import (
	"path/filepath"
	"strings"
)

const OutputSuffix = "-c"

// OutputPath inserts OutputSuffix before the final extension of path.
func OutputPath(path string) string {
	root, ext := splitExt(path)
	return root + OutputSuffix + ext
}

// splitExt splits at the last dot of the base name; leading dots of the base name do not start an extension.
func splitExt(path string) (root string, ext string) {
	sep := strings.LastIndexAny(path, `/\`)
	base := path[sep+1:]
	dot := strings.LastIndex(base, ".")
	if dot <= 0 || strings.Trim(base[:dot], ".") == "" {
		return path, ""
	}
	dot += sep + 1
	return path[:dot], path[dot:]
}

func joinPath(baseDir string, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(baseDir, path)
}
