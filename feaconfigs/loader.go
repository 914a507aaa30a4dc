package feaconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/typesupply/feafofum/configs"
	"github.com/typesupply/feafofum/logs"
	"github.com/typesupply/feafofum/modes"
)

//go:embed schema.cue
var schema string

var configFileNames = []string{
	"feafofum.cue",
	".feafofum.cue",
}

// searchDirs lists config directories, highest precedence first.
func searchDirs() (dirs []string) {
	if dir, err := os.Getwd(); err == nil {
		dirs = append(dirs, dir)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}
	dirs = append(dirs, "/etc")
	return
}

func findConfigFiles(dirs []string) (paths []string) {
	for _, dir := range dirs {
		for _, name := range configFileNames {
			path := filepath.Join(dir, name)
			stat, err := os.Stat(path)
			if err != nil || stat.IsDir() {
				continue
			}
			paths = append(paths, path)
		}
	}
	return
}

func (Module) ConfigsLoader(
	logger logs.Logger,
	mode modes.Mode,
) configs.Loader {

	// tests must not pick up files from the machine
	if mode == modes.ModeDevelopment {
		return configs.NewLoader(nil, schema)
	}

	paths := findConfigFiles(searchDirs())
	if len(paths) > 0 {
		logger.Info("config files",
			"paths", paths,
		)
	}

	return configs.NewLoader(paths, schema)
}
