package cli

import (
	"os"
	"path/filepath"

	"github.com/toyz/slashgen/internal/generator"
	"github.com/toyz/slashgen/internal/utils"
)

// clean removes every generated file under the expanded directories.
func (r *Runner) clean(dirs []string) error {
	removed := 0
	for _, dir := range dirs {
		path := filepath.Join(dir, generator.GeneratedFileName)
		err := os.Remove(path)
		switch {
		case err == nil:
			r.diag.Info("removed %s", path)
			removed++
		case os.IsNotExist(err):
		default:
			return utils.WrapProcessError(path, err)
		}
	}
	if removed == 0 {
		r.diag.Info("nothing to clean")
	} else {
		r.diag.Success("removed %d generated files", removed)
	}
	return nil
}
