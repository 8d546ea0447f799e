package builtins

import (
	"os"
	"path/filepath"
)

// cd changes the working directory. A relative argument is joined
// against the current directory explicitly rather than left to Chdir's
// own resolution, matching the original shell's behavior of building
// the target path itself before calling chdir.
func cd(argv []string) error {
	if len(argv) > 2 {
		return ErrTooManyArgs
	}

	if len(argv) == 1 {
		home := os.Getenv("HOME")
		if home == "" {
			return ErrNoHomeDir
		}
		return os.Chdir(home)
	}

	target := argv[1]
	if !filepath.IsAbs(target) {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		target = filepath.Join(cwd, target)
	}

	return os.Chdir(target)
}
