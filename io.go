package plug

import (
	"io/fs"
	"os"
)

// Environ reads variables from a process environment.
type Environ interface {
	// LookupEnv returns the value of the named variable, and whether it is set.
	LookupEnv(name string) (string, bool)
}

// FileReader reads whole files, used by file parameters.
// A missing file must return an error matching fs.ErrNotExist.
type FileReader interface {
	ReadFile(name string) ([]byte, error)
}

// OSEnv is the real process environment.
type OSEnv struct{}

// LookupEnv implements Environ.
func (OSEnv) LookupEnv(name string) (string, bool) { return os.LookupEnv(name) }

// MapEnv is an in-memory environment, mostly useful to tests.
type MapEnv map[string]string

// LookupEnv implements Environ.
func (m MapEnv) LookupEnv(name string) (string, bool) {
	val, ok := m[name]

	return val, ok
}

// OSFiles reads files from the real filesystem.
type OSFiles struct{}

// ReadFile implements FileReader.
func (OSFiles) ReadFile(name string) ([]byte, error) { return os.ReadFile(name) }

// FSFiles adapts any fs.FS (an embed.FS, a fstest.MapFS...) to a FileReader.
type FSFiles struct {
	FS fs.FS
}

// ReadFile implements FileReader.
func (f FSFiles) ReadFile(name string) ([]byte, error) { return fs.ReadFile(f.FS, name) }
