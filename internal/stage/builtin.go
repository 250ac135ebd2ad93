package stage

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed stages/*.stg
var builtinFS embed.FS

const ext = ".stg"

// BuiltinNames returns the names of the embedded stages, sorted.
func BuiltinNames() []string {
	entries, err := fs.ReadDir(builtinFS, "stages")
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ext))
	}
	sort.Strings(names)
	return names
}

// Builtin parses an embedded stage by name.
func Builtin(name string, rows, cols int) (*Grid, error) {
	f, err := builtinFS.Open(path.Join("stages", name+ext))
	if err != nil {
		return nil, fmt.Errorf("stage: unknown built-in stage %q", name)
	}
	defer f.Close()

	grid, err := Parse(f, rows, cols)
	if err != nil {
		return nil, fmt.Errorf("built-in %s: %w", name, err)
	}
	return grid, nil
}

// Resolve loads file when it is set and the built-in stage name otherwise.
func Resolve(name, file string, rows, cols int) (*Grid, error) {
	if file != "" {
		return Load(file, rows, cols)
	}
	return Builtin(name, rows, cols)
}
