// Package levels holds the ordered catalog of level descriptors.
//
// The built-in catalog is embedded in the binary and read once. A catalog can
// also be loaded from a directory of level*.txt files so custom level packs
// can replace the built-in set.
package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"sync"

	"chosenoffset.com/slidey/internal/world/tilemap"
)

//go:embed data/level*.txt
var builtinFS embed.FS

// FilePattern matches level files inside a level directory.
const FilePattern = "level*.txt"

var (
	// ErrOutOfRange is returned for level numbers outside [1, Count()].
	ErrOutOfRange = errors.New("level out of range")

	// ErrNoLevels is returned when a level source holds no level files.
	ErrNoLevels = errors.New("no levels found")
)

// Catalog is an immutable, ordered list of level descriptors. Level numbers
// are 1-based.
type Catalog struct {
	names       []string
	descriptors []string
}

// New creates a catalog from descriptors given in play order.
func New(descriptors ...string) *Catalog {
	c := &Catalog{
		names:       make([]string, len(descriptors)),
		descriptors: make([]string, len(descriptors)),
	}
	copy(c.descriptors, descriptors)
	for i := range descriptors {
		c.names[i] = fmt.Sprintf("level %d", i+1)
	}
	return c
}

var builtin = sync.OnceValue(func() *Catalog {
	sub, err := fs.Sub(builtinFS, "data")
	if err != nil {
		panic(fmt.Sprintf("embedded levels: %v", err))
	}
	c, err := LoadFS(sub)
	if err != nil {
		panic(fmt.Sprintf("embedded levels: %v", err))
	}
	return c
})

// Builtin returns the catalog compiled into the binary.
func Builtin() *Catalog {
	return builtin()
}

// LoadDir loads every level*.txt file in dir, ordered by file name.
func LoadDir(dir string) (*Catalog, error) {
	c, err := LoadFS(os.DirFS(dir))
	if err != nil {
		return nil, fmt.Errorf("failed to load levels from %s: %w", dir, err)
	}
	return c, nil
}

// LoadFS loads every level*.txt file at the root of fsys, ordered by file name.
func LoadFS(fsys fs.FS) (*Catalog, error) {
	names, err := fs.Glob(fsys, FilePattern)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, ErrNoLevels
	}
	sort.Strings(names)

	c := &Catalog{}
	for _, name := range names {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("failed to read level file %s: %w", name, err)
		}
		c.names = append(c.names, path.Base(name))
		c.descriptors = append(c.descriptors, string(data))
	}
	return c, nil
}

// Count returns the number of levels.
func (c *Catalog) Count() int {
	return len(c.descriptors)
}

// Descriptor returns the descriptor for a 1-based level number.
func (c *Catalog) Descriptor(level int) (string, error) {
	if level < 1 || level > len(c.descriptors) {
		return "", fmt.Errorf("%w: %d not in [1, %d]", ErrOutOfRange, level, len(c.descriptors))
	}
	return c.descriptors[level-1], nil
}

// Name returns the source name of a level (its file name for loaded catalogs).
func (c *Catalog) Name(level int) string {
	if level < 1 || level > len(c.names) {
		return ""
	}
	return c.names[level-1]
}

// Build parses a level into a tile map. Errors name the offending level.
func (c *Catalog) Build(level, width, height int) (*tilemap.TileMap, error) {
	desc, err := c.Descriptor(level)
	if err != nil {
		return nil, err
	}
	m, err := tilemap.Build(desc, width, height)
	if err != nil {
		return nil, fmt.Errorf("level %d (%s): %w", level, c.Name(level), err)
	}
	return m, nil
}

// Validate builds every level and reports all failures together.
func (c *Catalog) Validate(width, height int) error {
	var errs []error
	for level := 1; level <= c.Count(); level++ {
		if _, err := c.Build(level, width, height); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Open returns the levels in dir, or the built-in catalog when dir is empty.
func Open(dir string) (*Catalog, error) {
	if dir == "" {
		return Builtin(), nil
	}
	return LoadDir(dir)
}
