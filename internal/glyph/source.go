package glyph

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strings"
)

// ErrFontNotFound is returned by a FontSource that has no font under the requested name.
var ErrFontNotFound = errors.New("font not found")

// FontSource returns raw font file bytes for a font identifier.
type FontSource interface {
	Load(name string) ([]byte, error)
}

// EmbeddedSource serves fonts compiled into the binary, keyed by identifier.
type EmbeddedSource map[string][]byte

func (s EmbeddedSource) Load(name string) ([]byte, error) {
	data, ok := s[name]
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, ErrFontNotFound)
	}
	return data, nil
}

// FSSource looks font files up by base name anywhere below the root of FS.
// Matching is case-insensitive so "arialbd.ttf" finds "ArialBD.TTF".
type FSSource struct {
	FS fs.FS

	index map[string]string
}

func NewFSSource(fsys fs.FS) *FSSource { return &FSSource{FS: fsys} }

func (s *FSSource) Load(name string) ([]byte, error) {
	if s.FS == nil {
		return nil, fmt.Errorf("%s: %w", name, ErrFontNotFound)
	}
	if data, err := fs.ReadFile(s.FS, name); err == nil {
		return data, nil
	}
	if s.index == nil {
		s.index = buildIndex(s.FS)
	}
	p, ok := s.index[strings.ToLower(path.Base(name))]
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, ErrFontNotFound)
	}
	data, err := fs.ReadFile(s.FS, p)
	if err != nil {
		return nil, fmt.Errorf("read font %s: %w", p, err)
	}
	return data, nil
}

// buildIndex maps lower-cased base names to their first path in lexical walk order.
func buildIndex(fsys fs.FS) map[string]string {
	index := map[string]string{}
	_ = fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subtrees are skipped, not fatal.
			if d != nil && d.IsDir() && p != "." {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		key := strings.ToLower(d.Name())
		if _, seen := index[key]; !seen {
			index[key] = p
		}
		return nil
	})
	return index
}

// DirSources returns one FSSource per existing directory in dirs.
func DirSources(dirs []string) []FontSource {
	var out []FontSource
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			continue
		}
		out = append(out, NewFSSource(os.DirFS(dir)))
	}
	return out
}

// SystemFontDirs lists the usual font directories for the running OS.
func SystemFontDirs() []string {
	home, _ := os.UserHomeDir()
	switch runtime.GOOS {
	case "windows":
		dirs := []string{filepath.Join(os.Getenv("WINDIR"), "Fonts")}
		if local := os.Getenv("LOCALAPPDATA"); local != "" {
			dirs = append(dirs, filepath.Join(local, "Microsoft", "Windows", "Fonts"))
		}
		return dirs
	case "darwin":
		dirs := []string{"/System/Library/Fonts", "/Library/Fonts"}
		if home != "" {
			dirs = append(dirs, filepath.Join(home, "Library", "Fonts"))
		}
		return dirs
	default:
		dirs := []string{"/usr/share/fonts", "/usr/local/share/fonts"}
		if home != "" {
			dirs = append(dirs, filepath.Join(home, ".local", "share", "fonts"), filepath.Join(home, ".fonts"))
		}
		return dirs
	}
}
