package scaffold

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"sync"
)

//go:embed scaffolds/cpp/*.tmpl
var scaffoldFS embed.FS

const templatesDir = "scaffolds/cpp"

// Placeholder names understood by the bundled templates.
const (
	KeyProject    = "project"
	KeyCurrentDir = "current_dir"
	KeyStd        = "stdc++"
	KeyCompiler   = "g++"
	KeyDebugger   = "gdb"
)

// Entry is one bundled template and the project-relative path it renders to.
type Entry struct {
	Path string
	Text string
}

type layoutEntry struct {
	path   string // output path, relative to the project root
	source string // template file under templatesDir
}

// layout fixes the output order. Template sources are stored without the
// leading dot because embed skips dot-directories.
var layout = []layoutEntry{
	{".vscode/c_cpp_properties.json", "c_cpp_properties.json.tmpl"},
	{".vscode/launch.json", "launch.json.tmpl"},
	{".vscode/settings.json", "settings.json.tmpl"},
	{".vscode/tasks.json", "tasks.json.tmpl"},
	{"makefile", "makefile.tmpl"},
}

var (
	bundleOnce sync.Once
	bundle     []Entry
	bundleErr  error
)

// Bundle returns the bundled templates in output order. The templates are
// read once; callers get their own copy of the slice.
func Bundle() ([]Entry, error) {
	bundleOnce.Do(func() {
		bundle, bundleErr = loadBundle(scaffoldFS, templatesDir, layout)
	})
	if bundleErr != nil {
		return nil, bundleErr
	}
	return slices.Clone(bundle), nil
}

func loadBundle(fsys fs.FS, dir string, entries []layoutEntry) ([]Entry, error) {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if err := checkRelative(e.path); err != nil {
			return nil, err
		}
		data, err := fs.ReadFile(fsys, path.Join(dir, e.source))
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", e.source, err)
		}
		out = append(out, Entry{Path: e.path, Text: string(data)})
	}
	return out, nil
}

// checkRelative rejects output paths that are absolute, unclean or escape the
// project root.
func checkRelative(p string) error {
	if p == "." || !fs.ValidPath(p) {
		return fmt.Errorf("template output path %q must stay inside the project root", p)
	}
	return nil
}
