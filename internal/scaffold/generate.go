package scaffold

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/xcpp-labs/xcpp/internal/logging"
	"github.com/xcpp-labs/xcpp/internal/placeholder"
	"github.com/xcpp-labs/xcpp/internal/resolve"
	"github.com/xcpp-labs/xcpp/internal/vcs"
)

// Options configures a single project generation.
type Options struct {
	Name          string // project name, also the directory name
	Dir           string // parent directory; empty means the working directory
	Std           string // resolved language standard, e.g. "c++17"
	ToolchainPath string // directory holding g++.exe and gdb.exe

	Initializer vcs.Initializer    // nil means vcs.Git{}
	Log         logrus.FieldLogger // nil discards
}

// Result holds the outcome of a generation.
type Result struct {
	Root     string   // absolute project root, forward slashes
	Files    []string // created files, relative to Root, in creation order
	Warnings []string
}

// NormalizePath rewrites backslashes as forward slashes.
func NormalizePath(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}

// Bindings returns the placeholder values for a project rooted at root.
func Bindings(name, root, std, toolchainPath string) map[string]string {
	return map[string]string{
		KeyProject:    name,
		KeyCurrentDir: NormalizePath(root),
		KeyStd:        std,
		KeyCompiler:   NormalizePath(filepath.Join(toolchainPath, CompilerExe)),
		KeyDebugger:   NormalizePath(filepath.Join(toolchainPath, DebuggerExe)),
	}
}

// Generate creates the project directory and all of its files. The toolchain
// and destination checks run before anything is written; after that the
// first filesystem error aborts and returns an *IOError without cleanup.
// A failing repository initializer only adds a warning.
func Generate(ctx context.Context, opts Options) (*Result, error) {
	if opts.Name == "" {
		return nil, errors.New("project name is required")
	}
	var log logrus.FieldLogger = logging.Discard()
	if opts.Log != nil {
		log = opts.Log
	}
	initializer := opts.Initializer
	if initializer == nil {
		initializer = vcs.Git{}
	}

	entries, err := Bundle()
	if err != nil {
		return nil, err
	}

	root := filepath.Join(opts.Dir, opts.Name)
	if err := resolve.CheckToolchain(opts.ToolchainPath); err != nil {
		return nil, err
	}
	if err := resolve.CheckDestination(root); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, &IOError{Op: "creating", Path: root, Err: err}
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", root, err)
	}

	result := &Result{Root: NormalizePath(abs)}
	bindings := Bindings(opts.Name, abs, opts.Std, opts.ToolchainPath)
	log.WithFields(logrus.Fields{
		"root": result.Root,
		"std":  bindings[KeyStd],
		"g++":  bindings[KeyCompiler],
		"gdb":  bindings[KeyDebugger],
	}).Info("generating project")

	for _, entry := range entries {
		if missing := placeholder.Missing(entry.Text, bindings); len(missing) > 0 {
			log.WithField("file", entry.Path).Debugf("leaving unknown placeholders: %s", strings.Join(missing, ", "))
		}
		content := placeholder.Render(entry.Text, bindings)
		if err := writeFile(abs, entry.Path, []byte(content)); err != nil {
			return result, err
		}
		result.Files = append(result.Files, entry.Path)
		log.WithField("file", entry.Path).Info("wrote template")
	}

	for _, name := range []string{InputFile, OutputFile} {
		if err := writeFile(abs, name, nil); err != nil {
			return result, err
		}
		result.Files = append(result.Files, name)
	}

	target := filepath.Join(abs, TargetDir)
	if err := os.MkdirAll(target, 0o755); err != nil {
		return result, &IOError{Op: "creating", Path: target, Err: err}
	}

	fixed := []struct {
		name    string
		content string
	}{
		{GitignoreFile, gitignoreContent()},
		{MainFile, mainSource},
	}
	for _, f := range fixed {
		if err := writeFile(abs, f.name, []byte(f.content)); err != nil {
			return result, err
		}
		result.Files = append(result.Files, f.name)
	}

	out, err := initializer.Init(ctx, abs)
	if err != nil {
		msg := fmt.Sprintf("repository initialization failed: %v", err)
		log.Warn(msg)
		result.Warnings = append(result.Warnings, msg)
	} else if out != "" {
		log.Info(out)
	}

	return result, nil
}

// writeFile writes data to root/rel, creating parent directories and
// truncating any existing file.
func writeFile(root, rel string, data []byte) error {
	p := filepath.Join(root, filepath.FromSlash(rel))
	if dir := filepath.Dir(p); dir != root {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &IOError{Op: "creating", Path: dir, Err: err}
		}
	}
	if err := os.WriteFile(p, data, 0o644); err != nil {
		return &IOError{Op: "writing", Path: p, Err: err}
	}
	return nil
}
