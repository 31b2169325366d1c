// Package vcs initializes version-control repositories in new projects.
package vcs

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Initializer creates an empty repository in dir and returns the tool output.
type Initializer interface {
	Init(ctx context.Context, dir string) (string, error)
}

// Git runs "git init" from PATH.
type Git struct {
	// Binary overrides the executable name; empty means "git".
	Binary string
}

func (g Git) binary() string {
	if g.Binary != "" {
		return g.Binary
	}
	return "git"
}

// Init runs "git init" with dir as the working directory.
func (g Git) Init(ctx context.Context, dir string) (string, error) {
	bin := g.binary()
	if _, err := exec.LookPath(bin); err != nil {
		return "", fmt.Errorf("%s is required but not found in PATH", bin)
	}

	cmd := exec.CommandContext(ctx, bin, "init")
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	out := strings.TrimSpace(string(output))
	if err != nil {
		return out, fmt.Errorf("running %s init: %w\n%s", bin, err, out)
	}
	return out, nil
}
