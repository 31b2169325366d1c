// Package resolve merges command-line values with the stored defaults and
// checks the preconditions that gate project generation.
package resolve

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/xcpp-labs/xcpp/internal/branding"
	"github.com/xcpp-labs/xcpp/internal/config"
	"github.com/xcpp-labs/xcpp/internal/standard"
)

// Resolution is the validated (standard, toolchain path) pair.
type Resolution struct {
	Std           string
	ToolchainPath string

	// StdFromConfig and PathFromConfig record which values fell back to the
	// stored defaults.
	StdFromConfig  bool
	PathFromConfig bool
}

// Resolver applies the precedence rules. A nil Log disables warnings.
type Resolver struct {
	Log logrus.FieldLogger
}

// Resolve merges commandStd and commandPath with stored. An explicit value
// always wins; standard.Default and "" defer to stored. The standard is
// checked before the path.
func (r Resolver) Resolve(commandStd, commandPath string, stored config.Record) (Resolution, error) {
	var res Resolution

	if commandStd != standard.Default {
		res.Std = commandStd
	} else {
		s := stored.Std
		switch {
		case s == standard.Default:
			return Resolution{}, fmt.Errorf("%w: std=%s cannot be used as a stored default", ErrInvalidStandard, s)
		case !standard.IsReal(s):
			return Resolution{}, fmt.Errorf("%w in stored config: std=%q", ErrInvalidStandard, s)
		}
		r.warn("std", s)
		res.Std = s
		res.StdFromConfig = true
	}

	if commandPath != "" {
		res.ToolchainPath = commandPath
	} else {
		p := stored.ToolchainPath
		if p == "" {
			return Resolution{}, fmt.Errorf("%w: pass --path or save one with '%s store'", ErrMissingToolchainPath, branding.CLIName())
		}
		r.warn("path", p)
		res.ToolchainPath = p
		res.PathFromConfig = true
	}

	return res, nil
}

func (r Resolver) warn(flag, value string) {
	if r.Log == nil {
		return
	}
	r.Log.WithField(flag, value).Warnf("missing argument --%s, using stored default", flag)
}

// CheckToolchain fails with ErrToolchainNotFound if nothing exists at path.
// The compiler and debugger inside it are not probed.
func CheckToolchain(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s does not exist, MinGW setup is required", ErrToolchainNotFound, path)
		}
		return fmt.Errorf("checking toolchain %s: %w", path, err)
	}
	return nil
}

// CheckDestination fails with ErrDestinationExists if a file or directory is
// already present at root.
func CheckDestination(root string) error {
	_, err := os.Lstat(root)
	switch {
	case err == nil:
		return fmt.Errorf("%w: %s", ErrDestinationExists, root)
	case errors.Is(err, fs.ErrNotExist):
		return nil
	default:
		return fmt.Errorf("checking destination %s: %w", root, err)
	}
}
