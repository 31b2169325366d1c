package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/pflag"
)

// enumValue is a string flag restricted to a fixed set of values.
type enumValue struct {
	name    string
	value   *string
	allowed []string
}

var _ pflag.Value = (*enumValue)(nil)

func newEnumValue(name string, target *string, def string, allowed []string) *enumValue {
	*target = def
	return &enumValue{name: name, value: target, allowed: allowed}
}

func (e *enumValue) String() string { return *e.value }

func (e *enumValue) Type() string { return "string" }

func (e *enumValue) Set(v string) error {
	if !slices.Contains(e.allowed, v) {
		return fmt.Errorf("'%s' isn't a valid value for '--%s'\n\t[possible values: %s]",
			v, e.name, strings.Join(e.allowed, ", "))
	}
	*e.value = v
	return nil
}
