// Package config persists the user's default project settings (language
// standard and toolchain path) as a single YAML record under the user config
// directory, e.g. ~/.config/xcpp/config.yaml. It loads, saves, deletes and
// schema-validates that record.
package config
