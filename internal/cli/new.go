package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xcpp-labs/xcpp/internal/notify"
	"github.com/xcpp-labs/xcpp/internal/resolve"
	"github.com/xcpp-labs/xcpp/internal/scaffold"
	"github.com/xcpp-labs/xcpp/internal/standard"
)

func newNewCmd(a *app) *cobra.Command {
	var (
		std  string
		path string
		dir  string
	)

	cmd := &cobra.Command{
		Use:   "new <name>",
		Short: "Create a new C++ project",
		Long: `Create a new C++ project directory with VS Code configuration, a makefile,
main.cpp, .gitignore and empty data.in/data.out files, then run 'git init' in it.

--std and --path fall back to the defaults saved with 'xcpp store'.

Examples:
  xcpp new hello_cpp --std=c++17 --path=E:/Environment/mingw64/bin
  xcpp new hello_cpp`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			store, err := a.store()
			if err != nil {
				return err
			}
			stored, err := store.Load()
			if err != nil {
				return err
			}

			res, err := resolve.Resolver{Log: a.log}.Resolve(std, path, stored)
			if err != nil {
				return err
			}

			result, err := scaffold.Generate(cmd.Context(), scaffold.Options{
				Name:          name,
				Dir:           dir,
				Std:           res.Std,
				ToolchainPath: res.ToolchainPath,
				Initializer:   a.initializer,
				Log:           a.log,
			})
			if err != nil {
				return err
			}

			printResult(cmd, result)
			return nil
		},
	}

	cmd.Flags().Var(newEnumValue("std", &std, standard.Default, standard.All()), "std",
		"C++ standard passed as -std=<std> ("+strings.Join(standard.All(), ", ")+"); "+standard.Default+" uses the stored default")
	cmd.Flags().StringVar(&path, "path", "", "MinGW bin directory holding g++.exe and gdb.exe, e.g. E:/Environment/mingw64/bin")
	cmd.Flags().StringVar(&dir, "dir", "", "Parent directory for the project (default: current directory)")
	return cmd
}

func printResult(cmd *cobra.Command, result *scaffold.Result) {
	out := cmd.OutOrStdout()
	for _, f := range result.Files {
		notify.Generatef(out, "%s", f)
	}
	for _, w := range result.Warnings {
		notify.Warningf(cmd.ErrOrStderr(), "%s", w)
	}
	notify.Successf(out, "%s", printer.Sprintf("Created %s (%d files)", result.Root, len(result.Files)))
	fmt.Fprintln(out, "\nNext steps:")
	fmt.Fprintf(out, "  1. Open %s in VS Code\n", result.Root)
	fmt.Fprintln(out, "  2. Run 'make' or pick a build task to compile main.cpp")
}
