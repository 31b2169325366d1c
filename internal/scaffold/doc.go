// Package scaffold generates new C++ projects from an embedded template
// bundle. It powers the "xcpp new" command, producing the VS Code
// configuration (.vscode/*), a makefile, starter source, ignore rules and
// empty data files, then initializing a git repository.
package scaffold
