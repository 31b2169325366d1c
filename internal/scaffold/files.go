package scaffold

import "strings"

// Fixed, untemplated project files.
const (
	GitignoreFile = ".gitignore"
	MainFile      = "main.cpp"
	InputFile     = "data.in"
	OutputFile    = "data.out"
	TargetDir     = "target"
)

// Executables expected inside the toolchain directory.
const (
	CompilerExe = "g++.exe"
	DebuggerExe = "gdb.exe"
)

const mainSource = `#include <iostream>
using namespace std;
int main(){
    cout << "Hello, World" << '\n';
    return 0;
}
`

// ignoreRules are written to .gitignore, one per line.
var ignoreRules = []string{
	".vscode/",
	TargetDir + "/",
}

func gitignoreContent() string {
	return strings.Join(ignoreRules, "\n") + "\n"
}
