package scaffold

// IOError reports a filesystem failure during generation. The project
// directory is left as-is when it occurs.
type IOError struct {
	Op   string // "creating" or "writing"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *IOError) Unwrap() error { return e.Err }
