package diagfmt

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color      bool
	ShowSource bool // print the offending line with a caret underline
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	Max int // truncate the output, not the Bag; 0 means no limit
}
