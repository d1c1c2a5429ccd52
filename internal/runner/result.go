package runner

// Output holds the captured result of a finished child process.
type Output struct {
	Stdout string `json:"stdout"` // captured stdout, lossily decoded as UTF-8
	Stderr string `json:"stderr"` // captured stderr, lossily decoded as UTF-8
	Status int    `json:"status"` // exit code; 0 when the process has none (e.g. killed by a signal)
}

// Outcome is the single value delivered by Go.
type Outcome struct {
	Output *Output
	Err    error
}
