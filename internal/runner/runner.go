// Package runner executes a script as a child process and captures what it
// wrote to stdout and stderr together with its exit status.
package runner

import (
	"bytes"
	"errors"
	"os/exec"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Runner spawns scripts with no arguments and waits for them to exit.
// The zero value is usable and logs nothing.
type Runner struct {
	Logger zerolog.Logger
}

// New returns a Runner that writes its diagnostics to logger.
func New(logger zerolog.Logger) *Runner {
	return &Runner{Logger: logger.With().Str("component", "runner").Logger()}
}

// Run spawns script with an empty argument list, blocks until it exits and
// returns its captured output. A non-zero exit is not an error; only a
// failure to spawn or wait is, and that error is returned unwrapped.
func (r *Runner) Run(script string) (*Output, error) {
	runID := uuid.New().String()
	log := r.Logger.With().Str("run_id", runID).Str("script", script).Logger()

	log.Info().Msg("running script")

	cmd := exec.Command(script)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	if runErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(runErr, &exitErr) {
			log.Error().Err(runErr).Msg("failed to run script")
			return nil, runErr
		}
	}

	out := &Output{
		Stdout: decode(stdout.Bytes()),
		Stderr: decode(stderr.Bytes()),
		Status: exitStatus(cmd),
	}
	log.Debug().Int("status", out.Status).Msg("script finished")
	return out, nil
}

// Go runs script on its own goroutine. The returned channel receives exactly
// one Outcome and is then closed.
func (r *Runner) Go(script string) <-chan Outcome {
	ch := make(chan Outcome, 1)
	go func() {
		defer close(ch)
		out, err := r.Run(script)
		ch <- Outcome{Output: out, Err: err}
	}()
	return ch
}

// exitStatus reports the exit code of a finished command. ExitCode returns
// -1 for a process terminated by a signal; that case maps to 0.
func exitStatus(cmd *exec.Cmd) int {
	if cmd.ProcessState == nil {
		return 0
	}
	if code := cmd.ProcessState.ExitCode(); code >= 0 {
		return code
	}
	return 0
}

// decode converts raw stream bytes to a string, replacing each run of
// invalid UTF-8 with U+FFFD.
func decode(b []byte) string {
	return strings.ToValidUTF8(string(b), "\uFFFD")
}
