// Package pathenv replaces the PATH a desktop session hands to GUI apps with
// the one the user's login shell builds.
package pathenv

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"time"

	"github.com/rs/zerolog"
)

// Timeout bounds how long the login shell may take to start.
const Timeout = 5 * time.Second

const (
	startMarker = "_SHELLBAR_PATH_START_"
	endMarker   = "_SHELLBAR_PATH_END_"
)

// Fix asks $SHELL (or /bin/sh) for the PATH of an interactive login shell
// and sets it on the current process. It does nothing on Windows.
func Fix(ctx context.Context, logger zerolog.Logger) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "/bin/sh"
	}

	path, err := loginPath(ctx, shell)
	if err != nil {
		return err
	}
	if err := os.Setenv("PATH", path); err != nil {
		return fmt.Errorf("setting PATH: %w", err)
	}
	logger.Debug().Str("shell", shell).Str("path", path).Msg("PATH taken from login shell")
	return nil
}

func loginPath(ctx context.Context, shell string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, Timeout)
	defer cancel()

	script := fmt.Sprintf(`printf '%%s' '%s'; printenv PATH; printf '%%s' '%s'`, startMarker, endMarker)
	cmd := exec.CommandContext(ctx, shell, "-ilc", script)

	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("running %s: %w", shell, err)
	}
	return extract(stdout.Bytes())
}

// extract returns the text between the markers, ignoring anything the
// shell's startup files printed around it.
func extract(out []byte) (string, error) {
	_, rest, ok := bytes.Cut(out, []byte(startMarker))
	if !ok {
		return "", errors.New("login shell output has no PATH marker")
	}
	path, _, ok := bytes.Cut(rest, []byte(endMarker))
	if !ok {
		return "", errors.New("login shell output has no end marker")
	}
	path = bytes.TrimSpace(path)
	if len(path) == 0 {
		return "", errors.New("login shell reported an empty PATH")
	}
	return string(path), nil
}
