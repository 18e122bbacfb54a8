package osascript

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"regexp"
	"strconv"
	"strings"

	"github.com/oklog/ulid/v2"
)

const (
	// DefaultBinary is the scripting bridge shipped with macOS.
	DefaultBinary = "osascript"
	// DefaultLanguage is the OSA language the payloads are written in.
	DefaultLanguage = "AppleScript"

	// errCodeNoSuchObject is AppleScript's errAENoSuchObject.
	errCodeNoSuchObject = -1728
)

// ErrObjectNotFound matches script errors raised because a referenced object
// (for example a note id) does not resolve.
var ErrObjectNotFound = errors.New("object not found")

var executionErrorRe = regexp.MustCompile(`execution error: (.*) \((-?\d+)\)\s*$`)

// ScriptError is a failure reported by the host while executing a payload.
// Error returns the host message verbatim.
type ScriptError struct {
	Message string
	Code    int
	Stderr  string
	Err     error
}

func (e *ScriptError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "script failed"
}

func (e *ScriptError) Unwrap() error { return e.Err }

// Is reports AppleScript's "no such object" failures as ErrObjectNotFound.
func (e *ScriptError) Is(target error) bool {
	return target == ErrObjectNotFound && e.Code == errCodeNoSuchObject
}

// Client executes script payloads through the osascript binary.
type Client struct {
	Binary string
	// Language is passed to -l. The Notes payloads are AppleScript, so the
	// adapter always runs with DefaultLanguage; other values are for callers
	// running their own scripts.
	Language string
	Logger   *slog.Logger
}

// NewClient creates a client for the given binary. An empty binary selects
// DefaultBinary.
func NewClient(binary string, logger *slog.Logger) *Client {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Client{
		Binary:   binary,
		Language: DefaultLanguage,
		Logger:   logger,
	}
}

// Run executes one script payload and returns its textual result.
// The payload is fed on stdin so it never shows up in the process list.
func (c *Client) Run(ctx context.Context, script string) (string, error) {
	runID := ulid.Make().String()
	if c.Logger != nil {
		c.Logger.Debug("executing script", "run", runID, "binary", c.Binary, "bytes", len(script))
	}

	lang := c.Language
	if lang == "" {
		lang = DefaultLanguage
	}

	cmd := exec.CommandContext(ctx, c.Binary, "-l", lang)
	cmd.Stdin = strings.NewReader(script)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		scriptErr := parseError(stderr.String(), err)
		if c.Logger != nil {
			c.Logger.Debug("script failed", "run", runID, "code", scriptErr.Code, "error", scriptErr.Message)
		}
		return "", scriptErr
	}

	if c.Logger != nil {
		c.Logger.Debug("script finished", "run", runID, "bytes", stdout.Len())
	}
	return strings.TrimSuffix(stdout.String(), "\n"), nil
}

// IsInstalled checks if the binary is resolvable.
func (c *Client) IsInstalled() bool {
	_, err := exec.LookPath(c.Binary)
	return err == nil
}

func parseError(stderr string, err error) *ScriptError {
	stderr = strings.TrimSpace(stderr)
	scriptErr := &ScriptError{Stderr: stderr, Err: err}

	if m := executionErrorRe.FindStringSubmatch(stderr); m != nil {
		scriptErr.Message = m[1]
		scriptErr.Code, _ = strconv.Atoi(m[2])
		return scriptErr
	}

	if stderr != "" {
		scriptErr.Message = stderr
	} else {
		scriptErr.Message = fmt.Sprintf("%s failed: %v", DefaultBinary, err)
	}
	return scriptErr
}
