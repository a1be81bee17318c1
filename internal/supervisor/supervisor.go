package supervisor

import (
	"bytes"
	"context"
	"io"
	"strings"

	"go.uber.org/zap"
)

// State is the supervisor's view of the child process.
type State int

const (
	Running State = iota
	Succeeded
	Failed
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome is the result of one supervised run.
type Outcome struct {
	State    State
	ExitCode int
	// Stderr is the frozen error stream. Empty unless State is Failed.
	Stderr string
}

// HasDetails reports whether the failed child left anything to diagnose.
func (o *Outcome) HasDetails() bool {
	return strings.TrimSpace(o.Stderr) != ""
}

// Supervisor runs exactly one child process per Run call: stdout is relayed
// live, stderr is accumulated and only handed out after the child exits.
type Supervisor struct {
	launcher Launcher
	stdout   io.Writer
	log      *zap.Logger
}

// New creates a Supervisor relaying the child's stdout to stdout.
func New(launcher Launcher, stdout io.Writer, log *zap.Logger) *Supervisor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Supervisor{launcher: launcher, stdout: stdout, log: log}
}

// Run blocks until the child exits. The error is non-nil only when the child
// could not be run at all.
func (s *Supervisor) Run(ctx context.Context, t Target) (*Outcome, error) {
	var acc bytes.Buffer
	out := &Outcome{State: Running}

	code, err := s.launcher.Run(ctx, t, s.stdout, &acc)
	if err != nil {
		return nil, err
	}

	out.ExitCode = code
	if code == 0 {
		out.State = Succeeded
		s.log.Debug("child succeeded", zap.Int("discarded_stderr_bytes", acc.Len()))
		return out, nil
	}

	out.State = Failed
	out.Stderr = acc.String()
	s.log.Debug("child failed", zap.Int("exit_code", code), zap.Int("stderr_bytes", acc.Len()))
	return out, nil
}
