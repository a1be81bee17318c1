package supervisor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Target describes the child process: the interpreter is named explicitly and
// the script plus trailing arguments are forwarded verbatim.
type Target struct {
	Interpreter string
	Script      string
	Args        []string
	Dir         string
	Env         []string
}

// argv returns the arguments passed to the interpreter.
func (t Target) argv() []string {
	args := make([]string, 0, len(t.Args)+1)
	if t.Script != "" {
		args = append(args, t.Script)
	}
	return append(args, t.Args...)
}

// Launcher runs a child process to completion, relaying its stdout and stderr
// to the given writers. It returns the child's exit code; err is only set
// when the process could not be started or waited on.
type Launcher interface {
	Run(ctx context.Context, t Target, stdout, stderr io.Writer) (exitCode int, err error)
}

// DefaultWaitDelay is how long output may keep draining after the child
// exits.
const DefaultWaitDelay = 500 * time.Millisecond

// ExecLauncher implements Launcher with os/exec.
type ExecLauncher struct {
	// Stdin is inherited by the child. Nil means os.Stdin.
	Stdin io.Reader
	Log   *zap.Logger
	// WaitDelay bounds how long the relays run on after the child exits.
	// Background descendants that inherited the pipes are cut off after it.
	// Zero means DefaultWaitDelay.
	WaitDelay time.Duration
}

func (e *ExecLauncher) Run(ctx context.Context, t Target, stdout, stderr io.Writer) (int, error) {
	log := e.Log
	if log == nil {
		log = zap.NewNop()
	}

	cmd := exec.CommandContext(ctx, t.Interpreter, t.argv()...)
	cmd.Dir = t.Dir
	if len(t.Env) > 0 {
		cmd.Env = t.Env
	}
	cmd.Stdin = e.Stdin
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}

	delay := e.WaitDelay
	if delay <= 0 {
		delay = DefaultWaitDelay
	}
	cmd.WaitDelay = delay

	// The pipes are ours rather than StdoutPipe's so Wait can return as soon
	// as the child exits while the relays keep draining.
	outR, outW, err := os.Pipe()
	if err != nil {
		return -1, fmt.Errorf("stdout pipe: %w", err)
	}
	defer outR.Close()
	errR, errW, err := os.Pipe()
	if err != nil {
		outW.Close()
		return -1, fmt.Errorf("stderr pipe: %w", err)
	}
	defer errR.Close()
	cmd.Stdout = outW
	cmd.Stderr = errW

	err = cmd.Start()
	outW.Close()
	errW.Close()
	if err != nil {
		return -1, fmt.Errorf("start %s: %w", t.Interpreter, err)
	}
	log.Debug("child started", zap.Int("pid", cmd.Process.Pid), zap.String("interpreter", t.Interpreter), zap.Strings("args", t.argv()))

	var g errgroup.Group
	g.Go(func() error { return relay(stdout, outR) })
	g.Go(func() error { return relay(stderr, errR) })
	relayed := make(chan error, 1)
	go func() { relayed <- g.Wait() }()

	waitErr := cmd.Wait()

	var relayErr error
	select {
	case relayErr = <-relayed:
	case <-time.After(delay):
		log.Debug("output pipes still open after exit, closing", zap.Duration("wait_delay", delay))
		outR.Close()
		errR.Close()
		relayErr = <-relayed
	}
	if relayErr != nil {
		log.Debug("relay failed", zap.Error(relayErr))
	}

	// ErrWaitDelay means the child exited 0 but its stdin copy was cut short.
	if waitErr == nil || errors.Is(waitErr, exec.ErrWaitDelay) {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if !errors.As(waitErr, &exitErr) {
		return -1, fmt.Errorf("wait: %w", waitErr)
	}
	code := exitErr.ExitCode()
	if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		code = 128 + int(ws.Signal())
	}
	log.Debug("child exited", zap.Int("exit_code", code))
	return code, nil
}

// relay copies src to dst. If dst stops accepting writes, src is still
// drained so the child never blocks on a full pipe.
func relay(dst io.Writer, src io.Reader) error {
	_, err := io.Copy(dst, src)
	if err != nil {
		_, _ = io.Copy(io.Discard, src)
	}
	return err
}
