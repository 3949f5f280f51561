package setup

import (
	"context"
	"os/exec"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Probe is one diagnostic command used to detect a MongoDB installation.
type Probe struct {
	Name string
	Args []string
}

// RuntimeProbes are tried when looking for a local MongoDB.
var RuntimeProbes = []Probe{
	{Name: "mongod", Args: []string{"--version"}},
	{Name: "mongo", Args: []string{"--version"}},
	{Name: "mongosh", Args: []string{"--version"}},
	{Name: "sc", Args: []string{"query", "MongoDB"}},
}

// CommandRunner runs an external command and reports whether it exited cleanly.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// ExecRunner runs commands with os/exec, discarding their output.
type ExecRunner struct{}

// Run implements CommandRunner.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Run()
}

// DetectRuntime runs every probe concurrently and reports whether any of them
// succeeded. A failing probe (missing binary, non-zero exit, timeout) is an
// expected outcome and only logged.
func DetectRuntime(ctx context.Context, runner CommandRunner, probes []Probe, timeout time.Duration, logger *zap.Logger) bool {
	results := make([]bool, len(probes))

	var g errgroup.Group
	for i, p := range probes {
		g.Go(func() error {
			pctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			err := runner.Run(pctx, p.Name, p.Args...)
			results[i] = err == nil
			logger.Debug("runtime probe finished",
				zap.String("command", p.Name),
				zap.Strings("args", p.Args),
				zap.Bool("ok", results[i]),
				zap.NamedError("reason", err),
			)
			return nil
		})
	}
	_ = g.Wait()

	for _, ok := range results {
		if ok {
			return true
		}
	}
	return false
}
