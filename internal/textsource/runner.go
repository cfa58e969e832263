package textsource

import (
	"bytes"
	"context"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/finefaser/ordertrack/internal/common"
)

// Runner lets us stub the external renderer/OCR commands in tests.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	start := time.Now()

	cmd := exec.CommandContext(ctx, name, args...)
	var out, errb bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errb

	err := cmd.Run()
	dur := time.Since(start)

	if err != nil {
		slog.Error("exec failed",
			"run_id", common.RunIDFromContext(ctx),
			"cmd", name,
			"args", strings.Join(args, " "),
			"duration_ms", dur.Milliseconds(),
			"error", err,
			"stderr", truncate(errb.String(), 8<<10),
		)
	} else {
		slog.Debug("exec ok",
			"run_id", common.RunIDFromContext(ctx),
			"cmd", name,
			"args", strings.Join(args, " "),
			"duration_ms", dur.Milliseconds(),
			"stdout_bytes", out.Len(),
		)
	}

	return out.Bytes(), errb.Bytes(), err
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "...(truncated)"
}
