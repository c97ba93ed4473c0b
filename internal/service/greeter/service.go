package greeter

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/mcplabs/mcp-greeter/internal/domain/sysinfo"
	"github.com/mcplabs/mcp-greeter/internal/logger"
	"github.com/mcplabs/mcp-greeter/internal/platform"
)

// promptText is printed before the final blocking read.
const promptText = "Press Enter to exit..."

// Service prints one greeting report and waits for acknowledgment.
// All host access goes through the injected provider and streams,
// so tests run it against fakes and buffers.
type Service struct {
	provider platform.Provider
	in       io.Reader
	out      io.Writer
	greeting string
	skipWait bool
}

// ServiceOption customizes a Service beyond its required collaborators.
type ServiceOption func(*Service)

// WithSkipWait disables the final prompt and read, for scripted runs.
func WithSkipWait(skip bool) ServiceOption {
	return func(s *Service) {
		s.skipWait = skip
	}
}

// NewService builds a greeter around the provided collaborators.
func NewService(
	provider platform.Provider,
	in io.Reader,
	out io.Writer,
	greeting string,
	opts ...ServiceOption,
) *Service {
	s := &Service{
		provider: provider,
		in:       in,
		out:      out,
		greeting: greeting,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Run executes the linear sequence: greeting, timestamp, build identifier,
// prompt, wait. Each host value is read exactly once.
func (s *Service) Run(ctx context.Context) error {
	report := sysinfo.Report{
		Greeting: s.greeting,
		Now:      s.provider.CurrentTime(),
	}

	// A failed version query degrades to the placeholder;
	// the run still reaches the prompt and completes.
	build, err := s.provider.CurrentVersion()
	if err != nil {
		logger.WarnKV(ctx, "Host version query failed", "error", err)
	}

	report.Build = build

	logger.DebugKV(
		ctx,
		"Rendering greeting report",
		"timestamp",
		report.Now.Format(sysinfo.TimestampLayout),
		"build",
		report.Build.String(),
	)

	if err := report.Render(s.out); err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	if s.skipWait {
		return nil
	}

	return s.awaitAcknowledgment(ctx)
}

// awaitAcknowledgment prompts and blocks until one input line arrives.
// End of input counts as acknowledgment so piped runs never hang.
func (s *Service) awaitAcknowledgment(ctx context.Context) error {
	if _, err := fmt.Fprintf(s.out, "\n%s", promptText); err != nil {
		return fmt.Errorf("write prompt: %w", err)
	}

	// One line is enough; its content is discarded.
	if _, err := bufio.NewReader(s.in).ReadString('\n'); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("read acknowledgment: %w", err)
	}

	logger.Debug(ctx, "Acknowledgment received, exiting")

	return nil
}
