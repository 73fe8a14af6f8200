package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"xlc/internal/trace"
)

// setupTracing creates the tracer from the resolved level and attaches it
// to the command context.
func setupTracing(cmd *cobra.Command, s *settings) error {
	level, err := trace.ParseLevel(s.cfg.TraceLevel)
	if err != nil {
		return fmt.Errorf("invalid trace level: %w", err)
	}
	output, err := cmd.Root().PersistentFlags().GetString("trace-output")
	if err != nil {
		return fmt.Errorf("failed to get trace-output flag: %w", err)
	}

	cfg := trace.Config{Level: level, OutputPath: output}
	if output == "" {
		cfg.Output = cmd.ErrOrStderr()
	}
	tracer, err := trace.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create tracer: %w", err)
	}

	ctx := trace.WithTracer(cmd.Context(), tracer)
	cmd.SetContext(ctx)
	return nil
}

// traced closes the tracer once run returns, error or not.
func traced(run func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		ctx, span := trace.Start(cmd.Context(), trace.ScopeDriver, cmd.Name())
		cmd.SetContext(ctx)
		defer func() {
			detail := ""
			if err != nil {
				detail = "failed"
			}
			span.End(detail)
			if cerr := trace.FromContext(ctx).Close(); cerr != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "trace: close error: %v\n", cerr)
			}
		}()
		return run(cmd, args)
	}
}
