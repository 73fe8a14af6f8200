// Package trace provides the debug channel of the xlc front end.
//
// The reader echoes every source line it consumes and the parser echoes every
// token it scans; both go through a Tracer so the output can be switched off,
// streamed to stderr or captured in memory by tests.
//
// # Usage
//
//	xlc parse --trace=detail prog.x   // echo source lines
//	xlc parse --trace=debug prog.x    // plus every scanned token
//
// # Implementations
//
//   - Nop: zero-overhead no-op tracer when disabled
//   - StreamTracer: buffered write to a file or stderr, flushed on Close
//   - RingTracer: circular buffer, used by tests
//
// # Levels
//
//   - LevelOff: No tracing
//   - LevelError: Silent; errors are reported as diagnostics
//   - LevelPhase: Driver and pass boundaries
//   - LevelDetail: Source lines
//   - LevelDebug: Everything including tokens
//
// Tracers are propagated through the driver via context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	t := trace.FromContext(ctx)
package trace
