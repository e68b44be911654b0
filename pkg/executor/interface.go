package executor

import "context"

// Executor defines the interface for invoking external media tools.
// Commands are always built from structured argument lists, never shell strings.
type Executor interface {
	Execute(ctx context.Context, name string, args ...string) (string, error)

	// ExecuteInDir runs the command with its working directory set to dir.
	// Used for ffmpeg concat demuxing, where list files carry relative names.
	ExecuteInDir(ctx context.Context, dir string, name string, args ...string) (string, error)
}
