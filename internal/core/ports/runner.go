package ports

import "context"

// CommandRunner executes an external command and returns its stdout.
// Implementations must block until the process exits and attach the tool's
// stderr and exit code to the returned error on failure.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
}
