package brew

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tapplan/internal/core/ports"
)

const (
	// RunnerNodeID is the unique identifier for the command runner Graft node.
	RunnerNodeID graft.ID = "adapter.brew.runner"
	// NodeID is the unique identifier for the brew adapter Graft node.
	NodeID graft.ID = "adapter.brew"
)

func init() {
	graft.Register(graft.Node[ports.CommandRunner]{
		ID:        RunnerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.CommandRunner, error) {
			return NewExecRunner(), nil
		},
	})

	graft.Register(graft.Node[ports.Homebrew]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{RunnerNodeID},
		Run: func(ctx context.Context) (ports.Homebrew, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			return New(runner), nil
		},
	})
}
