package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/apkpin/internal/core/ports"
)

const (
	WalkerNodeID   graft.ID = "adapter.fs.walker"
	WorkTreeNodeID graft.ID = "adapter.fs.worktree"
	HasherNodeID   graft.ID = "adapter.fs.hasher"
)

func init() {
	// Walker Node (Concrete implementation needed by WorkTree)
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.WorkTree]{
		ID:        WorkTreeNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID},
		Run: func(ctx context.Context) (ports.WorkTree, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewWorkTree(walker), nil
		},
	})

	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Hasher, error) {
			return NewHasher(), nil
		},
	})
}
