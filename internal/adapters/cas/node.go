package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/apkpin/internal/core/domain"
	"go.trai.ch/apkpin/internal/core/ports"
)

const (
	// CacheNodeID provides the store as ports.IndexCache so the app can move it below --root.
	CacheNodeID graft.ID = "adapter.index_cache"
	// NodeID provides the same store as ports.BlobStore.
	NodeID graft.ID = "adapter.blob_store"
)

func init() {
	graft.Register(graft.Node[ports.IndexCache]{
		ID:        CacheNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.IndexCache, error) {
			store, err := NewStore(domain.IndexCachePath("."))
			if err != nil {
				return nil, err
			}
			return store, nil
		},
	})

	graft.Register(graft.Node[ports.BlobStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{CacheNodeID},
		Run: func(ctx context.Context) (ports.BlobStore, error) {
			cache, err := graft.Dep[ports.IndexCache](ctx)
			if err != nil {
				return nil, err
			}
			return cache, nil
		},
	})
}
