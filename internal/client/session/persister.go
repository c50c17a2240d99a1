package session

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/portal/internal/client/repositories/state"
)

// BlobName is the name the session snapshot is stored under.
const BlobName = "session"

// Persister stores one serialized session snapshot.
type Persister interface {
	// Load returns (nil, nil) when nothing was saved yet.
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, blob []byte) error
}

// RepositoryPersister keeps the snapshot in the state repository.
type RepositoryPersister struct {
	repo state.Repository
	name string
}

func NewRepositoryPersister(repo state.Repository) *RepositoryPersister {
	return &RepositoryPersister{repo: repo, name: BlobName}
}

func (p *RepositoryPersister) Load(ctx context.Context) ([]byte, error) {
	return p.repo.Get(ctx, p.name)
}

func (p *RepositoryPersister) Save(ctx context.Context, blob []byte) error {
	return p.repo.Put(ctx, p.name, blob)
}

// MemoryPersister keeps the snapshot in memory. Two Stores sharing one
// MemoryPersister behave like one process restarting.
type MemoryPersister struct {
	mu   sync.Mutex
	blob []byte
}

func (p *MemoryPersister) Load(context.Context) ([]byte, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.blob == nil {
		return nil, nil
	}
	return append([]byte(nil), p.blob...), nil
}

func (p *MemoryPersister) Save(_ context.Context, blob []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.blob = append([]byte(nil), blob...)
	return nil
}
