// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sermon

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/taibuivan/canon/internal/platform/apperr"
)

type fakeSessions map[string]bool

func (sessions fakeSessions) Ensure(_ context.Context, id string) error {
	if !sessions[id] {
		return apperr.NotFound(resourceSession)
	}
	return nil
}

type fakeRepository struct {
	mu      sync.Mutex
	sermons map[string]*Sermon

	// setExportErr, when set, fails every SetExport.
	setExportErr error
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{sermons: make(map[string]*Sermon)}
}

func (repository *fakeRepository) Create(_ context.Context, sermon *Sermon) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, exists := repository.sermons[sermon.ID]; exists {
		return apperr.Conflict("A sermon with this id already exists")
	}
	stored := *sermon
	repository.sermons[sermon.ID] = &stored
	return nil
}

func (repository *fakeRepository) FindByID(_ context.Context, id string) (*Sermon, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	sermon, ok := repository.sermons[id]
	if !ok {
		return nil, apperr.NotFound(resourceSermon)
	}
	copied := *sermon
	return &copied, nil
}

func (repository *fakeRepository) List(_ context.Context, sessionID string) ([]*Sermon, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	sermons := []*Sermon{}
	for _, sermon := range repository.sermons {
		if sessionID != "" && sermon.SessionID != sessionID {
			continue
		}
		copied := *sermon
		sermons = append(sermons, &copied)
	}
	sort.Slice(sermons, func(i, j int) bool { return sermons[i].CreatedAt.After(sermons[j].CreatedAt) })
	return sermons, nil
}

func (repository *fakeRepository) Update(_ context.Context, sermon *Sermon) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.sermons[sermon.ID]; !ok {
		return apperr.NotFound(resourceSermon)
	}
	stored := *sermon
	repository.sermons[sermon.ID] = &stored
	return nil
}

func (repository *fakeRepository) SetExport(_ context.Context, id string, export json.RawMessage, updatedAt time.Time) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if repository.setExportErr != nil {
		return repository.setExportErr
	}
	sermon, ok := repository.sermons[id]
	if !ok {
		return apperr.NotFound(resourceSermon)
	}
	sermon.Export = export
	sermon.UpdatedAt = updatedAt
	return nil
}

func (repository *fakeRepository) Delete(_ context.Context, id string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.sermons[id]; !ok {
		return apperr.NotFound(resourceSermon)
	}
	delete(repository.sermons, id)
	return nil
}

// fakeLinks expires entries against the test clock, like Redis key TTLs.
type fakeLinks struct {
	mu      sync.Mutex
	now     func() time.Time
	links   map[string]Link
	expires map[string]time.Time
}

func newFakeLinks(now func() time.Time) *fakeLinks {
	return &fakeLinks{now: now, links: make(map[string]Link), expires: make(map[string]time.Time)}
}

func (store *fakeLinks) Save(_ context.Context, token string, link *Link, ttl time.Duration) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.links[token] = *link
	store.expires[token] = store.now().Add(ttl)
	return nil
}

func (store *fakeLinks) Load(_ context.Context, token string) (*Link, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	link, ok := store.links[token]
	if !ok || !store.now().Before(store.expires[token]) {
		return nil, apperr.NotFound("Export link")
	}
	return &link, nil
}

func (store *fakeLinks) Delete(_ context.Context, token string) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	delete(store.links, token)
	delete(store.expires, token)
	return nil
}
