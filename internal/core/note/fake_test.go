// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package note

import (
	"context"
	"sort"
	"sync"

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
	mu    sync.Mutex
	notes map[string]*Note
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{notes: make(map[string]*Note)}
}

func (repository *fakeRepository) Upsert(_ context.Context, note *Note) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	stored := *note
	repository.notes[note.ID] = &stored
	return nil
}

func (repository *fakeRepository) FindByID(_ context.Context, id string) (*Note, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	note, ok := repository.notes[id]
	if !ok {
		return nil, apperr.NotFound(resourceNote)
	}
	copied := *note
	return &copied, nil
}

func (repository *fakeRepository) List(_ context.Context, filter Filter) ([]*Note, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	notes := []*Note{}
	for _, note := range repository.notes {
		if filter.SessionID != "" && note.SessionID != filter.SessionID {
			continue
		}
		if filter.Source != "" && note.Source != filter.Source {
			continue
		}
		if filter.Pinned != nil && note.Pinned != *filter.Pinned {
			continue
		}
		copied := *note
		notes = append(notes, &copied)
	}
	sort.Slice(notes, func(i, j int) bool { return notes[i].CreatedAt.After(notes[j].CreatedAt) })
	return notes, nil
}

func (repository *fakeRepository) Delete(_ context.Context, id string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.notes[id]; !ok {
		return apperr.NotFound(resourceNote)
	}
	delete(repository.notes, id)
	return nil
}
