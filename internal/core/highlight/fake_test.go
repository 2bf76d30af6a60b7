// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package highlight

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
	mu         sync.Mutex
	highlights map[string]*Highlight
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{highlights: make(map[string]*Highlight)}
}

func (repository *fakeRepository) Create(_ context.Context, highlight *Highlight) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.highlights[highlight.ID]; ok {
		return apperr.Conflict("Highlight already exists")
	}
	stored := *highlight
	repository.highlights[highlight.ID] = &stored
	return nil
}

func (repository *fakeRepository) FindByID(_ context.Context, id string) (*Highlight, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	highlight, ok := repository.highlights[id]
	if !ok {
		return nil, apperr.NotFound(resourceHighlight)
	}
	copied := *highlight
	return &copied, nil
}

func (repository *fakeRepository) List(_ context.Context, filter Filter) ([]*Highlight, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	highlights := []*Highlight{}
	for _, highlight := range repository.highlights {
		if filter.SessionID != "" && highlight.SessionID != filter.SessionID {
			continue
		}
		if filter.Verse != nil && highlight.Verse != *filter.Verse {
			continue
		}
		copied := *highlight
		highlights = append(highlights, &copied)
	}
	sort.Slice(highlights, func(i, j int) bool {
		if highlights[i].Verse != highlights[j].Verse {
			return highlights[i].Verse < highlights[j].Verse
		}
		return highlights[i].StartOffset < highlights[j].StartOffset
	})
	return highlights, nil
}

func (repository *fakeRepository) Delete(_ context.Context, id string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.highlights[id]; !ok {
		return apperr.NotFound(resourceHighlight)
	}
	delete(repository.highlights, id)
	return nil
}
