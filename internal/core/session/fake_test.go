// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package session

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/taibuivan/canon/internal/platform/apperr"
)

// fakeRepository keeps sessions in memory. owned simulates the notes,
// highlights and sermons that reference each session.
type fakeRepository struct {
	mu       sync.Mutex
	sessions map[string]*Session
	owned    map[string]DeleteResult
	failWith error
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		sessions: make(map[string]*Session),
		owned:    make(map[string]DeleteResult),
	}
}

func (repository *fakeRepository) Create(_ context.Context, session *Session) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if repository.failWith != nil {
		return repository.failWith
	}
	if _, ok := repository.sessions[session.ID]; ok {
		return apperr.Conflict("Study session already exists")
	}
	stored := *session
	repository.sessions[session.ID] = &stored
	return nil
}

func (repository *fakeRepository) FindByID(_ context.Context, id string) (*Session, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	session, ok := repository.sessions[id]
	if !ok {
		return nil, apperr.NotFound(resourceSession)
	}
	copied := *session
	return &copied, nil
}

func (repository *fakeRepository) Update(_ context.Context, session *Session) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.sessions[session.ID]; !ok {
		return apperr.NotFound(resourceSession)
	}
	stored := *session
	repository.sessions[session.ID] = &stored
	return nil
}

func (repository *fakeRepository) UpdateStage(_ context.Context, id string, stage Stage, accessedAt time.Time) (*Session, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	session, ok := repository.sessions[id]
	if !ok {
		return nil, apperr.NotFound(resourceSession)
	}
	session.Stage = stage
	session.LastAccessed = accessedAt
	session.UpdatedAt = accessedAt
	copied := *session
	return &copied, nil
}

func (repository *fakeRepository) FindLast(_ context.Context, userID string) (*Session, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	var last *Session
	for _, session := range repository.sessions {
		if userID != "" && session.UserID != userID {
			continue
		}
		if last == nil || session.LastAccessed.After(last.LastAccessed) {
			last = session
		}
	}
	if last == nil {
		return nil, apperr.NotFound(resourceSession)
	}
	copied := *last
	return &copied, nil
}

func (repository *fakeRepository) List(_ context.Context, filter Filter) ([]*Session, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if repository.failWith != nil {
		return nil, repository.failWith
	}

	sessions := []*Session{}
	for _, session := range repository.sessions {
		if filter.UserID != "" && session.UserID != filter.UserID {
			continue
		}
		if filter.Book != "" && session.Book != filter.Book {
			continue
		}
		if filter.Status != "" && session.Status != filter.Status {
			continue
		}
		copied := *session
		sessions = append(sessions, &copied)
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].LastAccessed.After(sessions[j].LastAccessed)
	})
	return sessions, nil
}

func (repository *fakeRepository) Exists(_ context.Context, id string) (bool, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if repository.failWith != nil {
		return false, repository.failWith
	}
	_, ok := repository.sessions[id]
	return ok, nil
}

func (repository *fakeRepository) Delete(_ context.Context, id string) (DeleteResult, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.sessions[id]; !ok {
		return DeleteResult{}, apperr.NotFound(resourceSession)
	}
	result := repository.owned[id]
	delete(repository.sessions, id)
	delete(repository.owned, id)
	return result, nil
}
