// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package lexicon

import (
	"context"
	"slices"
	"sort"
	"sync"

	"github.com/taibuivan/canon/internal/platform/apperr"
)

type fakeRepository struct {
	mu       sync.Mutex
	lexicons map[string]*Lexicon
	entries  map[string][]Entry
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		lexicons: make(map[string]*Lexicon),
		entries:  make(map[string][]Entry),
	}
}

func (repository *fakeRepository) Create(_ context.Context, lexicon *Lexicon, entries []Entry) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	stored := *lexicon
	repository.lexicons[lexicon.ID] = &stored
	repository.entries[lexicon.ID] = slices.Clone(entries)
	return nil
}

func (repository *fakeRepository) List(context.Context) ([]*Lexicon, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	lexicons := []*Lexicon{}
	for _, lexicon := range repository.lexicons {
		copied := *lexicon
		lexicons = append(lexicons, &copied)
	}
	sort.Slice(lexicons, func(i, j int) bool { return lexicons[i].Name < lexicons[j].Name })
	return lexicons, nil
}

func (repository *fakeRepository) FindByID(_ context.Context, id string) (*Lexicon, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	lexicon, ok := repository.lexicons[id]
	if !ok {
		return nil, apperr.NotFound(resourceLexicon)
	}
	copied := *lexicon
	return &copied, nil
}

func (repository *fakeRepository) Entries(_ context.Context, lexiconID string) ([]*Entry, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	entries := []*Entry{}
	for _, entry := range repository.entries[lexiconID] {
		copied := entry
		entries = append(entries, &copied)
	}
	sort.Slice(entries, func(i, j int) bool { return Key(entries[i].Word) < Key(entries[j].Word) })
	return entries, nil
}

func (repository *fakeRepository) Delete(_ context.Context, id string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.lexicons[id]; !ok {
		return apperr.NotFound(resourceLexicon)
	}
	delete(repository.lexicons, id)
	delete(repository.entries, id)
	return nil
}

func (repository *fakeRepository) matching(keys []string, language Language) []*Entry {
	matches := []*Entry{}
	for id, entries := range repository.entries {
		if language != "" && repository.lexicons[id].Language != language {
			continue
		}
		for _, entry := range entries {
			if slices.Contains(keys, Key(entry.Word)) ||
				slices.Contains(keys, Key(entry.Lemma)) ||
				slices.Contains(keys, Key(entry.Transliteration)) {
				copied := entry
				matches = append(matches, &copied)
			}
		}
	}
	return matches
}

func (repository *fakeRepository) Lookup(_ context.Context, key string, language Language) ([]*Entry, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	return repository.matching([]string{key}, language), nil
}

func (repository *fakeRepository) CountMatches(_ context.Context, keys []string, language Language) (int, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	return len(repository.matching(keys, language)), nil
}
