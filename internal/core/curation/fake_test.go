// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package curation

import (
	"context"
	"errors"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/taibuivan/canon/internal/platform/apperr"
	"github.com/taibuivan/canon/pkg/pointer"
)

type fakeRepository struct {
	mu      sync.Mutex
	items   map[string]*Content
	sources []*Source
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{items: make(map[string]*Content)}
}

// seededRepository mirrors the curated rows of the seed migration.
func seededRepository() *fakeRepository {
	repository := newFakeRepository()
	repository.sources = []*Source{
		{ID: "tyndale-bulletin", Name: "Tyndale Bulletin", Weight: 5, Active: true},
		{ID: "jets", Name: "Journal of the Evangelical Theological Society", Weight: 4, Active: true},
		{ID: "themelios", Name: "Themelios", Weight: 3, Active: true},
	}

	day := func(month time.Month, day int) time.Time { return time.Date(2025, month, day, 0, 0, 0, 0, time.UTC) }
	for _, item := range []*Content{
		{ID: "exile-return", Section: "bible-history", Title: "Exile, Return, and the Second Temple", Tags: []string{"history", "second-temple"}, MaterialLevel: LevelIntermediate, PublishedAt: day(1, 15), SourceID: pointer.To("tyndale-bulletin")},
		{ID: "medieval-transmission", Section: "bible-history", Title: "Manuscript Transmission in the Middle Ages", Tags: []string{"manuscripts", "transmission"}, MaterialLevel: LevelAdvanced, PublishedAt: day(2, 10), SourceID: pointer.To("jets")},
		{ID: "tradition-scripture", Section: "catholicism", Title: "Tradition and Scripture", Tags: []string{"authority", "tradition"}, MaterialLevel: LevelIntermediate, PublishedAt: day(3, 1), SourceID: pointer.To("themelios")},
		{ID: "council-nicaea", Section: "councils", Title: "The Council of Nicaea (325)", Tags: []string{"councils", "christology"}, MaterialLevel: LevelIntroductory, PublishedAt: day(3, 20)},
	} {
		repository.items[item.ID] = item
	}
	return repository
}

func (repository *fakeRepository) hasSource(id *string) bool {
	if id == nil {
		return true
	}
	return slices.ContainsFunc(repository.sources, func(source *Source) bool { return source.ID == *id })
}

func (repository *fakeRepository) List(_ context.Context, filter Filter, limit, offset int) ([]*Content, int, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	matched := []*Content{}
	for _, item := range repository.items {
		if filter.Section != "" && item.Section != filter.Section {
			continue
		}
		if filter.SourceID != "" && (item.SourceID == nil || *item.SourceID != filter.SourceID) {
			continue
		}
		if filter.Tag != "" && !slices.Contains(item.Tags, filter.Tag) {
			continue
		}
		copied := *item
		matched = append(matched, &copied)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].PublishedAt.After(matched[j].PublishedAt) })

	total := len(matched)
	if offset >= total {
		return []*Content{}, total, nil
	}
	return matched[offset:min(offset+limit, total)], total, nil
}

func (repository *fakeRepository) FindByID(_ context.Context, id string) (*Content, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	item, ok := repository.items[id]
	if !ok {
		return nil, apperr.NotFound(resourceContent)
	}
	copied := *item
	return &copied, nil
}

func (repository *fakeRepository) Sections(_ context.Context) ([]Section, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	counts := map[string]int{}
	for _, item := range repository.items {
		counts[item.Section]++
	}
	sections := []Section{}
	for name, count := range counts {
		sections = append(sections, Section{Section: name, Count: count})
	}
	sort.Slice(sections, func(i, j int) bool { return sections[i].Section < sections[j].Section })
	return sections, nil
}

func (repository *fakeRepository) Sources(_ context.Context) ([]*Source, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	return slices.Clone(repository.sources), nil
}

func (repository *fakeRepository) Create(_ context.Context, content *Content) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, exists := repository.items[content.ID]; exists {
		return apperr.Conflict("Curated content with this id already exists")
	}
	if !repository.hasSource(content.SourceID) {
		return apperr.NotFound(resourceSource)
	}
	stored := *content
	repository.items[content.ID] = &stored
	return nil
}

func (repository *fakeRepository) Update(_ context.Context, content *Content) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.items[content.ID]; !ok {
		return apperr.NotFound(resourceContent)
	}
	if !repository.hasSource(content.SourceID) {
		return apperr.NotFound(resourceSource)
	}
	stored := *content
	repository.items[content.ID] = &stored
	return nil
}

func (repository *fakeRepository) Delete(_ context.Context, id string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.items[id]; !ok {
		return apperr.NotFound(resourceContent)
	}
	delete(repository.items, id)
	return nil
}

// fakeFetcher serves canned pages by URL.
type fakeFetcher map[string]string

func (fetcher fakeFetcher) Fetch(_ context.Context, pageURL string) ([]byte, error) {
	page, ok := fetcher[pageURL]
	if !ok {
		return nil, errors.New("connection refused")
	}
	return []byte(page), nil
}
