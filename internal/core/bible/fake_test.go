// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package bible

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/taibuivan/canon/internal/platform/apperr"
)

// fakeRepository is an in-memory [Repository] for service and handler tests.
type fakeRepository struct {
	mu           sync.Mutex
	translations map[string]*Translation
	verses       map[string]VerseRecord
	failWith     error
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		translations: make(map[string]*Translation),
		verses:       make(map[string]VerseRecord),
	}
}

func verseKey(translation string, verse VerseRecord) string {
	return fmt.Sprintf("%s|%s|%d|%d", translation, verse.Book, verse.Chapter, verse.Verse)
}

func (repository *fakeRepository) ListTranslations(context.Context) ([]TranslationSummary, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	summaries := []TranslationSummary{}
	for _, translation := range repository.translations {
		summaries = append(summaries, translation.Summary())
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].ID < summaries[j].ID })
	return summaries, nil
}

func (repository *fakeRepository) UpsertTranslation(_ context.Context, translation *Translation) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if repository.failWith != nil {
		return repository.failWith
	}
	stored := *translation
	repository.translations[translation.ID] = &stored
	return nil
}

func (repository *fakeRepository) FindTranslation(_ context.Context, id string) (*Translation, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	translation, ok := repository.translations[id]
	if !ok {
		return nil, apperr.NotFound("Translation")
	}
	return translation, nil
}

func (repository *fakeRepository) FindTranslationByReference(ctx context.Context, reference string) (*Translation, error) {
	if translation, err := repository.FindTranslation(ctx, reference); err == nil {
		return translation, nil
	}

	repository.mu.Lock()
	defer repository.mu.Unlock()

	for _, translation := range repository.translations {
		if translation.Abbreviation == reference {
			return translation, nil
		}
	}
	return nil, apperr.NotFound("Translation")
}

func (repository *fakeRepository) DeleteTranslation(_ context.Context, id string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.translations[id]; !ok {
		return apperr.NotFound("Translation")
	}
	delete(repository.translations, id)
	return nil
}

func (repository *fakeRepository) ChapterVerses(_ context.Context, translation, book string, chapter int) ([]Verse, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if repository.failWith != nil {
		return nil, repository.failWith
	}

	verses := []Verse{}
	for key, record := range repository.verses {
		if key == verseKey(translation, record) && record.Book == book && record.Chapter == chapter {
			verses = append(verses, Verse{Number: record.Verse, Text: record.Text})
		}
	}
	sort.Slice(verses, func(i, j int) bool { return verses[i].Number < verses[j].Number })
	return verses, nil
}

func (repository *fakeRepository) UpsertVerses(_ context.Context, translation string, verses []VerseRecord) (int, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	for _, verse := range verses {
		repository.verses[verseKey(translation, verse)] = verse
	}
	return len(verses), nil
}

func (repository *fakeRepository) ListBooks(_ context.Context, translation string) ([]BookSummary, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	chapters := map[string]map[int]bool{}
	counts := map[string]int{}
	for key, record := range repository.verses {
		if key != verseKey(translation, record) {
			continue
		}
		if chapters[record.Book] == nil {
			chapters[record.Book] = map[int]bool{}
		}
		chapters[record.Book][record.Chapter] = true
		counts[record.Book]++
	}

	books := []BookSummary{}
	for book, set := range chapters {
		books = append(books, BookSummary{Book: book, Chapters: len(set), Verses: counts[book]})
	}
	sort.Slice(books, func(i, j int) bool { return books[i].Book < books[j].Book })
	return books, nil
}
