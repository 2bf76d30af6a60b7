// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package manuscript

import (
	"context"
	"slices"

	"github.com/taibuivan/canon/internal/platform/apperr"
)

func variant(id, book string, chapter, verse int, manuscriptID string, kind VariantType, significant bool, ratio float64) *Variant {
	return &Variant{
		ID: id, Book: book, Chapter: chapter, Verse: verse, ManuscriptID: manuscriptID,
		VariantType: kind, Reading: id, Significant: significant, AgreementRatio: ratio,
	}
}

// seededVariants mirrors the variants shipped in the seed migration.
func seededVariants() []*Variant {
	return []*Variant{
		variant("jn1-01", "John", 1, 3, "sinaiticus", VariantOrthographic, false, 0.95),
		variant("jn1-02", "John", 1, 4, "p66", VariantOrthographic, false, 0.95),
		variant("jn1-03", "John", 1, 9, "vaticanus", VariantOrthographic, false, 0.90),
		variant("jn1-04", "John", 1, 13, "alexandrinus", VariantMorphological, false, 0.90),
		variant("jn1-05", "John", 1, 15, "p75", VariantMorphological, false, 0.85),
		variant("jn1-06", "John", 1, 18, "alexandrinus", VariantLexical, true, 0.85),
		variant("jn1-07", "John", 1, 27, "alexandrinus", VariantStructural, false, 0.80),
		variant("jn1-08", "John", 1, 28, "sinaiticus", VariantStructural, false, 0.80),
		variant("is53-01", "Isaiah", 53, 2, "1qisaa", VariantOrthographic, false, 0.96),
		variant("is53-02", "Isaiah", 53, 3, "1qisaa", VariantOrthographic, false, 0.96),
		variant("is53-03", "Isaiah", 53, 4, "1qisaa", VariantOrthographic, false, 0.96),
		variant("is53-04", "Isaiah", 53, 5, "1qisaa", VariantOrthographic, false, 0.96),
		variant("is53-05", "Isaiah", 53, 5, "1qisaa", VariantOrthographic, false, 0.96),
		variant("is53-06", "Isaiah", 53, 6, "1qisaa", VariantOrthographic, false, 0.96),
		variant("is53-07", "Isaiah", 53, 7, "1qisaa", VariantOrthographic, false, 0.96),
		variant("is53-08", "Isaiah", 53, 8, "1qisaa", VariantOrthographic, false, 0.96),
		variant("is53-09", "Isaiah", 53, 9, "1qisaa", VariantOrthographic, false, 0.96),
		variant("is53-10", "Isaiah", 53, 10, "aleppo", VariantMorphological, false, 0.96),
		variant("is53-11", "Isaiah", 53, 11, "1qisaa", VariantMorphological, false, 0.96),
		variant("is53-12", "Isaiah", 53, 5, "lxx", VariantStructural, false, 0.864),
	}
}

type fakeRepository struct {
	manuscripts []*Manuscript
	verses      []*Verse
	variants    []*Variant
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		manuscripts: []*Manuscript{
			{ID: "1qisaa", Name: "Great Isaiah Scroll", Abbreviation: "1QIsaa", Testament: TestamentOld, Language: "hebrew"},
			{ID: "leningrad", Name: "Codex Leningradensis", Abbreviation: "L", Testament: TestamentOld, Language: "hebrew"},
			{ID: "alexandrinus", Name: "Codex Alexandrinus", Abbreviation: "A", Testament: TestamentNew, Language: "greek"},
			{ID: "vaticanus", Name: "Codex Vaticanus", Abbreviation: "B", Testament: TestamentNew, Language: "greek"},
		},
		verses: []*Verse{
			{ManuscriptID: "vaticanus", Book: "John", Chapter: 1, Verse: 18, Text: "μονογενὴς θεὸς"},
			{ManuscriptID: "alexandrinus", Book: "John", Chapter: 1, Verse: 18, Text: "μονογενὴς υἱὸς"},
			{ManuscriptID: "vaticanus", Book: "John", Chapter: 1, Verse: 1, Text: "Ἐν ἀρχῇ ἦν ὁ λόγος"},
			{ManuscriptID: "leningrad", Book: "Isaiah", Chapter: 53, Verse: 5, Text: "וְהוּא מְחֹלָל"},
		},
		variants: seededVariants(),
	}
}

func (repository *fakeRepository) List(_ context.Context, testament Testament) ([]*Manuscript, error) {
	manuscripts := []*Manuscript{}
	for _, manuscript := range repository.manuscripts {
		if testament == "" || manuscript.Testament == testament {
			manuscripts = append(manuscripts, manuscript)
		}
	}
	return manuscripts, nil
}

func (repository *fakeRepository) FindByID(_ context.Context, id string) (*Manuscript, error) {
	for _, manuscript := range repository.manuscripts {
		if manuscript.ID == id {
			return manuscript, nil
		}
	}
	return nil, apperr.NotFound(resourceManuscript)
}

func (repository *fakeRepository) Verses(_ context.Context, manuscriptID, book string, chapter *int) ([]*Verse, error) {
	verses := []*Verse{}
	for _, verse := range repository.verses {
		if verse.ManuscriptID != manuscriptID || (book != "" && verse.Book != book) {
			continue
		}
		if chapter != nil && verse.Chapter != *chapter {
			continue
		}
		verses = append(verses, verse)
	}
	slices.SortFunc(verses, func(a, b *Verse) int { return a.Verse - b.Verse })
	return verses, nil
}

func (repository *fakeRepository) Readings(ctx context.Context, book string, chapter, verse int, manuscriptIDs []string) ([]Reading, error) {
	readings := []Reading{}
	for _, candidate := range repository.verses {
		if candidate.Book != book || candidate.Chapter != chapter || candidate.Verse != verse {
			continue
		}
		if len(manuscriptIDs) > 0 && !slices.Contains(manuscriptIDs, candidate.ManuscriptID) {
			continue
		}
		manuscript, _ := repository.FindByID(ctx, candidate.ManuscriptID)
		readings = append(readings, Reading{
			ManuscriptID: manuscript.ID,
			Name:         manuscript.Name,
			Abbreviation: manuscript.Abbreviation,
			Text:         candidate.Text,
		})
	}
	return readings, nil
}

func (repository *fakeRepository) Variants(_ context.Context, filter VariantFilter) ([]*Variant, error) {
	variants := []*Variant{}
	for _, variant := range repository.variants {
		if filter.Book != "" && variant.Book != filter.Book {
			continue
		}
		if filter.Chapter != nil && variant.Chapter != *filter.Chapter {
			continue
		}
		if filter.Verse != nil && variant.Verse != *filter.Verse {
			continue
		}
		variants = append(variants, variant)
	}
	return variants, nil
}
