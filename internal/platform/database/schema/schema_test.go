// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColumns_LowercaseAndUnique(t *testing.T) {
	registries := map[string][]string{
		BibleTranslation.Table:         BibleTranslation.Columns(),
		BibleVerse.Table:               BibleVerse.Columns(),
		StudySession.Table:             StudySession.Columns(),
		StudyNote.Table:                StudyNote.Columns(),
		StudyHighlight.Table:           StudyHighlight.Columns(),
		StudySermon.Table:              StudySermon.Columns(),
		LexiconLexicon.Table:           LexiconLexicon.Columns(),
		LexiconEntry.Table:             LexiconEntry.Columns(),
		CriticismManuscript.Table:      CriticismManuscript.Columns(),
		CriticismManuscriptVerse.Table: CriticismManuscriptVerse.Columns(),
		CriticismVariant.Table:         CriticismVariant.Columns(),
		CurationSource.Table:           CurationSource.Columns(),
		CurationContent.Table:          CurationContent.Columns(),
	}

	for table, columns := range registries {
		t.Run(table, func(t *testing.T) {
			assert.Contains(t, table, ".")
			seen := make(map[string]bool, len(columns))
			for _, column := range columns {
				assert.Equal(t, strings.ToLower(column), column)
				assert.NotContains(t, column, "_")
				assert.False(t, seen[column], "duplicate column %s", column)
				seen[column] = true
			}
		})
	}
}

func TestList(t *testing.T) {
	assert.Equal(t, "translation, book, chapter, verse, text", List(BibleVerse.Columns()))
}
