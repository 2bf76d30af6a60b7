// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package bible

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/canon/internal/platform/apperr"
)

func TestResolveDocument(t *testing.T) {
	tests := []struct {
		name     string
		document string
		book     string
		chapter  int
		want     string
	}{
		{
			name:     "keyed books with chapters record and keyed chapters",
			document: `{"books":{"Genesis":{"chapters":{"1":{"verses":[{"number":1,"text":"In the beginning"}]}}}}}`,
			book:     "Genesis",
			chapter:  1,
			want:     `[{"number":1,"text":"In the beginning"}]`,
		},
		{
			name:     "keyed books mapping straight to chapters",
			document: `{"books":{"Ruth":{"2":[{"number":1,"text":"Naomi"}]}}}`,
			book:     "Ruth",
			chapter:  2,
			want:     `[{"number":1,"text":"Naomi"}]`,
		},
		{
			name:     "ordered books scanned by name independent of position",
			document: `{"books":[{"name":"Luke","chapters":[]},{"name":"Mark","chapters":[{"number":1,"verses":[{"number":1,"text":"The beginning of the gospel"}]}]}]}`,
			book:     "Mark",
			chapter:  1,
			want:     `[{"number":1,"text":"The beginning of the gospel"}]`,
		},
		{
			name:     "ordered chapters matched by number not position",
			document: `{"books":[{"name":"John","chapters":[{"number":3,"verses":["three"]},{"number":1,"verses":["one"]}]}]}`,
			book:     "John",
			chapter:  1,
			want:     `["one"]`,
		},
		{
			name:     "chapter number given as float",
			document: `{"books":[{"name":"John","chapters":[{"number":2.0,"verses":["two"]}]}]}`,
			book:     "John",
			chapter:  2,
			want:     `["two"]`,
		},
		{
			name:     "positional fallback to bare verse list",
			document: `{"books":{"Jude":[[{"number":1,"text":"Jude, a servant"}]]}}`,
			book:     "Jude",
			chapter:  1,
			want:     `[{"number":1,"text":"Jude, a servant"}]`,
		},
		{
			name:     "positional fallback unwraps verses record",
			document: `{"books":{"Acts":[{"title":"one","verses":["a"]},{"title":"two","verses":["b"]}]}}`,
			book:     "Acts",
			chapter:  2,
			want:     `["b"]`,
		},
		{
			name:     "number match without verses falls back to position",
			document: `{"books":{"Acts":[{"number":1},{"number":9,"verses":["second"]}]}}`,
			book:     "Acts",
			chapter:  1,
			want:     `{"number":1}`,
		},
		{
			name:     "verses passed through verbatim",
			document: `{"books":{"Psalms":{"23":{"verses":{"1":"The LORD is my shepherd"}}}}}`,
			book:     "Psalms",
			chapter:  23,
			want:     `{"1":"The LORD is my shepherd"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveDocument(json.RawMessage(tt.document), tt.book, tt.chapter)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(got))
		})
	}
}

func TestResolveDocument_NotFound(t *testing.T) {
	tests := []struct {
		name     string
		document string
		book     string
		chapter  int
		wantErr  error
	}{
		{"missing books member", `{}`, "Genesis", 1, ErrBookNotFound},
		{"books is a scalar", `{"books":"Genesis"}`, "Genesis", 1, ErrBookNotFound},
		{"book absent from keyed books", `{"books":{"Exodus":{}}}`, "Genesis", 1, ErrBookNotFound},
		{"book names are case sensitive", `{"books":[{"name":"genesis","chapters":[[]]}]}`, "Genesis", 1, ErrBookNotFound},
		{"ordered book without chapters", `{"books":[{"name":"Genesis"}]}`, "Genesis", 1, ErrBookNotFound},
		{"keyed book set to null", `{"books":{"Genesis":null}}`, "Genesis", 1, ErrBookNotFound},
		{"chapter key absent", `{"books":{"Genesis":{"1":[]}}}`, "Genesis", 2, ErrChapterNotFound},
		{"chapter beyond ordered list", `{"books":{"Genesis":[{"number":1,"verses":[]}]}}`, "Genesis", 5, ErrChapterNotFound},
		{"chapters is a scalar", `{"books":{"Genesis":{"chapters":7}}}`, "Genesis", 1, ErrChapterNotFound},
		{"positional element with null verses", `{"books":{"Genesis":[{"verses":null}]}}`, "Genesis", 1, ErrChapterNotFound},
		{"keyed chapter with null verses", `{"books":{"Genesis":{"1":{"verses":null}}}}`, "Genesis", 1, ErrChapterNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveDocument(json.RawMessage(tt.document), tt.book, tt.chapter)
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err)
			assert.True(t, apperr.IsNotFound(err))
		})
	}
}

func TestNewContainer_Shapes(t *testing.T) {
	assert.Equal(t, shapeKeyed, newContainer(json.RawMessage(` {"a":1}`)).shape)
	assert.Equal(t, shapeOrdered, newContainer(json.RawMessage(`[1,2]`)).shape)
	assert.Equal(t, shapeNone, newContainer(json.RawMessage(`"x"`)).shape)
	assert.Equal(t, shapeNone, newContainer(nil).shape)

	ordered := newContainer(json.RawMessage(`[{"name":"Mark"},3]`))
	require.Len(t, ordered.entries, 2)
	assert.True(t, ordered.entries[0].stringField("name", "Mark"))
	assert.Nil(t, ordered.entries[1].fields)
}
