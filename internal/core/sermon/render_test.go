// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sermon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderMarkdown(t *testing.T) {
	sermon := &Sermon{
		Title:       "A justiça revelada",
		CentralIdea: "God's righteousness is received by faith.",
		Outline: []Division{
			{Title: "The need", Summary: "All have sinned.", Points: []string{"Jew", "Gentile"}},
			{Title: "The gift"},
		},
		Applications: []Application{{Title: "Rest", Body: "Stop earning."}},
	}

	expected := "# A justiça revelada\n" +
		"\n> God's righteousness is received by faith.\n" +
		"\n## 1. The need\n" +
		"\nAll have sinned.\n" +
		"\n- Jew\n- Gentile\n" +
		"\n## 2. The gift\n" +
		"\n## Applications\n" +
		"\n### Rest\n" +
		"\nStop earning.\n"

	assert.Equal(t, expected, RenderMarkdown(sermon))
}

func TestRenderMarkdown_DraftHasOnlyTitle(t *testing.T) {
	assert.Equal(t, "# Draft\n", RenderMarkdown(&Sermon{Title: " Draft "}))
}
