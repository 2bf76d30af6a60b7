// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package assistant

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// defaultStage is assumed when the query carries no stage.
const defaultStage = "observation"

// Warning is returned when homiletics is raised before interpretation is done.
const Warning = "Warning: do not advance to application or homiletics before completing interpretation stages."

var (
	// interpretationStages must be finished before application or preaching.
	interpretationStages = []string{"observation", "grammar", "semantics"}

	// homileticTokens spot application or preaching in English and Portuguese.
	homileticTokens = []string{"serm", "aplica", "prega", "apply", "preach"}
)

/*
Compose builds the answer to query from the recorded counts.

Description: The reply names the passage and the current stage. A warning is
added when the student is still interpreting the text but asks about
sermons, application or preaching.
*/
func Compose(query Query, counts Counts) Answer {
	stage := strings.TrimSpace(query.Context.Stage)
	if stage == "" {
		stage = defaultStage
	}

	book := strings.TrimSpace(query.Context.Book)
	if book == "" {
		book = "text"
	}

	chapter := ""
	if query.Context.Chapter > 0 {
		chapter = strconv.Itoa(query.Context.Chapter)
	}

	answer := Answer{
		Answer:         fmt.Sprintf("Method guidance for %s %s: focus on %s and let the biblical text govern your next step.", book, chapter, stage),
		NoteCount:      counts.Notes,
		HighlightCount: counts.Highlights,
		LexiconHits:    counts.LexiconHits,
	}

	if slices.Contains(interpretationStages, stage) && mentionsHomiletics(query.Query) {
		answer.Warning = Warning
	}
	return answer
}

func mentionsHomiletics(text string) bool {
	text = strings.ToLower(text)
	return slices.ContainsFunc(homileticTokens, func(token string) bool {
		return strings.Contains(text, token)
	})
}
