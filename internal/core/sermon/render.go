// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sermon

import (
	"fmt"
	"strings"
)

/*
RenderMarkdown writes the sermon as a Markdown manuscript.

Description: Title as the document heading, the central idea as a quote,
one numbered section per division and a closing applications section.
Empty parts are skipped so a draft sermon still renders cleanly.
*/
func RenderMarkdown(sermon *Sermon) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "# %s\n", strings.TrimSpace(sermon.Title))

	if idea := strings.TrimSpace(sermon.CentralIdea); idea != "" {
		fmt.Fprintf(&builder, "\n> %s\n", idea)
	}

	for index, division := range sermon.Outline {
		fmt.Fprintf(&builder, "\n## %d. %s\n", index+1, strings.TrimSpace(division.Title))
		if summary := strings.TrimSpace(division.Summary); summary != "" {
			fmt.Fprintf(&builder, "\n%s\n", summary)
		}
		if len(division.Points) > 0 {
			builder.WriteString("\n")
			for _, point := range division.Points {
				fmt.Fprintf(&builder, "- %s\n", strings.TrimSpace(point))
			}
		}
	}

	if len(sermon.Applications) > 0 {
		builder.WriteString("\n## Applications\n")
		for _, application := range sermon.Applications {
			fmt.Fprintf(&builder, "\n### %s\n", strings.TrimSpace(application.Title))
			if body := strings.TrimSpace(application.Body); body != "" {
				fmt.Fprintf(&builder, "\n%s\n", body)
			}
		}
	}

	return builder.String()
}
