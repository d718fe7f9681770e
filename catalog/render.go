package catalog

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonwraymond/tooldiscovery/tooldoc"
)

// Render builds a markdown tool description from documentation parts.
// Examples whose args carry a "query" string are shown as GraphQL blocks,
// followed by their variables when present.
func Render(summary, notes string, examples []tooldoc.ToolExample) string {
	var sb strings.Builder
	sb.WriteString(strings.TrimSpace(summary))

	if notes = strings.TrimSpace(notes); notes != "" {
		sb.WriteString("\n\n")
		sb.WriteString(notes)
	}

	if len(examples) > 0 {
		sb.WriteString("\n\n## Common Operation Patterns")
	}
	for _, ex := range examples {
		title := ex.Title
		if title == "" {
			title = ex.ID
		}
		fmt.Fprintf(&sb, "\n\n### %s", title)
		if ex.Description != "" {
			fmt.Fprintf(&sb, "\n%s", ex.Description)
		}
		if q, ok := ex.Args["query"].(string); ok {
			fmt.Fprintf(&sb, "\n```graphql\n%s\n```", q)
		}
		if vars, ok := ex.Args["variables"]; ok && vars != nil {
			if b, err := json.Marshal(vars); err == nil {
				fmt.Fprintf(&sb, "\nVariables: `%s`", b)
			}
		}
		if ex.ResultHint != "" {
			fmt.Fprintf(&sb, "\n%s", ex.ResultHint)
		}
	}
	return sb.String()
}
