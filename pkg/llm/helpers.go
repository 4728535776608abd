package llm

import (
	"fmt"
	"strings"
)

func buildUserPrompt(input ValuationInput) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Vehicle: %s %s\n", input.Brand, input.Model))
	if input.KMDriven > 0 {
		sb.WriteString(fmt.Sprintf("Kilometers driven: %d\n", input.KMDriven))
	}
	sb.WriteString("\nHistorical transaction summary:\n")
	sb.WriteString(input.Insights)
	sb.WriteString("\n")
	if input.MarginSummary != "" {
		sb.WriteString(fmt.Sprintf("\nMargin signal: %s\n", input.MarginSummary))
	}
	return sb.String()
}

func cleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	// Some model responses include extra prose around JSON.
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		content = content[start : end+1]
	}
	return content
}
