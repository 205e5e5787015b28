package emailbuilder

import (
	"fmt"
	"strings"
)

// BuildMJML renders an ordered block list into a complete MJML document:
// a single section and column wrapping one MJML component per block.
func BuildMJML(blocks Blocks) string {
	var sb strings.Builder
	sb.WriteString("<mjml>\n  <mj-body>\n    <mj-section>\n      <mj-column>\n")
	for _, block := range blocks {
		mjml := blockToMJML(block)
		if mjml == "" {
			continue
		}
		sb.WriteString("        ")
		sb.WriteString(mjml)
		sb.WriteString("\n")
	}
	sb.WriteString("      </mj-column>\n    </mj-section>\n  </mj-body>\n</mjml>")
	return sb.String()
}

// blockToMJML converts a single block to its MJML component. Text and button
// content is emitted unescaped because it may legitimately contain HTML.
func blockToMJML(block Block) string {
	switch block.Kind {
	case BlockText:
		return fmt.Sprintf("<mj-text>%s</mj-text>", block.Content)
	case BlockButton:
		return fmt.Sprintf(`<mj-button href="%s">%s</mj-button>`, escapeAttribute(block.URL), block.Label)
	case BlockImage:
		var attrs strings.Builder
		attrs.WriteString(fmt.Sprintf(` src="%s"`, escapeAttribute(block.Src)))
		if block.Alt != "" {
			attrs.WriteString(fmt.Sprintf(` alt="%s"`, escapeAttribute(block.Alt)))
		}
		if block.Width != "" {
			attrs.WriteString(fmt.Sprintf(` width="%s"`, escapeAttribute(block.Width)))
		}
		return fmt.Sprintf("<mj-image%s />", attrs.String())
	case BlockDivider:
		return "<mj-divider />"
	case BlockSpacer:
		height := block.Height
		if height == "" {
			height = "20px"
		}
		return fmt.Sprintf(`<mj-spacer height="%s" />`, escapeAttribute(height))
	}
	return ""
}

// escapeAttribute escapes a value for use inside a double-quoted MJML
// attribute. Ampersands in values that look like URLs are preserved so
// query parameters survive the round trip through the MJML compiler.
func escapeAttribute(value string) string {
	looksLikeURL := strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://") || strings.HasPrefix(value, "//")
	if !looksLikeURL {
		value = strings.ReplaceAll(value, "&", "&amp;")
	}
	value = strings.ReplaceAll(value, "\"", "&quot;")
	value = strings.ReplaceAll(value, "'", "&#39;")
	value = strings.ReplaceAll(value, "<", "&lt;")
	value = strings.ReplaceAll(value, ">", "&gt;")
	return value
}
