package emailbuilder

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var multiSpaceRegex = regexp.MustCompile(`[ \t]+`)

// TextVersion derives a plain-text alternative from compiled HTML, used as
// the text/plain part of outgoing messages. Anchors are rendered as
// "label (url)" so destinations survive the conversion; style and script
// content is dropped.
func TextVersion(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}

	doc.Find("style, script, title").Remove()

	doc.Find("a").Each(func(_ int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		label := strings.TrimSpace(s.Text())
		if !ok || href == "" || label == "" || strings.HasPrefix(href, "#") {
			return
		}
		s.SetText(fmt.Sprintf("%s (%s)", label, href))
	})

	raw := doc.Find("body").Text()
	if strings.TrimSpace(raw) == "" {
		raw = doc.Text()
	}

	// Collapse the indentation noise of table-based HTML: trim each line,
	// squeeze runs of spaces, keep at most one blank line between chunks.
	var lines []string
	lastBlank := false
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(multiSpaceRegex.ReplaceAllString(line, " "))
		if line == "" {
			if len(lines) > 0 && !lastBlank {
				lines = append(lines, "")
				lastBlank = true
			}
			continue
		}
		lines = append(lines, line)
		lastBlank = false
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return strings.Join(lines, "\n")
}
