package emailbuilder

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	mjmlgo "github.com/Boostport/mjml-go"
	"github.com/osteele/liquid"
)

// Security limits for Liquid rendering of block content.
const (
	liquidRenderTimeout = 5 * time.Second
	maxBlockContentSize = 100 * 1024 // 100KB
)

// Compile renders a block list into email-ready HTML: Liquid markup in
// text content, button labels and button URLs is rendered against data,
// the personalized blocks become an MJML document, and the document is
// compiled to responsive HTML.
func Compile(blocks Blocks, data map[string]string) (string, error) {
	if err := blocks.Validate(); err != nil {
		return "", err
	}

	rendered := make(Blocks, len(blocks))
	for i, block := range blocks {
		rendered[i] = block
		switch block.Kind {
		case BlockText:
			content, err := renderLiquid(block.Content, data)
			if err != nil {
				return "", fmt.Errorf("block %d: %w", i, err)
			}
			rendered[i].Content = content
		case BlockButton:
			label, err := renderLiquid(block.Label, data)
			if err != nil {
				return "", fmt.Errorf("block %d: %w", i, err)
			}
			url, err := renderLiquid(block.URL, data)
			if err != nil {
				return "", fmt.Errorf("block %d: %w", i, err)
			}
			rendered[i].Label = label
			rendered[i].URL = url
		}
	}

	html, err := mjmlgo.ToHTML(context.Background(), BuildMJML(rendered))
	if err != nil {
		return "", fmt.Errorf("mjml compilation failed: %w", err)
	}

	return decodeEntitiesInURLAttributes(html), nil
}

// renderLiquid renders Liquid markup in content against data. Content
// without Liquid markup is returned untouched. Rendering runs in a
// goroutine guarded by a timeout so a pathological template cannot stall
// a whole campaign.
func renderLiquid(content string, data map[string]string) (string, error) {
	if !strings.Contains(content, "{{") && !strings.Contains(content, "{%") {
		return content, nil
	}

	if len(content) > maxBlockContentSize {
		return "", fmt.Errorf("block content size (%d bytes) exceeds maximum allowed size (%d bytes)", len(content), maxBlockContentSize)
	}

	bindings := make(map[string]interface{}, len(data))
	for k, v := range data {
		bindings[k] = v
	}

	ctx, cancel := context.WithTimeout(context.Background(), liquidRenderTimeout)
	defer cancel()

	resultChan := make(chan string, 1)
	errorChan := make(chan error, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				errorChan <- fmt.Errorf("panic during liquid rendering: %v", r)
			}
		}()

		result, err := liquid.NewEngine().ParseAndRenderString(content, bindings)
		if err != nil {
			errorChan <- fmt.Errorf("liquid rendering failed: %w", err)
			return
		}
		resultChan <- result
	}()

	select {
	case result := <-resultChan:
		return result, nil
	case err := <-errorChan:
		return "", err
	case <-ctx.Done():
		return "", fmt.Errorf("liquid rendering timeout after %v", liquidRenderTimeout)
	}
}

// urlAttrRegex matches href and src attributes so their values can be
// entity-decoded after MJML compilation.
var urlAttrRegex = regexp.MustCompile(`((?:href|src)=["'])([^"']+)(["'])`)

// decodeEntitiesInURLAttributes restores & inside href and src attributes.
// The MJML compiler leaves &amp; encoded in attribute values, which breaks
// URLs carrying query parameters.
func decodeEntitiesInURLAttributes(html string) string {
	return urlAttrRegex.ReplaceAllStringFunc(html, func(match string) string {
		parts := urlAttrRegex.FindStringSubmatch(match)
		if len(parts) != 4 {
			return match
		}

		decoded := parts[2]
		decoded = strings.ReplaceAll(decoded, "&amp;", "&")
		decoded = strings.ReplaceAll(decoded, "&#39;", "'")

		return parts[1] + decoded + parts[3]
	})
}
