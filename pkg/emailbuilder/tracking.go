package emailbuilder

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// TrackingConfig controls which tracking instrumentation InjectTracking adds.
type TrackingConfig struct {
	TrackOpens  bool `json:"track_opens"`
	TrackClicks bool `json:"track_clicks"`
}

var (
	hrefRegex      = regexp.MustCompile(`(<a[^>]*\s+href=["'])([^"']*)(["'])`)
	bodyCloseRegex = regexp.MustCompile(`(?i)(</body>)`)
)

// InjectTracking rewrites anchor hrefs through the click-redirect endpoint
// and appends an open-tracking pixel, per cfg. Link indexes are assigned in
// document order over the rewritten anchors only, so the click endpoint can
// resolve an index back to a URL deterministically. With both flags off the
// HTML is returned unchanged.
func InjectTracking(html, token, baseURL string, cfg TrackingConfig) string {
	if !cfg.TrackOpens && !cfg.TrackClicks {
		return html
	}

	updated := html

	if cfg.TrackClicks {
		linkIndex := 0
		updated = hrefRegex.ReplaceAllStringFunc(updated, func(match string) string {
			parts := hrefRegex.FindStringSubmatch(match)
			if len(parts) != 4 {
				return match
			}

			originalURL := parts[2]
			if isNonTrackableURL(originalURL) {
				return match
			}

			trackedURL := fmt.Sprintf("%s/t/%s/c/%d?url=%s", baseURL, token, linkIndex, url.QueryEscape(originalURL))
			linkIndex++

			return parts[1] + trackedURL + parts[3]
		})
	}

	if cfg.TrackOpens {
		pixel := fmt.Sprintf(`<img src="%s/t/%s/open.gif" alt="" width="1" height="1" style="display:none;">`, baseURL, token)
		if bodyCloseRegex.MatchString(updated) {
			updated = bodyCloseRegex.ReplaceAllString(updated, pixel+"$1")
		} else {
			updated = updated + pixel
		}
	}

	return updated
}

// isNonTrackableURL reports whether a URL must not be wrapped in the click
// redirect: empty values, template placeholders, anchors, special protocol
// links whose behavior a redirect would break, and URLs already routed
// through the tracking endpoint.
func isNonTrackableURL(urlStr string) bool {
	if urlStr == "" {
		return true
	}

	if strings.Contains(urlStr, "{{") || strings.Contains(urlStr, "{%") {
		return true
	}

	if strings.HasPrefix(urlStr, "#") {
		return true
	}

	lowerURL := strings.ToLower(urlStr)
	nonTrackableProtocols := []string{
		"mailto:",
		"tel:",
		"sms:",
		"javascript:",
		"data:",
		"blob:",
		"file:",
	}
	for _, protocol := range nonTrackableProtocols {
		if strings.HasPrefix(lowerURL, protocol) {
			return true
		}
	}

	if strings.Contains(lowerURL, "/t/") {
		return true
	}

	return false
}
