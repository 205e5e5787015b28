package botdetection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsBotUserAgent(t *testing.T) {
	tests := []struct {
		name      string
		userAgent string
		isBot     bool
	}{
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"googlebot", "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)", true},
		{"outlook safelinks", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) SafeLinks/1.0", true},
		{"proofpoint", "Proofpoint URL Defense scanner", true},
		{"curl", "curl/8.4.0", true},
		{"wget", "Wget/1.21", true},
		{"python requests", "python-requests/2.31.0", true},
		{"go http client", "Go-http-client/2.0", true},
		{"headless chrome", "Mozilla/5.0 HeadlessChrome/119.0", true},
		{"desktop chrome", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36", false},
		{"iphone mail", "Mozilla/5.0 (iPhone; CPU iPhone OS 17_1 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko)", false},
		{"thunderbird", "Mozilla/5.0 (X11; Linux x86_64; rv:115.0) Gecko/20100101 Thunderbird/115.4.1", false},
		{"gmail image proxy", "Mozilla/5.0 (Windows NT 5.1; rv:11.0) Gecko Firefox/11.0 (via ggpht.com GoogleImageProxy)", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.isBot, IsBotUserAgent(tt.userAgent))
		})
	}
}

func TestIsBotUserAgentCaseInsensitive(t *testing.T) {
	assert.True(t, IsBotUserAgent("CURL/8.0"))
	assert.True(t, IsBotUserAgent("MyCrawler/1.0"))
	assert.True(t, IsBotUserAgent("SELENIUM webdriver"))
}
