// Package botdetection classifies user agents that should not count as
// genuine recipient activity: crawlers, email security gateways that open
// links before the recipient does, and scripted HTTP clients.
package botdetection

import "strings"

// botPatterns is matched case-insensitively against the whole user agent.
var botPatterns = []string{
	// generic crawlers and browser automation
	"bot",
	"crawler",
	"spider",
	"scanner",
	"linkcheck",
	"headlesschrome",
	"phantomjs",
	"selenium",

	// email security gateways that prefetch links
	"safelinks",
	"proofpoint",
	"mimecast",
	"barracuda",
	"forcepoint",
	"ironport",
	"symantec",
	"mcafee",
	"trend micro",
	"sophos",
	"fireeye",
	"urldefense",
	"linkprotect",
	"urlscan",
	"urlfilter",
	"emailsecurity",
	"emailprotection",
	"antivirus",
	"threatdetection",

	// scripted clients
	"python-requests",
	"curl",
	"wget",
	"java",
	"go-http-client",
	"okhttp",
	"postman",
}

// IsBotUserAgent reports whether userAgent looks automated. An empty or
// blank user agent counts as a bot: genuine mail clients always send one.
func IsBotUserAgent(userAgent string) bool {
	if strings.TrimSpace(userAgent) == "" {
		return true
	}

	ua := strings.ToLower(userAgent)
	for _, pattern := range botPatterns {
		if strings.Contains(ua, pattern) {
			return true
		}
	}

	return false
}
