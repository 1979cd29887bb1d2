package scraper

import (
	"context"
	"net/url"
	"strings"

	"github.com/dealvoy/source-registry-server/internal/httpclient"
)

// robotsChecker performs a minimal robots.txt compliance check before a source
// is scraped. Only a blanket "Disallow: /" for the matching user agent blocks
// scraping; a missing or unreachable robots.txt is treated as permission.
type robotsChecker struct {
	client httpclient.Client
}

func newRobotsChecker(client httpclient.Client) *robotsChecker {
	return &robotsChecker{client: client}
}

// CanFetch reports whether scraping endpoint's host is allowed for userAgent
func (r *robotsChecker) CanFetch(ctx context.Context, endpoint, userAgent string) bool {
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return true
	}

	robotsURL := u.Scheme + "://" + u.Host + "/robots.txt"
	data, err := r.client.Get(ctx, robotsURL)
	if err != nil {
		return true
	}

	return allowedByRobots(string(data), userAgent)
}

// allowedByRobots parses robots.txt content just far enough to find a
// disallow-all rule for the wildcard agent or the given agent.
func allowedByRobots(content, userAgent string) bool {
	userAgent = strings.ToLower(userAgent)
	currentAgent := ""

	for _, line := range strings.Split(strings.ToLower(content), "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "user-agent:"):
			currentAgent = strings.TrimSpace(strings.TrimPrefix(line, "user-agent:"))
		case strings.HasPrefix(line, "disallow:"):
			if currentAgent != "*" && currentAgent != userAgent {
				continue
			}
			path := strings.TrimSpace(strings.TrimPrefix(line, "disallow:"))
			if path == "/" {
				return false
			}
		}
	}

	return true
}
