package ratelimit

import "strings"

// unlimited is returned for liveness probes
var unlimited = EndpointConfig{Path: "/health", Method: "GET"}

// MatchEndpoint returns the rule for a request, or nil when the default applies.
// Exact paths win over prefix rules; among prefix rules the longest wins.
func MatchEndpoint(path, method string, configs []EndpointConfig) *EndpointConfig {
	if path == unlimited.Path && method == unlimited.Method {
		rule := unlimited
		return &rule
	}

	var best *EndpointConfig
	for i := range configs {
		c := &configs[i]
		if c.Method != method {
			continue
		}
		if c.Path == path {
			return c
		}
		if strings.HasSuffix(c.Path, "/") && strings.HasPrefix(path, c.Path) {
			if best == nil || len(c.Path) > len(best.Path) {
				best = c
			}
		}
	}
	return best
}
