package ratelimit

import "strings"

// UnknownClientID is the fallback identifier when no forwarding header is
// present. All such callers share a single rate limit bucket.
const UnknownClientID = "unknown"

// ipHeaders are checked in order of trust: the standard forwarded-for header
// first, then the reverse proxy real IP, then CDN-specific variants.
var ipHeaders = []string{
	"X-Forwarded-For",
	"X-Real-IP",
	"CF-Connecting-IP",
	"True-Client-IP",
}

// ExtractClientID derives a best-effort client identifier from request
// headers. For X-Forwarded-For the first comma-separated entry wins.
func ExtractClientID(headers map[string][]string) string {
	for _, header := range ipHeaders {
		values := headerValues(headers, header)
		if len(values) == 0 {
			continue
		}
		value := values[0]
		if header == "X-Forwarded-For" {
			if idx := strings.Index(value, ","); idx >= 0 {
				value = value[:idx]
			}
		}
		value = strings.TrimSpace(value)
		if value != "" {
			return value
		}
	}
	return UnknownClientID
}

func headerValues(headers map[string][]string, name string) []string {
	if values, ok := headers[name]; ok {
		return values
	}
	for key, values := range headers {
		if strings.EqualFold(key, name) {
			return values
		}
	}
	return nil
}
