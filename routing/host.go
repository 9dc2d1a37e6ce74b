package routing

import "strings"

// AppSubdomain is the reserved label that selects the portal
const AppSubdomain = "app"

// Subdomain extracts the leading label of the host header, or an empty
// string when the host is the bare or www-prefixed primary domain.
// Pure function of the host string.
func Subdomain(host string) string {
	// local development hosts keep their port: app.localhost:4015
	if strings.Contains(host, "localhost") {
		parts := strings.Split(host, ".")
		if len(parts) > 1 && parts[0] != "www" {
			return parts[0]
		}
		return ""
	}

	// production style host, strip an optional trailing port
	host = stripPort(host)
	parts := strings.Split(host, ".")
	if len(parts) > 2 && parts[0] != "www" {
		return parts[0]
	}
	return ""
}

// IsAppDomain classifies a host header as portal vs marketing site
func IsAppDomain(host string) bool {
	return Subdomain(host) == AppSubdomain
}

func stripPort(host string) string {
	if i := strings.LastIndex(host, ":"); i != -1 {
		return host[:i]
	}
	return host
}
