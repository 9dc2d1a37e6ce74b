package routing

import "strings"

// URLs builds absolute links across the two domains. Local development
// runs everything under *.localhost on a single port, so the builders
// special-case loopback hosts the same way the classifier does.
type URLs struct {
	// Domain is the production primary domain, e.g. example.com
	Domain string
	// LocalHost is the local development host with port, e.g. localhost:4015
	LocalHost string
}

// App returns an absolute URL for the given path on the app subdomain
func (u URLs) App(requestHost, proto, path string) string {
	if proto == "" {
		proto = "https"
	}
	if strings.Contains(requestHost, "localhost") {
		return proto + "://" + AppSubdomain + "." + u.LocalHost + path
	}
	return proto + "://" + AppSubdomain + "." + u.Domain + path
}

// Main returns an absolute URL for the given path on the primary domain
func (u URLs) Main(requestHost, proto, path string) string {
	if proto == "" {
		proto = "https"
	}
	if strings.Contains(requestHost, "localhost") {
		return proto + "://" + u.LocalHost + path
	}
	return proto + "://www." + u.Domain + path
}
