package routing

import (
	"net/url"
	"strings"
)

// DecisionKind defined the list of outcomes the policy engine can reach
type DecisionKind string

const (
	// DecisionAllow lets the request through to the matched route
	DecisionAllow DecisionKind = "allow"
	// DecisionRewrite serves another path internally without a redirect
	DecisionRewrite DecisionKind = "rewrite"
	// DecisionRedirect sends the caller to a path on the app domain
	DecisionRedirect DecisionKind = "redirect"
)

// MemberState is the membership lookup result the engine branches on
type MemberState struct {
	ID     uint64
	Role   string
	Active bool
}

// Input is everything a routing decision depends on. The engine is a
// pure function of this struct so it stays testable without any network.
type Input struct {
	AppDomain  bool
	Path       string
	HasSession bool
	Member     *MemberState
}

// Decision is the routing outcome for one request
type Decision struct {
	Kind DecisionKind
	// Location is the app-domain target path for DecisionRedirect
	Location string
	// Path is the internal target for DecisionRewrite
	Path string
	// Member is attached on allowed protected routes for downstream use
	Member *MemberState
}

// routes on the app subdomain that never require a session
var publicRoutes = []string{"/login", "/auth/callback", "/auth/signout"}

// static files the app subdomain always serves
var publicFiles = map[string]struct{}{
	"/manifest.json": {},
	"/favicon.svg":   {},
	"/favicon.ico":   {},
	"/robots.txt":    {},
}

// RequiresMembership reports whether evaluating an app-domain path can
// depend on the caller's membership state. Public files and public
// routes are served no matter what the members table says, so the gate
// skips the lookup for them and a store outage cannot block sign-in or
// sign-out. The one exception is /login, which bounces active members
// back to the portal.
func RequiresMembership(path string) bool {
	if _, ok := publicFiles[path]; ok {
		return false
	}
	if isPublicRoute(path) {
		return path == "/login"
	}
	return true
}

func isPublicRoute(path string) bool {
	for _, route := range publicRoutes {
		if strings.HasPrefix(path, route) {
			return true
		}
	}
	return false
}

// Evaluate runs the transition table over one request. Rules are checked
// in order and the first match wins. Every redirect the table produces
// targets the app domain, so Location is always an app-domain path.
func Evaluate(in Input) Decision {
	if !in.AppDomain {
		// /portal on the primary domain lives on the app subdomain
		if strings.HasPrefix(in.Path, "/portal") {
			target := strings.TrimPrefix(in.Path, "/portal")
			if target == "" {
				target = "/"
			}
			return Decision{Kind: DecisionRedirect, Location: target}
		}
		if in.Path == "/login" {
			return Decision{Kind: DecisionRedirect, Location: "/login"}
		}
		// everything else on the primary domain is the public marketing site
		return Decision{Kind: DecisionAllow}
	}

	if _, ok := publicFiles[in.Path]; ok {
		return Decision{Kind: DecisionAllow}
	}

	if isPublicRoute(in.Path) {
		// an already signed-in active member has no business on /login
		if in.Path == "/login" && in.HasSession && in.Member != nil && in.Member.Active {
			return Decision{Kind: DecisionRedirect, Location: "/"}
		}
		return Decision{Kind: DecisionAllow}
	}

	// the app root serves the portal internally. The auth and membership
	// checks below run against the rewritten path, and any redirect they
	// produce takes precedence over completing the rewrite.
	path := in.Path
	rewritten := false
	if path == "/" {
		path = "/portal"
		rewritten = true
	}

	if !in.HasSession {
		return Decision{
			Kind:     DecisionRedirect,
			Location: "/login?redirect=" + url.QueryEscape(path),
		}
	}

	if in.Member == nil || !in.Member.Active {
		return Decision{Kind: DecisionRedirect, Location: "/not-a-member"}
	}

	if rewritten {
		return Decision{Kind: DecisionRewrite, Path: path, Member: in.Member}
	}
	return Decision{Kind: DecisionAllow, Member: in.Member}
}
