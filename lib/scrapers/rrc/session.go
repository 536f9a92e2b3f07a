package rrc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/codes"
)

var ErrNoSession = errors.New("no session")

const sessionCookieName = "JSESSIONID"

// Session is the ephemeral identity the portal requires to correlate
// a search submission with the page fetch that preceded it. The
// cookie always carries the same identifier, the upstream rejects
// submissions where the two disagree.
type Session struct {
	Id     string
	Cookie string
}

// the portal hands out the session id in one of three places
// depending on which side of a load balancer answers. sources are
// consulted in order, the first hit wins.
type sessionSource struct {
	name    string
	extract func(res *resty.Response) string
}

var sessionSources = []sessionSource{
	{"set-cookie", sessionFromCookie},
	{"redirect-url", sessionFromRedirect},
	{"body", sessionFromBody},
}

func sessionFromCookie(res *resty.Response) string {
	for _, cookie := range res.Cookies() {
		if cookie.Name == sessionCookieName {
			return cookie.Value
		}
	}
	return ""
}

func sessionFromRedirect(res *resty.Response) string {
	raw := res.RawResponse
	if raw == nil || raw.Request == nil || raw.Request.URL == nil {
		return ""
	}
	return extractJsessionid(raw.Request.URL.String())
}

func sessionFromBody(res *resty.Response) string {
	return extractJsessionid(res.String())
}

// pulls the token following a "jsessionid=" marker, stopping at the
// first character that cannot appear in a servlet session id.
func extractJsessionid(s string) string {
	lower := strings.ToLower(s)
	i := strings.Index(lower, "jsessionid=")
	if i < 0 {
		return ""
	}
	rest := s[i+len("jsessionid="):]
	end := strings.IndexFunc(rest, func(r rune) bool {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return false
		case r == '.' || r == '!' || r == '-' || r == '_':
			return false
		}
		return true
	})
	if end < 0 {
		return rest
	}
	return rest[:end]
}

// AcquireSession fetches the portal's entry page and locates the
// session identifier it was issued. There is no fallback past the
// source list: a portal that hands out no identifier cannot answer
// queries at all.
func (c *Client) AcquireSession(ctx context.Context) (Session, error) {
	ctx, span := tracer.Start(ctx, "client:AcquireSession")
	defer span.End()

	res, err := c.Http.R().
		SetContext(ctx).
		Get(entryEndpoint)
	if err != nil {
		span.SetStatus(codes.Error, "failed to fetch entry page")
		return Session{}, fmt.Errorf("fetch entry page: %w", err)
	}

	for _, source := range sessionSources {
		id := source.extract(res)
		if id == "" {
			continue
		}
		slog.DebugContext(ctx, "acquired session", "source", source.name)
		return Session{
			Id:     id,
			Cookie: fmt.Sprintf("%s=%s", sessionCookieName, id),
		}, nil
	}

	span.SetStatus(codes.Error, ErrNoSession.Error())
	return Session{}, ErrNoSession
}
