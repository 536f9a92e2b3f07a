package rrc

import (
	"context"
	"fmt"
	"net/url"

	"go.opentelemetry.io/otel/codes"
)

// SubmitForm issues a session-scoped POST and returns the raw
// response body. The session id rides in the URL path segment and the
// cookie header, both are required or the portal starts a fresh
// session and answers with its landing page.
func (c *Client) SubmitForm(ctx context.Context, session Session, endpoint string, form url.Values) (string, error) {
	ctx, span := tracer.Start(ctx, "client:SubmitForm")
	defer span.End()

	res, err := c.Http.R().
		SetContext(ctx).
		SetHeader("Cookie", session.Cookie).
		SetFormDataFromValues(form).
		Post(fmt.Sprintf("%s;jsessionid=%s", endpoint, session.Id))
	if err != nil {
		span.SetStatus(codes.Error, "form submission failed")
		return "", fmt.Errorf("submit %s: %w", endpoint, err)
	}

	return res.String(), nil
}
