package backend

import (
	"context"
	"net/http"

	"agenda-web/internal/usecase/profile"
)

// BusinessProfile implements profile.Source. Unknown keys are kept in Extra.
func (c *Client) BusinessProfile(ctx context.Context) (*profile.Profile, error) {
	fields := map[string]any{}
	err := c.do(ctx, request{
		operation: "business_profile",
		method:    http.MethodGet,
		path:      "/config",
	}, &fields)
	if err != nil {
		return nil, err
	}

	p := &profile.Profile{Extra: map[string]any{}}
	for k, v := range fields {
		switch k {
		case "nombre_negocio":
			p.Name, _ = v.(string)
		case "email_negocio":
			p.Email, _ = v.(string)
		default:
			p.Extra[k] = v
		}
	}
	return p, nil
}
