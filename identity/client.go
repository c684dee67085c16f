// Copyright (C) 2025 School Voice
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package identity

import (
	"context"
	"fmt"
	"net/http"

	client "github.com/ory/client-go"
	"github.com/pkg/errors"

	"github.com/schoolvoice/schoolvoice/shared"
	"github.com/schoolvoice/schoolvoice/utils"
)

// rateLimitedError marks a provider response that is worth retrying.
type rateLimitedError struct {
	inner error
}

func (r rateLimitedError) Error() string {
	return r.inner.Error()
}

func (r rateLimitedError) Unwrap() error {
	return r.inner
}

func isRateLimited(err error) bool {
	var rl rateLimitedError
	return errors.As(err, &rl)
}

func wrapProviderError(resp *http.Response, err error) error {
	if err == nil {
		return nil
	}
	if resp != nil && resp.StatusCode == http.StatusTooManyRequests {
		return rateLimitedError{inner: err}
	}
	return err
}

type identityClient struct {
	apiClient *client.APIClient
}

// NewIdentityClient wraps the ory admin API. Calls that hit the provider's
// rate limit are retried with the default backoff schedule.
func NewIdentityClient(apiClient *client.APIClient) *identityClient {
	return &identityClient{apiClient: apiClient}
}

func (a *identityClient) GetIdentity(ctx context.Context, userID string) (client.Identity, error) {
	return utils.Retry(ctx, utils.DefaultBackoff, isRateLimited, func() (client.Identity, error) {
		identity, resp, err := a.apiClient.IdentityAPI.GetIdentity(ctx, userID).Execute()
		if err != nil {
			return client.Identity{}, wrapProviderError(resp, err)
		}
		return *identity, nil
	})
}

func (a *identityClient) GetIdentityFromCookie(ctx context.Context, cookie string) (client.Identity, error) {
	session, resp, err := a.apiClient.FrontendAPI.ToSession(ctx).Cookie(cookie).Execute()
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusUnauthorized {
			return client.Identity{}, shared.ErrUnauthenticated
		}
		return client.Identity{}, fmt.Errorf("could not get identity from cookie: %w", err)
	}
	if session.Identity == nil {
		return client.Identity{}, shared.ErrUnauthenticated
	}
	return *session.Identity, nil
}

// RefreshSession re-resolves the cookie against the provider. A session that
// no longer exists surfaces as ErrUnauthenticated rather than an internal
// error so the caller can redirect to login.
func (a *identityClient) RefreshSession(ctx context.Context, cookie string) (client.Identity, error) {
	return utils.Retry(ctx, utils.DefaultBackoff, isRateLimited, func() (client.Identity, error) {
		session, resp, err := a.apiClient.FrontendAPI.ToSession(ctx).Cookie(cookie).Execute()
		if err != nil {
			if resp != nil && resp.StatusCode == http.StatusUnauthorized {
				return client.Identity{}, shared.ErrUnauthenticated
			}
			return client.Identity{}, wrapProviderError(resp, err)
		}
		if session.Identity == nil {
			return client.Identity{}, shared.ErrUnauthenticated
		}
		return *session.Identity, nil
	})
}

func (a *identityClient) ListIdentities(ctx context.Context, ids []string) ([]client.Identity, error) {
	if len(ids) == 0 {
		return []client.Identity{}, nil
	}
	return utils.Retry(ctx, utils.DefaultBackoff, isRateLimited, func() ([]client.Identity, error) {
		identities, resp, err := a.apiClient.IdentityAPI.ListIdentities(ctx).Ids(ids).Execute()
		if err != nil {
			return nil, wrapProviderError(resp, err)
		}
		return identities, nil
	})
}

func (a *identityClient) FindIdentityByEmail(ctx context.Context, email string) (*client.Identity, error) {
	return utils.Retry(ctx, utils.DefaultBackoff, isRateLimited, func() (*client.Identity, error) {
		identities, resp, err := a.apiClient.IdentityAPI.ListIdentities(ctx).CredentialsIdentifier(email).Execute()
		if err != nil {
			return nil, wrapProviderError(resp, err)
		}
		if len(identities) == 0 {
			return nil, shared.ErrNotFound
		}
		return &identities[0], nil
	})
}

// SetSuperAdminFlag writes the platform super-admin flag into the identity's
// admin metadata. The flag lives in the identity provider, not in the entity
// store.
func (a *identityClient) SetSuperAdminFlag(ctx context.Context, userID string, isSuperAdmin bool) error {
	_, err := utils.Retry(ctx, utils.DefaultBackoff, isRateLimited, func() (struct{}, error) {
		patch := []client.JsonPatch{
			{
				Op:    "replace",
				Path:  "/metadata_admin",
				Value: map[string]any{"isPlatformSuperAdmin": isSuperAdmin},
			},
		}
		_, resp, err := a.apiClient.IdentityAPI.PatchIdentity(ctx, userID).JsonPatch(patch).Execute()
		if err != nil {
			return struct{}{}, wrapProviderError(resp, err)
		}
		return struct{}{}, nil
	})
	return err
}

// EmailFromIdentity reads traits.email. Returns the empty string when the
// identity carries no email trait.
func EmailFromIdentity(identity client.Identity) string {
	traits, ok := identity.Traits.(map[string]any)
	if !ok {
		return ""
	}
	email, _ := traits["email"].(string)
	return email
}

// DisplayNameFromIdentity reads traits.name. The trait is either a plain
// string or an object with first and last parts.
func DisplayNameFromIdentity(identity client.Identity) string {
	traits, ok := identity.Traits.(map[string]any)
	if !ok {
		return ""
	}
	switch name := traits["name"].(type) {
	case string:
		return name
	case map[string]any:
		nameStr := ""
		if first, ok := name["first"].(string); ok {
			nameStr = first
		}
		if last, ok := name["last"].(string); ok {
			if nameStr != "" {
				nameStr += " "
			}
			nameStr += last
		}
		return nameStr
	}
	return ""
}

// IsSuperAdminIdentity reads the platform super-admin flag from the
// identity's admin metadata.
func IsSuperAdminIdentity(identity client.Identity) bool {
	flag, _ := identity.MetadataAdmin["isPlatformSuperAdmin"].(bool)
	return flag
}
