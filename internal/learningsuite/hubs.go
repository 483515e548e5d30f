package learningsuite

import (
	"context"
	"encoding/json"
	"net/http"
)

var (
	OpListHubs        = op("list_hubs", http.MethodGet, "/hubs")
	OpGetHub          = op("get_hub", http.MethodGet, "/hubs/{hubId}")
	OpCreateHub       = op("create_hub", http.MethodPost, "/hubs")
	OpUpdateHub       = op("update_hub", http.MethodPut, "/hubs/{hubId}")
	OpDeleteHub       = op("delete_hub", http.MethodDelete, "/hubs/{hubId}")
	OpGrantHubAccess  = op("grant_hub_access", http.MethodPut, "/hubs/{hubId}/access")
	OpRevokeHubAccess = op("revoke_hub_access", http.MethodDelete, "/hubs/{hubId}/access")
)

var HubVisibilities = []string{"public", "private"}

type HubRef struct {
	HubID string `json:"hubId"`
}

func (r HubRef) path() map[string]string {
	return map[string]string{"hubId": r.HubID}
}

type CreateHubParams struct {
	Name        string  `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Visibility  *string `json:"visibility,omitempty"`
}

type HubUpdate struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Visibility  *string `json:"visibility,omitempty"`
}

type UpdateHubParams struct {
	HubRef
	HubUpdate
}

// HubAccess names the members and groups an access change applies to.
type HubAccess struct {
	MemberIDs []string `json:"memberIds,omitempty"`
	GroupIDs  []string `json:"groupIds,omitempty"`
}

type HubAccessParams struct {
	HubRef
	HubAccess
}

func (c *Client) ListHubs(ctx context.Context, _ NoParams) (json.RawMessage, error) {
	return c.Get(ctx, OpListHubs, nil, nil)
}

func (c *Client) GetHub(ctx context.Context, p HubRef) (json.RawMessage, error) {
	return c.Get(ctx, OpGetHub, p.path(), nil)
}

func (c *Client) CreateHub(ctx context.Context, p CreateHubParams) (json.RawMessage, error) {
	return c.Send(ctx, OpCreateHub, nil, p)
}

func (c *Client) UpdateHub(ctx context.Context, p UpdateHubParams) (json.RawMessage, error) {
	return c.Send(ctx, OpUpdateHub, p.path(), p.HubUpdate)
}

func (c *Client) DeleteHub(ctx context.Context, p HubRef) (json.RawMessage, error) {
	return c.Send(ctx, OpDeleteHub, p.path(), nil)
}

func (c *Client) GrantHubAccess(ctx context.Context, p HubAccessParams) (json.RawMessage, error) {
	return c.Send(ctx, OpGrantHubAccess, p.path(), p.HubAccess)
}

func (c *Client) RevokeHubAccess(ctx context.Context, p HubAccessParams) (json.RawMessage, error) {
	return c.Send(ctx, OpRevokeHubAccess, p.path(), p.HubAccess)
}
