package learningsuite

import (
	"context"
	"encoding/json"
	"net/http"
)

var (
	OpListWebhooks            = op("list_webhooks", http.MethodGet, "/webhooks")
	OpGetWebhook              = op("get_webhook", http.MethodGet, "/webhooks/{webhookId}")
	OpCreateWebhook           = op("create_webhook", http.MethodPost, "/webhooks")
	OpUpdateWebhook           = op("update_webhook", http.MethodPut, "/webhooks/{webhookId}")
	OpDeleteWebhook           = op("delete_webhook", http.MethodDelete, "/webhooks/{webhookId}")
	OpGetWebhookSamplePayload = op("get_webhook_sample_payload", http.MethodGet, "/webhooks/sample-payload")
)

// WebhookEvents lists the event types a subscription can listen to.
var WebhookEvents = []string{
	"member.created",
	"member.updated",
	"member.deleted",
	"course.access_granted",
	"course.access_revoked",
	"course.completed",
	"lesson.completed",
	"group.member_added",
	"group.member_removed",
	"community.post_created",
}

type WebhookRef struct {
	WebhookID string `json:"webhookId"`
}

func (r WebhookRef) path() map[string]string {
	return map[string]string{"webhookId": r.WebhookID}
}

type CreateWebhookParams struct {
	URL         string   `json:"url,omitempty"`
	Events      []string `json:"events,omitempty"`
	Secret      *string  `json:"secret,omitempty"`
	Description *string  `json:"description,omitempty"`
}

type WebhookUpdate struct {
	URL    *string  `json:"url,omitempty"`
	Events []string `json:"events,omitempty"`
	Active *bool    `json:"active,omitempty"`
}

type UpdateWebhookParams struct {
	WebhookRef
	WebhookUpdate
}

type WebhookSamplePayloadParams struct {
	Event string `json:"event"`
}

func (c *Client) ListWebhooks(ctx context.Context, _ NoParams) (json.RawMessage, error) {
	return c.Get(ctx, OpListWebhooks, nil, nil)
}

func (c *Client) GetWebhook(ctx context.Context, p WebhookRef) (json.RawMessage, error) {
	return c.Get(ctx, OpGetWebhook, p.path(), nil)
}

func (c *Client) CreateWebhook(ctx context.Context, p CreateWebhookParams) (json.RawMessage, error) {
	return c.Send(ctx, OpCreateWebhook, nil, p)
}

func (c *Client) UpdateWebhook(ctx context.Context, p UpdateWebhookParams) (json.RawMessage, error) {
	return c.Send(ctx, OpUpdateWebhook, p.path(), p.WebhookUpdate)
}

func (c *Client) DeleteWebhook(ctx context.Context, p WebhookRef) (json.RawMessage, error) {
	return c.Send(ctx, OpDeleteWebhook, p.path(), nil)
}

// GetWebhookSamplePayload returns an example payload for event. The event is
// a required query parameter; an empty value is left for the API to reject.
func (c *Client) GetWebhookSamplePayload(ctx context.Context, p WebhookSamplePayloadParams) (json.RawMessage, error) {
	q := NewQueryBuilder()
	q.AddNonEmpty("event", p.Event)
	return c.Get(ctx, OpGetWebhookSamplePayload, nil, q.Build())
}
