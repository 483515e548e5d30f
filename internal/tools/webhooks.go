package tools

import "github.com/takashabe/learningsuite-mcp/internal/learningsuite"

func webhookTools(c *learningsuite.Client) []Tool {
	webhookID := id("webhook")
	events := enumList("Events that trigger the webhook", learningsuite.WebhookEvents)

	return []Tool{
		newTool("list_webhooks",
			"List webhook subscriptions.",
			object(nil),
			bind(c.ListWebhooks)),
		newTool("get_webhook",
			"Get a single webhook subscription by ID.",
			object(props{"webhookId": webhookID}, "webhookId"),
			bind(c.GetWebhook)),
		newTool("create_webhook",
			"Subscribe a URL to LearningSuite events.",
			object(props{
				"url":         str("HTTPS endpoint that receives the events"),
				"events":      events,
				"secret":      str("Shared secret used to sign deliveries"),
				"description": str("Free-text description"),
			}, "url", "events"),
			bind(c.CreateWebhook)),
		newTool("update_webhook",
			"Update a webhook subscription. Only the given fields are changed.",
			object(props{
				"webhookId": webhookID,
				"url":       str("HTTPS endpoint that receives the events"),
				"events":    events,
				"active":    boolean("Whether deliveries are enabled"),
			}, "webhookId"),
			bind(c.UpdateWebhook)),
		newTool("delete_webhook",
			"Delete a webhook subscription.",
			object(props{"webhookId": webhookID}, "webhookId"),
			bind(c.DeleteWebhook)),
		newTool("get_webhook_sample_payload",
			"Get an example payload for a webhook event.",
			object(props{"event": enum("Event type", learningsuite.WebhookEvents)}, "event"),
			bind(c.GetWebhookSamplePayload)),
	}
}
