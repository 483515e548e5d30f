package tools

import "github.com/takashabe/learningsuite-mcp/internal/learningsuite"

func notificationTools(c *learningsuite.Client) []Tool {
	popupID := id("popup")

	return []Tool{
		newTool("list_popups",
			"List the configured popups.",
			object(nil),
			bind(c.ListPopups)),
		newTool("get_popup_triggers",
			"List the active triggers of a popup, optionally for one member.",
			object(props{
				"popupId":  popupID,
				"memberId": str("Only return the trigger of this member"),
			}, "popupId"),
			bind(c.GetPopupTriggers)),
		newTool("trigger_popup",
			"Show a popup to members on their next visit.",
			object(props{"popupId": popupID, "memberIds": strList("IDs of the members")}, "popupId", "memberIds"),
			bind(c.TriggerPopup)),
		newTool("reset_popup_trigger",
			"Reset a popup trigger so members see it again or not at all.",
			object(props{"popupId": popupID, "memberIds": strList("IDs of the members")}, "popupId", "memberIds"),
			bind(c.ResetPopupTrigger)),
		newTool("send_push_notification",
			"Send a push notification to members and/or groups.",
			object(props{
				"title":     str("Notification title"),
				"message":   str("Notification text"),
				"memberIds": strList("Recipient member IDs"),
				"groupIds":  strList("Recipient group IDs"),
				"link":      str("URL opened when the notification is tapped"),
			}, "title", "message"),
			bind(c.SendPushNotification)),
	}
}
