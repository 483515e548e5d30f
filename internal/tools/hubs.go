package tools

import "github.com/takashabe/learningsuite-mcp/internal/learningsuite"

func hubTools(c *learningsuite.Client) []Tool {
	hubID := id("hub")
	access := func() props {
		return props{
			"hubId":     hubID,
			"memberIds": strList("IDs of the members"),
			"groupIds":  strList("IDs of the groups"),
		}
	}

	return []Tool{
		newTool("list_hubs",
			"List all hubs.",
			object(nil),
			bind(c.ListHubs)),
		newTool("get_hub",
			"Get a single hub by ID.",
			object(props{"hubId": hubID}, "hubId"),
			bind(c.GetHub)),
		newTool("create_hub",
			"Create a new hub.",
			object(props{
				"name":        str("Name of the hub"),
				"description": str("Description of the hub"),
				"visibility":  enum("Who can see the hub", learningsuite.HubVisibilities),
			}, "name"),
			bind(c.CreateHub)),
		newTool("update_hub",
			"Update a hub. Only the given fields are changed.",
			object(props{
				"hubId":       hubID,
				"name":        str("Name of the hub"),
				"description": str("Description of the hub"),
				"visibility":  enum("Who can see the hub", learningsuite.HubVisibilities),
			}, "hubId"),
			bind(c.UpdateHub)),
		newTool("delete_hub",
			"Delete a hub.",
			object(props{"hubId": hubID}, "hubId"),
			bind(c.DeleteHub)),
		newTool("grant_hub_access",
			"Grant members and/or groups access to a hub.",
			object(access(), "hubId"),
			bind(c.GrantHubAccess)),
		newTool("revoke_hub_access",
			"Revoke hub access from members and/or groups.",
			object(access(), "hubId"),
			bind(c.RevokeHubAccess)),
	}
}
