package tools

import "github.com/takashabe/learningsuite-mcp/internal/learningsuite"

func groupTools(c *learningsuite.Client) []Tool {
	groupID := id("group")

	return []Tool{
		newTool("list_groups",
			"List all groups.",
			object(paged(nil)),
			bind(c.ListGroups)),
		newTool("get_group",
			"Get a single group by ID.",
			object(props{"groupId": groupID}, "groupId"),
			bind(c.GetGroup)),
		newTool("create_group",
			"Create a new group.",
			object(props{
				"name":        str("Name of the group"),
				"description": str("Description of the group"),
			}, "name"),
			bind(c.CreateGroup)),
		newTool("update_group",
			"Update a group. Only the given fields are changed.",
			object(props{
				"groupId":     groupID,
				"name":        str("Name of the group"),
				"description": str("Description of the group"),
			}, "groupId"),
			bind(c.UpdateGroup)),
		newTool("delete_group",
			"Delete a group. Members keep their accounts.",
			object(props{"groupId": groupID}, "groupId"),
			bind(c.DeleteGroup)),
		newTool("get_group_members",
			"List the members of a group.",
			object(paged(props{"groupId": groupID}), "groupId"),
			bind(c.GetGroupMembers)),
		newTool("add_members_to_group",
			"Add members to a group.",
			object(props{"groupId": groupID, "memberIds": strList("IDs of the members")}, "groupId", "memberIds"),
			bind(c.AddMembersToGroup)),
		newTool("remove_members_from_group",
			"Remove members from a group.",
			object(props{"groupId": groupID, "memberIds": strList("IDs of the members")}, "groupId", "memberIds"),
			bind(c.RemoveMembersFromGroup)),
		newTool("add_courses_to_group",
			"Give every member of a group access to the given courses.",
			object(props{"groupId": groupID, "courseIds": strList("IDs of the courses")}, "groupId", "courseIds"),
			bind(c.AddCoursesToGroup)),
		newTool("remove_courses_from_group",
			"Remove courses from a group.",
			object(props{"groupId": groupID, "courseIds": strList("IDs of the courses")}, "groupId", "courseIds"),
			bind(c.RemoveCoursesFromGroup)),
		newTool("add_bundles_to_group",
			"Give every member of a group access to the given bundles.",
			object(props{"groupId": groupID, "bundleIds": strList("IDs of the bundles")}, "groupId", "bundleIds"),
			bind(c.AddBundlesToGroup)),
		newTool("remove_bundles_from_group",
			"Remove bundles from a group.",
			object(props{"groupId": groupID, "bundleIds": strList("IDs of the bundles")}, "groupId", "bundleIds"),
			bind(c.RemoveBundlesFromGroup)),
	}
}
