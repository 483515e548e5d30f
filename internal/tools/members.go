package tools

import "github.com/takashabe/learningsuite-mcp/internal/learningsuite"

var locales = []string{"de", "en"}

func memberTools(c *learningsuite.Client) []Tool {
	memberID := id("member")
	courseIDs := strList("IDs of the courses")
	bundleIDs := strList("IDs of the bundles")

	return []Tool{
		newTool("list_members",
			"List members of the LearningSuite account, optionally filtered by a search term or group.",
			object(paged(props{
				"search":  str("Free-text search over name and email"),
				"groupId": str("Only return members of this group"),
			})),
			bind(c.ListMembers)),
		newTool("get_member",
			"Get a single member by ID.",
			object(props{
				"memberId":       memberID,
				"includeGroups":  boolean("Include the member's groups"),
				"includeCourses": boolean("Include the member's courses"),
			}, "memberId"),
			bind(c.GetMember)),
		newTool("create_member",
			"Create a new member.",
			object(props{
				"email":            str("Email address of the member"),
				"firstName":        str("First name"),
				"lastName":         str("Last name"),
				"password":         str("Initial password; generated by LearningSuite when omitted"),
				"locale":           enum("Interface language", locales),
				"sendWelcomeEmail": boolean("Send the welcome email after creation"),
				"groupIds":         strList("Groups to add the member to"),
			}, "email"),
			bind(c.CreateMember)),
		newTool("update_member",
			"Update a member. Only the given fields are changed.",
			object(props{
				"memberId":  memberID,
				"email":     str("Email address of the member"),
				"firstName": str("First name"),
				"lastName":  str("Last name"),
				"locale":    enum("Interface language", locales),
				"isActive":  boolean("Whether the member can log in"),
			}, "memberId"),
			bind(c.UpdateMember)),
		newTool("delete_member",
			"Delete a member.",
			object(props{"memberId": memberID}, "memberId"),
			bind(c.DeleteMember)),
		newTool("get_member_courses",
			"List the courses a member has access to.",
			object(props{"memberId": memberID}, "memberId"),
			bind(c.GetMemberCourses)),
		newTool("add_member_to_courses",
			"Give a member access to one or more courses.",
			object(props{"memberId": memberID, "courseIds": courseIDs}, "memberId", "courseIds"),
			bind(c.AddMemberToCourses)),
		newTool("remove_member_from_courses",
			"Revoke a member's access to one or more courses.",
			object(props{"memberId": memberID, "courseIds": courseIDs}, "memberId", "courseIds"),
			bind(c.RemoveMemberFromCourses)),
		newTool("get_member_bundles",
			"List the bundles a member has access to.",
			object(props{"memberId": memberID}, "memberId"),
			bind(c.GetMemberBundles)),
		newTool("add_member_to_bundles",
			"Give a member access to one or more bundles.",
			object(props{"memberId": memberID, "bundleIds": bundleIDs}, "memberId", "bundleIds"),
			bind(c.AddMemberToBundles)),
		newTool("remove_member_from_bundles",
			"Revoke a member's access to one or more bundles.",
			object(props{"memberId": memberID, "bundleIds": bundleIDs}, "memberId", "bundleIds"),
			bind(c.RemoveMemberFromBundles)),
		newTool("get_member_course_progress",
			"Get a member's progress in a course.",
			object(props{"memberId": memberID, "courseId": id("course")}, "memberId", "courseId"),
			bind(c.GetMemberCourseProgress)),
	}
}
