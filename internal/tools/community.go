package tools

import "github.com/takashabe/learningsuite-mcp/internal/learningsuite"

func communityTools(c *learningsuite.Client) []Tool {
	forumID := id("forum")
	postID := id("post")
	badgeMembers := func() props {
		return props{
			"badgeId":   id("badge"),
			"memberIds": strList("IDs of the members"),
		}
	}

	return []Tool{
		newTool("list_community_areas",
			"List the community areas.",
			object(nil),
			bind(c.ListCommunityAreas)),
		newTool("list_community_forums",
			"List the forums of a community area.",
			object(props{"areaId": id("community area")}, "areaId"),
			bind(c.ListCommunityForums)),
		newTool("list_community_posts",
			"List the posts of a forum.",
			object(paged(props{
				"forumId": forumID,
				"sort":    enum("Sort order", learningsuite.PostSortOrders),
			}), "forumId"),
			bind(c.ListCommunityPosts)),
		newTool("get_community_post",
			"Get a single community post with its comments.",
			object(props{"postId": postID}, "postId"),
			bind(c.GetCommunityPost)),
		newTool("create_community_post",
			"Create a post in a forum.",
			object(props{
				"forumId":  forumID,
				"title":    str("Title of the post"),
				"content":  str("Body of the post"),
				"authorId": str("Member ID to post as; defaults to the API user"),
				"pinned":   boolean("Pin the post to the top of the forum"),
			}, "forumId", "title", "content"),
			bind(c.CreateCommunityPost)),
		newTool("delete_community_post",
			"Delete a community post.",
			object(props{"postId": postID}, "postId"),
			bind(c.DeleteCommunityPost)),
		newTool("create_community_comment",
			"Comment on a community post.",
			object(props{
				"postId":   postID,
				"content":  str("Body of the comment"),
				"authorId": str("Member ID to comment as; defaults to the API user"),
			}, "postId", "content"),
			bind(c.CreateCommunityComment)),
		newTool("list_community_badges",
			"List the community badges.",
			object(nil),
			bind(c.ListCommunityBadges)),
		newTool("award_community_badge",
			"Award a badge to members.",
			object(badgeMembers(), "badgeId", "memberIds"),
			bind(c.AwardCommunityBadge)),
		newTool("revoke_community_badge",
			"Take a badge away from members.",
			object(badgeMembers(), "badgeId", "memberIds"),
			bind(c.RevokeCommunityBadge)),
	}
}
