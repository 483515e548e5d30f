package learningsuite

import (
	"context"
	"encoding/json"
	"net/http"
)

var (
	OpListCommunityAreas     = op("list_community_areas", http.MethodGet, "/community/areas")
	OpListCommunityForums    = op("list_community_forums", http.MethodGet, "/community/areas/{areaId}/forums")
	OpListCommunityPosts     = op("list_community_posts", http.MethodGet, "/community/forums/{forumId}/posts")
	OpGetCommunityPost       = op("get_community_post", http.MethodGet, "/community/posts/{postId}")
	OpCreateCommunityPost    = op("create_community_post", http.MethodPost, "/community/forums/{forumId}/posts")
	OpDeleteCommunityPost    = op("delete_community_post", http.MethodDelete, "/community/posts/{postId}")
	OpCreateCommunityComment = op("create_community_comment", http.MethodPost, "/community/posts/{postId}/comments")
	OpListCommunityBadges    = op("list_community_badges", http.MethodGet, "/community/badges")
	OpAwardCommunityBadge    = op("award_community_badge", http.MethodPut, "/community/badges/{badgeId}/members")
	OpRevokeCommunityBadge   = op("revoke_community_badge", http.MethodDelete, "/community/badges/{badgeId}/members")
)

var PostSortOrders = []string{"newest", "oldest", "popular"}

type AreaRef struct {
	AreaID string `json:"areaId"`
}

type ForumRef struct {
	ForumID string `json:"forumId"`
}

func (r ForumRef) path() map[string]string {
	return map[string]string{"forumId": r.ForumID}
}

type PostRef struct {
	PostID string `json:"postId"`
}

func (r PostRef) path() map[string]string {
	return map[string]string{"postId": r.PostID}
}

type BadgeRef struct {
	BadgeID string `json:"badgeId"`
}

type ListCommunityPostsParams struct {
	ForumRef
	Page
	Sort *string `json:"sort,omitempty"`
}

type NewPost struct {
	Title    string  `json:"title,omitempty"`
	Content  string  `json:"content,omitempty"`
	AuthorID *string `json:"authorId,omitempty"`
	Pinned   *bool   `json:"pinned,omitempty"`
}

type CreateCommunityPostParams struct {
	ForumRef
	NewPost
}

type NewComment struct {
	Content  string  `json:"content,omitempty"`
	AuthorID *string `json:"authorId,omitempty"`
}

type CreateCommunityCommentParams struct {
	PostRef
	NewComment
}

type BadgeMembersParams struct {
	BadgeRef
	MemberIDs
}

func (c *Client) ListCommunityAreas(ctx context.Context, _ NoParams) (json.RawMessage, error) {
	return c.Get(ctx, OpListCommunityAreas, nil, nil)
}

func (c *Client) ListCommunityForums(ctx context.Context, p AreaRef) (json.RawMessage, error) {
	return c.Get(ctx, OpListCommunityForums, map[string]string{"areaId": p.AreaID}, nil)
}

func (c *Client) ListCommunityPosts(ctx context.Context, p ListCommunityPostsParams) (json.RawMessage, error) {
	q := NewQueryBuilder().
		AddPage(p.Page).
		AddString("sort", p.Sort)
	return c.Get(ctx, OpListCommunityPosts, p.path(), q.Build())
}

func (c *Client) GetCommunityPost(ctx context.Context, p PostRef) (json.RawMessage, error) {
	return c.Get(ctx, OpGetCommunityPost, p.path(), nil)
}

func (c *Client) CreateCommunityPost(ctx context.Context, p CreateCommunityPostParams) (json.RawMessage, error) {
	return c.Send(ctx, OpCreateCommunityPost, p.path(), p.NewPost)
}

func (c *Client) DeleteCommunityPost(ctx context.Context, p PostRef) (json.RawMessage, error) {
	return c.Send(ctx, OpDeleteCommunityPost, p.path(), nil)
}

func (c *Client) CreateCommunityComment(ctx context.Context, p CreateCommunityCommentParams) (json.RawMessage, error) {
	return c.Send(ctx, OpCreateCommunityComment, p.path(), p.NewComment)
}

func (c *Client) ListCommunityBadges(ctx context.Context, _ NoParams) (json.RawMessage, error) {
	return c.Get(ctx, OpListCommunityBadges, nil, nil)
}

func (c *Client) AwardCommunityBadge(ctx context.Context, p BadgeMembersParams) (json.RawMessage, error) {
	return c.Send(ctx, OpAwardCommunityBadge, map[string]string{"badgeId": p.BadgeID}, p.MemberIDs)
}

func (c *Client) RevokeCommunityBadge(ctx context.Context, p BadgeMembersParams) (json.RawMessage, error) {
	return c.Send(ctx, OpRevokeCommunityBadge, map[string]string{"badgeId": p.BadgeID}, p.MemberIDs)
}
