package learningsuite

import (
	"context"
	"encoding/json"
	"net/http"
)

var (
	OpListGroups             = op("list_groups", http.MethodGet, "/groups")
	OpGetGroup               = op("get_group", http.MethodGet, "/groups/{groupId}")
	OpCreateGroup            = op("create_group", http.MethodPost, "/groups")
	OpUpdateGroup            = op("update_group", http.MethodPut, "/groups/{groupId}")
	OpDeleteGroup            = op("delete_group", http.MethodDelete, "/groups/{groupId}")
	OpGetGroupMembers        = op("get_group_members", http.MethodGet, "/groups/{groupId}/members")
	OpAddMembersToGroup      = op("add_members_to_group", http.MethodPut, "/groups/{groupId}/members")
	OpRemoveMembersFromGroup = op("remove_members_from_group", http.MethodDelete, "/groups/{groupId}/members")
	OpAddCoursesToGroup      = op("add_courses_to_group", http.MethodPut, "/groups/{groupId}/courses")
	OpRemoveCoursesFromGroup = op("remove_courses_from_group", http.MethodDelete, "/groups/{groupId}/courses")
	OpAddBundlesToGroup      = op("add_bundles_to_group", http.MethodPut, "/groups/{groupId}/bundles")
	OpRemoveBundlesFromGroup = op("remove_bundles_from_group", http.MethodDelete, "/groups/{groupId}/bundles")
)

type GroupRef struct {
	GroupID string `json:"groupId"`
}

func (r GroupRef) path() map[string]string {
	return map[string]string{"groupId": r.GroupID}
}

type ListGroupsParams struct {
	Page
}

type CreateGroupParams struct {
	Name        string  `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

type GroupUpdate struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

type UpdateGroupParams struct {
	GroupRef
	GroupUpdate
}

type GroupMembersPageParams struct {
	GroupRef
	Page
}

type GroupMembersParams struct {
	GroupRef
	MemberIDs
}

type GroupCoursesParams struct {
	GroupRef
	CourseIDs
}

type GroupBundlesParams struct {
	GroupRef
	BundleIDs
}

func (c *Client) ListGroups(ctx context.Context, p ListGroupsParams) (json.RawMessage, error) {
	return c.Get(ctx, OpListGroups, nil, NewQueryBuilder().AddPage(p.Page).Build())
}

func (c *Client) GetGroup(ctx context.Context, p GroupRef) (json.RawMessage, error) {
	return c.Get(ctx, OpGetGroup, p.path(), nil)
}

func (c *Client) CreateGroup(ctx context.Context, p CreateGroupParams) (json.RawMessage, error) {
	return c.Send(ctx, OpCreateGroup, nil, p)
}

func (c *Client) UpdateGroup(ctx context.Context, p UpdateGroupParams) (json.RawMessage, error) {
	return c.Send(ctx, OpUpdateGroup, p.path(), p.GroupUpdate)
}

func (c *Client) DeleteGroup(ctx context.Context, p GroupRef) (json.RawMessage, error) {
	return c.Send(ctx, OpDeleteGroup, p.path(), nil)
}

func (c *Client) GetGroupMembers(ctx context.Context, p GroupMembersPageParams) (json.RawMessage, error) {
	return c.Get(ctx, OpGetGroupMembers, p.path(), NewQueryBuilder().AddPage(p.Page).Build())
}

func (c *Client) AddMembersToGroup(ctx context.Context, p GroupMembersParams) (json.RawMessage, error) {
	return c.Send(ctx, OpAddMembersToGroup, p.path(), p.MemberIDs)
}

func (c *Client) RemoveMembersFromGroup(ctx context.Context, p GroupMembersParams) (json.RawMessage, error) {
	return c.Send(ctx, OpRemoveMembersFromGroup, p.path(), p.MemberIDs)
}

func (c *Client) AddCoursesToGroup(ctx context.Context, p GroupCoursesParams) (json.RawMessage, error) {
	return c.Send(ctx, OpAddCoursesToGroup, p.path(), p.CourseIDs)
}

func (c *Client) RemoveCoursesFromGroup(ctx context.Context, p GroupCoursesParams) (json.RawMessage, error) {
	return c.Send(ctx, OpRemoveCoursesFromGroup, p.path(), p.CourseIDs)
}

func (c *Client) AddBundlesToGroup(ctx context.Context, p GroupBundlesParams) (json.RawMessage, error) {
	return c.Send(ctx, OpAddBundlesToGroup, p.path(), p.BundleIDs)
}

func (c *Client) RemoveBundlesFromGroup(ctx context.Context, p GroupBundlesParams) (json.RawMessage, error) {
	return c.Send(ctx, OpRemoveBundlesFromGroup, p.path(), p.BundleIDs)
}
