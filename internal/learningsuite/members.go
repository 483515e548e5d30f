package learningsuite

import (
	"context"
	"encoding/json"
	"net/http"
)

var (
	OpListMembers             = op("list_members", http.MethodGet, "/members")
	OpGetMember               = op("get_member", http.MethodGet, "/members/{memberId}")
	OpCreateMember            = op("create_member", http.MethodPost, "/members")
	OpUpdateMember            = op("update_member", http.MethodPut, "/members/{memberId}")
	OpDeleteMember            = op("delete_member", http.MethodDelete, "/members/{memberId}")
	OpGetMemberCourses        = op("get_member_courses", http.MethodGet, "/members/{memberId}/courses")
	OpAddMemberToCourses      = op("add_member_to_courses", http.MethodPut, "/members/{memberId}/courses")
	OpRemoveMemberFromCourses = op("remove_member_from_courses", http.MethodDelete, "/members/{memberId}/courses")
	OpGetMemberBundles        = op("get_member_bundles", http.MethodGet, "/members/{memberId}/bundles")
	OpAddMemberToBundles      = op("add_member_to_bundles", http.MethodPut, "/members/{memberId}/bundles")
	OpRemoveMemberFromBundles = op("remove_member_from_bundles", http.MethodDelete, "/members/{memberId}/bundles")
	OpGetMemberCourseProgress = op("get_member_course_progress", http.MethodGet, "/members/{memberId}/courses/{courseId}/progress")
)

type MemberRef struct {
	MemberID string `json:"memberId"`
}

func (r MemberRef) path() map[string]string {
	return map[string]string{"memberId": r.MemberID}
}

type ListMembersParams struct {
	Page
	Search  *string `json:"search,omitempty"`
	GroupID *string `json:"groupId,omitempty"`
}

type GetMemberParams struct {
	MemberRef
	IncludeGroups  *bool `json:"includeGroups,omitempty"`
	IncludeCourses *bool `json:"includeCourses,omitempty"`
}

type CreateMemberParams struct {
	Email            string   `json:"email,omitempty"`
	FirstName        *string  `json:"firstName,omitempty"`
	LastName         *string  `json:"lastName,omitempty"`
	Password         *string  `json:"password,omitempty"`
	Locale           *string  `json:"locale,omitempty"`
	SendWelcomeEmail *bool    `json:"sendWelcomeEmail,omitempty"`
	GroupIDs         []string `json:"groupIds,omitempty"`
}

// MemberUpdate is the body of an update; only present fields are changed.
type MemberUpdate struct {
	Email     *string `json:"email,omitempty"`
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Locale    *string `json:"locale,omitempty"`
	IsActive  *bool   `json:"isActive,omitempty"`
}

type UpdateMemberParams struct {
	MemberRef
	MemberUpdate
}

type MemberCoursesParams struct {
	MemberRef
	CourseIDs
}

type MemberBundlesParams struct {
	MemberRef
	BundleIDs
}

type MemberCourseProgressParams struct {
	MemberRef
	CourseID string `json:"courseId"`
}

func (c *Client) ListMembers(ctx context.Context, p ListMembersParams) (json.RawMessage, error) {
	q := NewQueryBuilder().
		AddPage(p.Page).
		AddString("search", p.Search).
		AddString("groupId", p.GroupID)
	return c.Get(ctx, OpListMembers, nil, q.Build())
}

func (c *Client) GetMember(ctx context.Context, p GetMemberParams) (json.RawMessage, error) {
	q := NewQueryBuilder().
		AddBool("includeGroups", p.IncludeGroups).
		AddBool("includeCourses", p.IncludeCourses)
	return c.Get(ctx, OpGetMember, p.path(), q.Build())
}

func (c *Client) CreateMember(ctx context.Context, p CreateMemberParams) (json.RawMessage, error) {
	return c.Send(ctx, OpCreateMember, nil, p)
}

func (c *Client) UpdateMember(ctx context.Context, p UpdateMemberParams) (json.RawMessage, error) {
	return c.Send(ctx, OpUpdateMember, p.path(), p.MemberUpdate)
}

func (c *Client) DeleteMember(ctx context.Context, p MemberRef) (json.RawMessage, error) {
	return c.Send(ctx, OpDeleteMember, p.path(), nil)
}

func (c *Client) GetMemberCourses(ctx context.Context, p MemberRef) (json.RawMessage, error) {
	return c.Get(ctx, OpGetMemberCourses, p.path(), nil)
}

func (c *Client) AddMemberToCourses(ctx context.Context, p MemberCoursesParams) (json.RawMessage, error) {
	return c.Send(ctx, OpAddMemberToCourses, p.path(), p.CourseIDs)
}

func (c *Client) RemoveMemberFromCourses(ctx context.Context, p MemberCoursesParams) (json.RawMessage, error) {
	return c.Send(ctx, OpRemoveMemberFromCourses, p.path(), p.CourseIDs)
}

func (c *Client) GetMemberBundles(ctx context.Context, p MemberRef) (json.RawMessage, error) {
	return c.Get(ctx, OpGetMemberBundles, p.path(), nil)
}

func (c *Client) AddMemberToBundles(ctx context.Context, p MemberBundlesParams) (json.RawMessage, error) {
	return c.Send(ctx, OpAddMemberToBundles, p.path(), p.BundleIDs)
}

func (c *Client) RemoveMemberFromBundles(ctx context.Context, p MemberBundlesParams) (json.RawMessage, error) {
	return c.Send(ctx, OpRemoveMemberFromBundles, p.path(), p.BundleIDs)
}

func (c *Client) GetMemberCourseProgress(ctx context.Context, p MemberCourseProgressParams) (json.RawMessage, error) {
	path := p.path()
	path["courseId"] = p.CourseID
	return c.Get(ctx, OpGetMemberCourseProgress, path, nil)
}
