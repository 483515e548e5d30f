package learningsuite

import (
	"fmt"
	"net/http"

	"github.com/yosida95/uritemplate/v3"
)

// Operation is one entry of the fixed LearningSuite operation catalog.
type Operation struct {
	Name   string
	Method string
	Path   *uritemplate.Template
}

// catalog is the declaration order used for listing: members, groups,
// courses, hubs, community, notifications, webhooks.
var catalog = []Operation{
	OpListMembers,
	OpGetMember,
	OpCreateMember,
	OpUpdateMember,
	OpDeleteMember,
	OpGetMemberCourses,
	OpAddMemberToCourses,
	OpRemoveMemberFromCourses,
	OpGetMemberBundles,
	OpAddMemberToBundles,
	OpRemoveMemberFromBundles,
	OpGetMemberCourseProgress,

	OpListGroups,
	OpGetGroup,
	OpCreateGroup,
	OpUpdateGroup,
	OpDeleteGroup,
	OpGetGroupMembers,
	OpAddMembersToGroup,
	OpRemoveMembersFromGroup,
	OpAddCoursesToGroup,
	OpRemoveCoursesFromGroup,
	OpAddBundlesToGroup,
	OpRemoveBundlesFromGroup,

	OpListCourses,
	OpGetCourse,
	OpGetCourseMembers,
	OpListCourseModules,
	OpGetModule,
	OpListModuleSections,
	OpListSectionLessons,
	OpGetLesson,
	OpCreateLesson,
	OpListBundles,
	OpGetBundle,

	OpListHubs,
	OpGetHub,
	OpCreateHub,
	OpUpdateHub,
	OpDeleteHub,
	OpGrantHubAccess,
	OpRevokeHubAccess,

	OpListCommunityAreas,
	OpListCommunityForums,
	OpListCommunityPosts,
	OpGetCommunityPost,
	OpCreateCommunityPost,
	OpDeleteCommunityPost,
	OpCreateCommunityComment,
	OpListCommunityBadges,
	OpAwardCommunityBadge,
	OpRevokeCommunityBadge,

	OpListPopups,
	OpGetPopupTriggers,
	OpTriggerPopup,
	OpResetPopupTrigger,
	OpSendPushNotification,

	OpListWebhooks,
	OpGetWebhook,
	OpCreateWebhook,
	OpUpdateWebhook,
	OpDeleteWebhook,
	OpGetWebhookSamplePayload,
}

func op(name, method, path string) Operation {
	return Operation{
		Name:   name,
		Method: method,
		Path:   uritemplate.MustNew(path),
	}
}

// Operations returns the catalog in declaration order.
func Operations() []Operation {
	out := make([]Operation, len(catalog))
	copy(out, catalog)
	return out
}

// HasBody reports whether requests for this operation may carry a JSON body.
func (o Operation) HasBody() bool {
	switch o.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	default:
		return false
	}
}

// Expand substitutes path parameters into the template. Every variable of
// the template must be given a non-empty value.
func (o Operation) Expand(params map[string]string) (string, error) {
	vars := uritemplate.Values{}
	for _, name := range o.Path.Varnames() {
		value := params[name]
		if value == "" {
			return "", fmt.Errorf("%w %s for %s", ErrMissingPathParameter, name, o.Name)
		}
		vars.Set(name, uritemplate.String(value))
	}
	path, err := o.Path.Expand(vars)
	if err != nil {
		return "", fmt.Errorf("expand path for %s: %w", o.Name, err)
	}
	return path, nil
}

func (o Operation) String() string {
	return o.Method + " " + o.Path.Raw()
}
