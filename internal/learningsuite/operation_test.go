package learningsuite

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperations_Unique(t *testing.T) {
	ops := Operations()
	require.NotEmpty(t, ops)

	names := map[string]bool{}
	routes := map[string]bool{}
	for _, o := range ops {
		assert.False(t, names[o.Name], "duplicate operation name %s", o.Name)
		assert.False(t, routes[o.String()], "duplicate route %s", o)
		names[o.Name] = true
		routes[o.String()] = true

		assert.True(t, strings.HasPrefix(o.Path.Raw(), "/"), "%s must be rooted", o.Name)
	}
}

func TestOperation_HasBody(t *testing.T) {
	assert.False(t, OpGetMember.HasBody())
	assert.True(t, OpCreateMember.HasBody())
	assert.True(t, OpUpdateMember.HasBody())
	assert.True(t, OpRemoveMemberFromCourses.HasBody())
}

func TestOperation_Expand(t *testing.T) {
	path, err := OpGetMemberCourseProgress.Expand(map[string]string{
		"memberId": "m1",
		"courseId": "c1",
	})
	require.NoError(t, err)
	assert.Equal(t, "/members/m1/courses/c1/progress", path)

	assert.Equal(t, http.MethodGet+" /members/{memberId}", OpGetMember.String())
}

func TestOperation_ExpandRequiresEveryVariable(t *testing.T) {
	tests := []struct {
		name   string
		params map[string]string
	}{
		{name: "nil", params: nil},
		{name: "empty value", params: map[string]string{"memberId": "m1", "courseId": ""}},
		{name: "other key only", params: map[string]string{"courseId": "c1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := OpGetMemberCourseProgress.Expand(tt.params)
			require.ErrorIs(t, err, ErrMissingPathParameter)
		})
	}

	path, err := OpListMembers.Expand(nil)
	require.NoError(t, err)
	assert.Equal(t, "/members", path)
}

func TestOperations_DeclarationOrder(t *testing.T) {
	ops := Operations()
	require.Len(t, ops, 63)

	assert.Equal(t, "list_members", ops[0].Name)
	assert.Equal(t, "list_groups", ops[12].Name)
	assert.Equal(t, "get_webhook_sample_payload", ops[len(ops)-1].Name)
}
