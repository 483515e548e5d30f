package learningsuite

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	Method   string
	Path     string
	RawQuery string
	Header   http.Header
	Body     string
}

func newFakeAPI(t *testing.T, status int, body string) (*Client, *capturedRequest) {
	t.Helper()
	captured := &capturedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		*captured = capturedRequest{
			Method:   r.Method,
			Path:     r.URL.EscapedPath(),
			RawQuery: r.URL.RawQuery,
			Header:   r.Header.Clone(),
			Body:     string(b),
		}
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return New("test-key", WithBaseURL(srv.URL+"/"), WithHTTPClient(srv.Client())), captured
}

func ptr[T any](v T) *T { return &v }

func TestClient_SendsAuthHeaders(t *testing.T) {
	c, got := newFakeAPI(t, http.StatusOK, `{}`)

	_, err := c.ListHubs(context.Background(), NoParams{})
	require.NoError(t, err)

	assert.Equal(t, "test-key", got.Header.Get("X-API-Key"))
	assert.Equal(t, "application/json", got.Header.Get("Content-Type"))
	assert.Equal(t, "/hubs", got.Path)
}

func TestClient_GetMember(t *testing.T) {
	c, got := newFakeAPI(t, http.StatusOK, `{"id":"abc123","email":"a@b.com"}`)

	payload, err := c.GetMember(context.Background(), GetMemberParams{
		MemberRef:     MemberRef{MemberID: "abc123"},
		IncludeGroups: ptr(true),
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, got.Method)
	assert.Equal(t, "/members/abc123", got.Path)
	assert.Equal(t, "includeGroups=true", got.RawQuery)
	assert.Empty(t, got.Body)
	assert.JSONEq(t, `{"id":"abc123","email":"a@b.com"}`, string(payload))
}

func TestClient_OmitsAbsentQueryValues(t *testing.T) {
	c, got := newFakeAPI(t, http.StatusOK, `[]`)

	_, err := c.ListMembers(context.Background(), ListMembersParams{Search: ptr("jane")})
	require.NoError(t, err)

	assert.Equal(t, "search=jane", got.RawQuery)
	assert.NotContains(t, got.RawQuery, "limit")
	assert.NotContains(t, got.RawQuery, "groupId")
	assert.NotContains(t, got.RawQuery, "undefined")
}

func TestClient_KeepsZeroQueryValues(t *testing.T) {
	c, got := newFakeAPI(t, http.StatusOK, `[]`)

	_, err := c.ListCourses(context.Background(), ListCoursesParams{
		Page:               Page{Limit: ptr(10.0), Offset: ptr(0.0)},
		IncludeUnpublished: ptr(false),
	})
	require.NoError(t, err)

	assert.Equal(t, "includeUnpublished=false&limit=10&offset=0", got.RawQuery)
}

func TestClient_DeleteWithBody(t *testing.T) {
	c, got := newFakeAPI(t, http.StatusOK, `{"success":true}`)

	_, err := c.RemoveMemberFromCourses(context.Background(), MemberCoursesParams{
		MemberRef: MemberRef{MemberID: "m1"},
		CourseIDs: CourseIDs{CourseIDs: []string{"c1", "c2"}},
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodDelete, got.Method)
	assert.Equal(t, "/members/m1/courses", got.Path)
	assert.JSONEq(t, `{"courseIds":["c1","c2"]}`, got.Body)
}

func TestClient_UpdateSendsOnlyPresentFields(t *testing.T) {
	c, got := newFakeAPI(t, http.StatusOK, `{}`)

	_, err := c.UpdateMember(context.Background(), UpdateMemberParams{
		MemberRef:    MemberRef{MemberID: "m1"},
		MemberUpdate: MemberUpdate{FirstName: ptr("Jane"), IsActive: ptr(false)},
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, got.Method)
	assert.Equal(t, "/members/m1", got.Path)
	assert.JSONEq(t, `{"firstName":"Jane","isActive":false}`, got.Body)
}

func TestClient_DeleteWithoutBody(t *testing.T) {
	c, got := newFakeAPI(t, http.StatusNoContent, ``)

	_, err := c.DeleteWebhook(context.Background(), WebhookRef{WebhookID: "w1"})
	require.NoError(t, err)

	assert.Equal(t, http.MethodDelete, got.Method)
	assert.Equal(t, "/webhooks/w1", got.Path)
	assert.Empty(t, got.Body)
}

func TestClient_EscapesPathParameters(t *testing.T) {
	c, got := newFakeAPI(t, http.StatusOK, `{}`)

	_, err := c.GetGroup(context.Background(), GroupRef{GroupID: "a/b c"})
	require.NoError(t, err)

	assert.Equal(t, "/groups/a%2Fb%20c", got.Path)
}

func TestClient_MissingPathParameterFailsBeforeRequest(t *testing.T) {
	c, got := newFakeAPI(t, http.StatusOK, `[{"id":"everyone"}]`)

	_, err := c.DeleteMember(context.Background(), MemberRef{})
	require.ErrorIs(t, err, ErrMissingPathParameter)
	assert.Equal(t, "missing path parameter memberId for delete_member", err.Error())

	_, err = c.GetCourse(context.Background(), CourseRef{})
	require.ErrorIs(t, err, ErrMissingPathParameter)

	assert.Empty(t, got.Method, "no request may reach the API")
}

func TestClient_OmitsAbsentBodyFields(t *testing.T) {
	c, got := newFakeAPI(t, http.StatusOK, `{}`)

	_, err := c.CreateCommunityPost(context.Background(), CreateCommunityPostParams{
		ForumRef: ForumRef{ForumID: "f1"},
		NewPost:  NewPost{Title: "t"},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"t"}`, got.Body)

	_, err = c.AddMemberToCourses(context.Background(), MemberCoursesParams{MemberRef: MemberRef{MemberID: "m1"}})
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, got.Body)
}

func TestClient_StatusPassthrough(t *testing.T) {
	c, _ := newFakeAPI(t, http.StatusNotFound, `not found`)

	_, err := c.GetMember(context.Background(), GetMemberParams{MemberRef: MemberRef{MemberID: "x"}})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "API Error 404: not found", err.Error())
}

func TestClient_EmptySuccessBody(t *testing.T) {
	for _, status := range []int{http.StatusOK, http.StatusNoContent} {
		c, _ := newFakeAPI(t, status, ``)

		payload, err := c.DeleteMember(context.Background(), MemberRef{MemberID: "m1"})
		require.NoError(t, err)
		assert.JSONEq(t, `{}`, string(payload))
	}
}

func TestClient_MalformedSuccessBody(t *testing.T) {
	c, _ := newFakeAPI(t, http.StatusOK, `<html>oops</html>`)

	_, err := c.ListWebhooks(context.Background(), NoParams{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedResponse))
}

func TestClient_GetRejectsMutatingOperation(t *testing.T) {
	c, got := newFakeAPI(t, http.StatusOK, `{}`)

	_, err := c.Get(context.Background(), OpCreateMember, nil, nil)
	require.Error(t, err)
	assert.Empty(t, got.Method, "no request should reach the API")
}

func TestClient_SendRejectsBodyOnRead(t *testing.T) {
	c, got := newFakeAPI(t, http.StatusOK, `{}`)

	_, err := c.Send(context.Background(), OpListHubs, nil, map[string]string{"x": "y"})
	require.Error(t, err)
	assert.Empty(t, got.Method)
}
