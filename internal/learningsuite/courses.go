package learningsuite

import (
	"context"
	"encoding/json"
	"net/http"
)

var (
	OpListCourses        = op("list_courses", http.MethodGet, "/courses")
	OpGetCourse          = op("get_course", http.MethodGet, "/courses/{courseId}")
	OpGetCourseMembers   = op("get_course_members", http.MethodGet, "/courses/{courseId}/members")
	OpListCourseModules  = op("list_course_modules", http.MethodGet, "/courses/{courseId}/modules")
	OpGetModule          = op("get_module", http.MethodGet, "/modules/{moduleId}")
	OpListModuleSections = op("list_module_sections", http.MethodGet, "/modules/{moduleId}/sections")
	OpListSectionLessons = op("list_section_lessons", http.MethodGet, "/sections/{sectionId}/lessons")
	OpGetLesson          = op("get_lesson", http.MethodGet, "/lessons/{lessonId}")
	OpCreateLesson       = op("create_lesson", http.MethodPost, "/sections/{sectionId}/lessons")
	OpListBundles        = op("list_bundles", http.MethodGet, "/bundles")
	OpGetBundle          = op("get_bundle", http.MethodGet, "/bundles/{bundleId}")
)

// Lesson types accepted by create_lesson.
var LessonTypes = []string{"text", "video", "quiz", "assignment"}

type CourseRef struct {
	CourseID string `json:"courseId"`
}

func (r CourseRef) path() map[string]string {
	return map[string]string{"courseId": r.CourseID}
}

type ModuleRef struct {
	ModuleID string `json:"moduleId"`
}

func (r ModuleRef) path() map[string]string {
	return map[string]string{"moduleId": r.ModuleID}
}

type SectionRef struct {
	SectionID string `json:"sectionId"`
}

func (r SectionRef) path() map[string]string {
	return map[string]string{"sectionId": r.SectionID}
}

type LessonRef struct {
	LessonID string `json:"lessonId"`
}

type BundleRef struct {
	BundleID string `json:"bundleId"`
}

type ListCoursesParams struct {
	Page
	IncludeUnpublished *bool `json:"includeUnpublished,omitempty"`
}

type CourseMembersParams struct {
	CourseRef
	Page
}

type NewLesson struct {
	Title    string   `json:"title,omitempty"`
	Type     *string  `json:"type,omitempty"`
	Content  *string  `json:"content,omitempty"`
	VideoURL *string  `json:"videoUrl,omitempty"`
	Position *float64 `json:"position,omitempty"`
}

type CreateLessonParams struct {
	SectionRef
	NewLesson
}

type ListBundlesParams struct {
	Page
}

func (c *Client) ListCourses(ctx context.Context, p ListCoursesParams) (json.RawMessage, error) {
	q := NewQueryBuilder().
		AddPage(p.Page).
		AddBool("includeUnpublished", p.IncludeUnpublished)
	return c.Get(ctx, OpListCourses, nil, q.Build())
}

func (c *Client) GetCourse(ctx context.Context, p CourseRef) (json.RawMessage, error) {
	return c.Get(ctx, OpGetCourse, p.path(), nil)
}

func (c *Client) GetCourseMembers(ctx context.Context, p CourseMembersParams) (json.RawMessage, error) {
	return c.Get(ctx, OpGetCourseMembers, p.path(), NewQueryBuilder().AddPage(p.Page).Build())
}

func (c *Client) ListCourseModules(ctx context.Context, p CourseRef) (json.RawMessage, error) {
	return c.Get(ctx, OpListCourseModules, p.path(), nil)
}

func (c *Client) GetModule(ctx context.Context, p ModuleRef) (json.RawMessage, error) {
	return c.Get(ctx, OpGetModule, p.path(), nil)
}

func (c *Client) ListModuleSections(ctx context.Context, p ModuleRef) (json.RawMessage, error) {
	return c.Get(ctx, OpListModuleSections, p.path(), nil)
}

func (c *Client) ListSectionLessons(ctx context.Context, p SectionRef) (json.RawMessage, error) {
	return c.Get(ctx, OpListSectionLessons, p.path(), nil)
}

func (c *Client) GetLesson(ctx context.Context, p LessonRef) (json.RawMessage, error) {
	return c.Get(ctx, OpGetLesson, map[string]string{"lessonId": p.LessonID}, nil)
}

func (c *Client) CreateLesson(ctx context.Context, p CreateLessonParams) (json.RawMessage, error) {
	return c.Send(ctx, OpCreateLesson, p.path(), p.NewLesson)
}

func (c *Client) ListBundles(ctx context.Context, p ListBundlesParams) (json.RawMessage, error) {
	return c.Get(ctx, OpListBundles, nil, NewQueryBuilder().AddPage(p.Page).Build())
}

func (c *Client) GetBundle(ctx context.Context, p BundleRef) (json.RawMessage, error) {
	return c.Get(ctx, OpGetBundle, map[string]string{"bundleId": p.BundleID}, nil)
}
