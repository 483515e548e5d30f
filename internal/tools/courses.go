package tools

import "github.com/takashabe/learningsuite-mcp/internal/learningsuite"

func courseTools(c *learningsuite.Client) []Tool {
	courseID := id("course")
	moduleID := id("module")
	sectionID := id("section")

	return []Tool{
		newTool("list_courses",
			"List courses.",
			object(paged(props{
				"includeUnpublished": boolean("Also return courses that are not published yet"),
			})),
			bind(c.ListCourses)),
		newTool("get_course",
			"Get a single course by ID.",
			object(props{"courseId": courseID}, "courseId"),
			bind(c.GetCourse)),
		newTool("get_course_members",
			"List the members who have access to a course.",
			object(paged(props{"courseId": courseID}), "courseId"),
			bind(c.GetCourseMembers)),
		newTool("list_course_modules",
			"List the modules of a course.",
			object(props{"courseId": courseID}, "courseId"),
			bind(c.ListCourseModules)),
		newTool("get_module",
			"Get a single course module by ID.",
			object(props{"moduleId": moduleID}, "moduleId"),
			bind(c.GetModule)),
		newTool("list_module_sections",
			"List the sections of a module.",
			object(props{"moduleId": moduleID}, "moduleId"),
			bind(c.ListModuleSections)),
		newTool("list_section_lessons",
			"List the lessons of a section.",
			object(props{"sectionId": sectionID}, "sectionId"),
			bind(c.ListSectionLessons)),
		newTool("get_lesson",
			"Get a single lesson by ID.",
			object(props{"lessonId": id("lesson")}, "lessonId"),
			bind(c.GetLesson)),
		newTool("create_lesson",
			"Create a lesson in a section.",
			object(props{
				"sectionId": sectionID,
				"title":     str("Title of the lesson"),
				"type":      enum("Kind of lesson", learningsuite.LessonTypes),
				"content":   str("Lesson content (HTML)"),
				"videoUrl":  str("Video URL for video lessons"),
				"position":  num("Position within the section, starting at 0"),
			}, "sectionId", "title"),
			bind(c.CreateLesson)),
		newTool("list_bundles",
			"List course bundles.",
			object(paged(nil)),
			bind(c.ListBundles)),
		newTool("get_bundle",
			"Get a single bundle by ID.",
			object(props{"bundleId": id("bundle")}, "bundleId"),
			bind(c.GetBundle)),
	}
}
