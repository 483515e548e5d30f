package learningsuite

// Optional fields are pointers so that "absent" and "zero" stay distinct:
// an absent field is never sent, neither in the query nor in a body.

// Page is the limit/offset pair accepted by paginated list endpoints.
type Page struct {
	Limit  *float64 `json:"limit,omitempty"`
	Offset *float64 `json:"offset,omitempty"`
}

type CourseIDs struct {
	CourseIDs []string `json:"courseIds,omitempty"`
}

type BundleIDs struct {
	BundleIDs []string `json:"bundleIds,omitempty"`
}

type MemberIDs struct {
	MemberIDs []string `json:"memberIds,omitempty"`
}

// NoParams is the argument of operations that take no input.
type NoParams struct{}
