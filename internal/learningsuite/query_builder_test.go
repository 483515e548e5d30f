package learningsuite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryBuilder(t *testing.T) {
	tests := []struct {
		name string
		qb   *QueryBuilder
		want string
	}{
		{
			name: "nothing set",
			qb:   NewQueryBuilder().AddString("search", nil).AddBool("flag", nil).AddNumber("limit", nil),
			want: "",
		},
		{
			name: "integral number has no fraction",
			qb:   NewQueryBuilder().AddNumber("limit", ptr(25.0)),
			want: "limit=25",
		},
		{
			name: "fractional number",
			qb:   NewQueryBuilder().AddNumber("position", ptr(2.5)),
			want: "position=2.5",
		},
		{
			name: "bool and string",
			qb:   NewQueryBuilder().AddBool("includeGroups", ptr(true)).AddString("search", ptr("a b")),
			want: "includeGroups=true&search=a+b",
		},
		{
			name: "empty string is still present",
			qb:   NewQueryBuilder().AddString("search", ptr("")),
			want: "search=",
		},
		{
			name: "non-empty adder skips empty string",
			qb:   NewQueryBuilder().AddNonEmpty("event", "").AddNonEmpty("sort", "newest"),
			want: "sort=newest",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.qb.Build().Encode())
		})
	}
}
