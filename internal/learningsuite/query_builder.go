package learningsuite

import (
	"net/url"
	"strconv"
)

// QueryBuilder collects query parameters, skipping every value that is absent.
// Absent is a nil pointer or, for AddNonEmpty, the empty string.
type QueryBuilder struct {
	values url.Values
}

func NewQueryBuilder() *QueryBuilder {
	return &QueryBuilder{
		values: url.Values{},
	}
}

func (qb *QueryBuilder) AddString(key string, value *string) *QueryBuilder {
	if value != nil {
		qb.values.Set(key, *value)
	}
	return qb
}

// AddNonEmpty adds a plain string field unless it is empty.
func (qb *QueryBuilder) AddNonEmpty(key, value string) *QueryBuilder {
	if value != "" {
		qb.values.Set(key, value)
	}
	return qb
}

// AddNumber formats value in its shortest textual form, so 10 becomes "10"
// and 2.5 becomes "2.5".
func (qb *QueryBuilder) AddNumber(key string, value *float64) *QueryBuilder {
	if value != nil {
		qb.values.Set(key, strconv.FormatFloat(*value, 'f', -1, 64))
	}
	return qb
}

func (qb *QueryBuilder) AddBool(key string, value *bool) *QueryBuilder {
	if value != nil {
		qb.values.Set(key, strconv.FormatBool(*value))
	}
	return qb
}

// AddPage adds the limit/offset pair shared by the paginated list endpoints.
func (qb *QueryBuilder) AddPage(p Page) *QueryBuilder {
	return qb.AddNumber("limit", p.Limit).AddNumber("offset", p.Offset)
}

func (qb *QueryBuilder) Build() url.Values {
	if len(qb.values) == 0 {
		return nil
	}
	return qb.values
}
