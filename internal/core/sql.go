package core

import "strings"

// selectQuery builds "SELECT *" statements. Values always travel as bind
// arguments; only validated identifiers reach the statement text.
type selectQuery struct {
	table   string
	filters []string
	args    []any
	orderBy string
	page    *pageOptions
}

func selectFrom(t table) *selectQuery {
	return &selectQuery{table: t.name}
}

func (q *selectQuery) where(clause string, args ...any) *selectQuery {
	q.filters = append(q.filters, clause)
	q.args = append(q.args, args...)
	return q
}

func (q *selectQuery) sort(opts sortOptions) *selectQuery {
	q.orderBy = opts.clause()
	return q
}

func (q *selectQuery) paginate(opts pageOptions) *selectQuery {
	q.page = &opts
	return q
}

func (q *selectQuery) build() (string, []any) {
	var sb strings.Builder
	sb.WriteString("SELECT * FROM ")
	sb.WriteString(q.table)

	if len(q.filters) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(q.filters, " AND "))
	}

	if q.orderBy != "" {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(q.orderBy)
	}

	args := append([]any{}, q.args...)
	if q.page != nil {
		sb.WriteString(" LIMIT ? OFFSET ?")
		args = append(args, q.page.PageSize, q.page.offset())
	}

	return sb.String(), args
}
