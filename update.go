package squeal

import "strings"

// Update is an UPDATE statement. Columns and Values are paired by index;
// extra entries on the longer side are dropped.
type Update struct {
	Table     string
	Columns   []string
	Values    []string
	From      string  // optional; PostgreSQL UPDATE ... FROM
	Where     Term    // optional
	Returning Columns // optional
}

// SQL renders the update.
func (u Update) SQL() string {
	n := min(len(u.Columns), len(u.Values))
	sets := make([]string, n)
	for i := range n {
		sets[i] = Assign(u.Columns[i], u.Values[i]).SQL()
	}

	var sb strings.Builder
	sb.WriteString("UPDATE ")
	sb.WriteString(u.Table)
	sb.WriteString(" SET ")
	sb.WriteString(strings.Join(sets, ", "))
	if u.From != "" {
		sb.WriteString(" FROM ")
		sb.WriteString(u.From)
	}
	if u.Where != nil {
		sb.WriteString(" WHERE ")
		sb.WriteString(u.Where.SQL())
	}
	if u.Returning != nil {
		sb.WriteString(" RETURNING ")
		sb.WriteString(u.Returning.SQL())
	}
	return sb.String()
}
