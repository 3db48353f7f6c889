package squeal

// Delete is a DELETE statement.
type Delete struct {
	Table     string
	Where     Term    // optional
	Returning Columns // optional
}

// SQL renders the delete.
func (d Delete) SQL() string {
	out := "DELETE FROM " + d.Table
	if d.Where != nil {
		out += " WHERE " + d.Where.SQL()
	}
	if d.Returning != nil {
		out += " RETURNING " + d.Returning.SQL()
	}
	return out
}
