package squeal

// Statement is implemented by every top-level renderable unit.
// SQL returns a single line of PostgreSQL text with $N placeholders left
// for the driver to bind.
type Statement interface {
	SQL() string
}

var (
	_ Statement = Query{}
	_ Statement = Insert{}
	_ Statement = Update{}
	_ Statement = Delete{}
	_ Statement = CreateTable{}
	_ Statement = DropTable{}
)

// Ptr returns a pointer to v. Handy for the optional numeric fields of a
// Query literal, e.g. Limit: squeal.Ptr[uint64](10).
func Ptr[T any](v T) *T {
	return &v
}
