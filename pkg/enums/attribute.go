package enums

// AttributeName identifies a selectable product dimension. The set is open;
// only the names below receive special display treatment.
type AttributeName string

const (
	AttributeSize  AttributeName = "size"
	AttributeColor AttributeName = "color"
)

// String implements fmt.Stringer.
func (a AttributeName) String() string {
	return string(a)
}
