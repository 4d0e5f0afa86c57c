package schema

// Kind selects the constraint variant a Field enforces.
type Kind int

const (
	// KindString accepts a JSON string, optionally restricted to a
	// closed set of values via Field.Enum.
	KindString Kind = iota

	// KindObject accepts a JSON object validated recursively against
	// Field.Fields.
	KindObject

	// KindArray accepts a JSON array whose elements are each validated
	// against Field.Items.
	KindArray
)

// Field is one node in a constraint tree. Every field carries an explicit
// required/optional designation; enumerated fields reject any value outside
// their declared set.
type Field struct {
	Name        string
	Kind        Kind
	Required    bool
	Description string

	// Enum restricts a KindString field to a closed set of literal
	// values. Empty means any string is accepted.
	Enum []string

	// Fields holds the child constraints of a KindObject field.
	Fields []Field

	// Items constrains every element of a KindArray field. The Name of
	// the item field is unused; elements are addressed by index.
	Items *Field
}

// Object is the root constraint of one tool's input.
type Object struct {
	Fields []Field
}
