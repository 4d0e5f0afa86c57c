package schema

import (
	"fmt"
	"slices"
	"strings"
)

// Violation is one failed constraint, addressed by a dotted path from the
// input root (array elements use an index suffix, e.g. "files[2].path").
type Violation struct {
	Path    string
	Message string
}

func (v Violation) String() string {
	return v.Path + ": " + v.Message
}

// Validate checks raw arguments against the constraint tree and returns
// every violation found in one deterministic pass. A nil or empty return
// means the input is valid. Unknown fields are ignored so callers can send
// newer argument shapes to older servers. Validate performs no I/O.
func Validate(obj Object, raw map[string]any) []Violation {
	var violations []Violation
	validateFields(obj.Fields, raw, "", &violations)

	return violations
}

// Join renders a violation list as one human-readable message.
func Join(violations []Violation) string {
	parts := make([]string, len(violations))
	for i, v := range violations {
		parts[i] = v.String()
	}

	return strings.Join(parts, "; ")
}

func validateFields(fields []Field, raw map[string]any, prefix string, out *[]Violation) {
	for _, f := range fields {
		path := f.Name
		if prefix != "" {
			path = prefix + "." + f.Name
		}

		value, present := raw[f.Name]
		if !present || value == nil {
			// A JSON null is treated as an absent value. Optional
			// fields that distinguish null from omitted (cname)
			// re-check key presence in their handler.
			if f.Required {
				*out = append(*out, Violation{Path: path, Message: "required"})
			}

			continue
		}

		validateValue(f, value, path, out)
	}
}

func validateValue(f Field, value any, path string, out *[]Violation) {
	switch f.Kind {
	case KindString:
		s, ok := value.(string)
		if !ok {
			*out = append(*out, Violation{Path: path, Message: "expected string"})
			return
		}

		if len(f.Enum) > 0 && !slices.Contains(f.Enum, s) {
			*out = append(*out, Violation{
				Path:    path,
				Message: fmt.Sprintf("invalid value %q, allowed values: %s", s, strings.Join(f.Enum, ", ")),
			})
		}
	case KindObject:
		m, ok := value.(map[string]any)
		if !ok {
			*out = append(*out, Violation{Path: path, Message: "expected object"})
			return
		}

		validateFields(f.Fields, m, path, out)
	case KindArray:
		items, ok := value.([]any)
		if !ok {
			*out = append(*out, Violation{Path: path, Message: "expected array"})
			return
		}

		for i, item := range items {
			validateValue(*f.Items, item, fmt.Sprintf("%s[%d]", path, i), out)
		}
	}
}
