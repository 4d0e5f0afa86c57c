package schema

import (
	"github.com/google/jsonschema-go/jsonschema"
)

// JSONSchema renders the constraint tree as a JSON Schema document. This is
// what tool listing advertises to clients; validation itself runs against
// the tree directly.
func JSONSchema(obj Object) *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:       "object",
		Properties: properties(obj.Fields),
		Required:   requiredNames(obj.Fields),
	}
}

func properties(fields []Field) map[string]*jsonschema.Schema {
	props := make(map[string]*jsonschema.Schema, len(fields))
	for _, f := range fields {
		props[f.Name] = fieldSchema(f)
	}

	return props
}

func requiredNames(fields []Field) []string {
	var required []string
	for _, f := range fields {
		if f.Required {
			required = append(required, f.Name)
		}
	}

	return required
}

func fieldSchema(f Field) *jsonschema.Schema {
	switch f.Kind {
	case KindObject:
		return &jsonschema.Schema{
			Type:        "object",
			Description: f.Description,
			Properties:  properties(f.Fields),
			Required:    requiredNames(f.Fields),
		}
	case KindArray:
		return &jsonschema.Schema{
			Type:        "array",
			Description: f.Description,
			Items:       fieldSchema(*f.Items),
		}
	default:
		s := &jsonschema.Schema{
			Type:        "string",
			Description: f.Description,
		}
		for _, v := range f.Enum {
			s.Enum = append(s.Enum, v)
		}

		return s
	}
}
