package gemini

import (
	"fmt"

	"google.golang.org/genai"

	"github.com/Rizz-Vii/studio-sub011/internal/generation"
)

// ToGenaiSchema converts a generation.Schema into the response schema the
// Gemini API uses for constrained decoding.
func ToGenaiSchema(schema *generation.Schema) (*genai.Schema, error) {
	if schema == nil {
		return nil, fmt.Errorf("%w: schema cannot be nil", generation.ErrInvalidSchema)
	}
	root := generation.Field{
		Name:   schema.Name(),
		Type:   generation.TypeObject,
		Fields: schema.Fields(),
	}
	return convertField(root)
}

func convertField(f generation.Field) (*genai.Schema, error) {
	out := &genai.Schema{Description: f.Description}

	switch f.Type {
	case generation.TypeString:
		out.Type = genai.TypeString
		if len(f.Enum) > 0 {
			out.Format = "enum"
			out.Enum = append([]string{}, f.Enum...)
		}
	case generation.TypeNumber:
		out.Type = genai.TypeNumber
	case generation.TypeInteger:
		out.Type = genai.TypeInteger
	case generation.TypeBoolean:
		out.Type = genai.TypeBoolean
	case generation.TypeArray:
		if f.Items == nil {
			return nil, fmt.Errorf("%w: array field %q has no item type", generation.ErrInvalidSchema, f.Name)
		}
		items, err := convertField(*f.Items)
		if err != nil {
			return nil, err
		}
		out.Type = genai.TypeArray
		out.Items = items
	case generation.TypeObject:
		out.Type = genai.TypeObject
		out.Properties = make(map[string]*genai.Schema, len(f.Fields))
		for _, child := range f.Fields {
			prop, err := convertField(child)
			if err != nil {
				return nil, err
			}
			out.Properties[child.Name] = prop
			out.PropertyOrdering = append(out.PropertyOrdering, child.Name)
			if child.Required {
				out.Required = append(out.Required, child.Name)
			}
		}
	default:
		return nil, fmt.Errorf("%w: field %q has unknown type %q", generation.ErrInvalidSchema, f.Name, f.Type)
	}

	return out, nil
}
