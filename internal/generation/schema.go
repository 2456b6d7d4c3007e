package generation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// FieldType is the JSON type of a schema field.
type FieldType string

// Supported field types.
const (
	TypeString  FieldType = "string"
	TypeNumber  FieldType = "number"
	TypeInteger FieldType = "integer"
	TypeBoolean FieldType = "boolean"
	TypeArray   FieldType = "array"
	TypeObject  FieldType = "object"
)

// Field describes one named value in a Schema. Fields are built with the
// constructor functions (String, Number, Enum, Array, Object, ...) and are
// required unless marked with Optional.
type Field struct {
	Name        string
	Type        FieldType
	Description string
	// Enum restricts a string field to the listed values.
	Enum []string
	// Items describes the elements of an array field. Its Name is ignored.
	Items *Field
	// Fields are the properties of an object field, in declaration order.
	Fields   []Field
	Required bool
}

// String declares a required string field.
func String(name, description string) Field {
	return Field{Name: name, Type: TypeString, Description: description, Required: true}
}

// Number declares a required floating point field.
func Number(name, description string) Field {
	return Field{Name: name, Type: TypeNumber, Description: description, Required: true}
}

// Integer declares a required integer field.
func Integer(name, description string) Field {
	return Field{Name: name, Type: TypeInteger, Description: description, Required: true}
}

// Boolean declares a required boolean field.
func Boolean(name, description string) Field {
	return Field{Name: name, Type: TypeBoolean, Description: description, Required: true}
}

// Enum declares a required string field limited to values.
func Enum(name, description string, values ...string) Field {
	return Field{
		Name:        name,
		Type:        TypeString,
		Description: description,
		Enum:        append([]string{}, values...),
		Required:    true,
	}
}

// Array declares a required array field whose elements match items.
func Array(name, description string, items Field) Field {
	items = items.clone()
	return Field{Name: name, Type: TypeArray, Description: description, Items: &items, Required: true}
}

// Object declares a required object field with the given properties.
func Object(name, description string, fields ...Field) Field {
	return Field{
		Name:        name,
		Type:        TypeObject,
		Description: description,
		Fields:      cloneFields(fields),
		Required:    true,
	}
}

// Optional returns a copy of the field that may be omitted.
func (f Field) Optional() Field {
	f.Required = false
	return f
}

func (f Field) clone() Field {
	out := f
	if f.Enum != nil {
		out.Enum = append([]string{}, f.Enum...)
	}
	if f.Items != nil {
		items := f.Items.clone()
		out.Items = &items
	}
	out.Fields = cloneFields(f.Fields)
	return out
}

func cloneFields(fields []Field) []Field {
	if fields == nil {
		return nil
	}
	out := make([]Field, len(fields))
	for i, f := range fields {
		out[i] = f.clone()
	}
	return out
}

// Schema is the output contract of a generation request: an ordered set of
// named fields describing a JSON object. The same Schema drives the primary
// provider's native response schema, the JSON Schema text embedded in the
// fallback prompt, and validation of results on both paths.
//
// A Schema is immutable once built and safe for concurrent use.
type Schema struct {
	name   string
	fields []Field

	once      sync.Once
	text      []byte
	validator *jsonschema.Schema
	err       error
}

// NewSchema builds a Schema for a top-level object with the given fields.
func NewSchema(name string, fields ...Field) *Schema {
	return &Schema{name: name, fields: cloneFields(fields)}
}

// Name returns the schema name used in logs and as the JSON Schema title.
func (s *Schema) Name() string {
	return s.name
}

// Fields returns a copy of the top-level fields in declaration order.
func (s *Schema) Fields() []Field {
	return cloneFields(s.fields)
}

// JSONSchemaText returns the schema rendered as an indented JSON Schema
// document, with properties in declaration order.
func (s *Schema) JSONSchemaText() (string, error) {
	s.compile()
	if s.err != nil {
		return "", s.err
	}
	return string(s.text), nil
}

// Validate checks that v, once encoded as JSON, satisfies the schema.
func (s *Schema) Validate(v any) error {
	s.compile()
	if s.err != nil {
		return s.err
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: value is not JSON encodable: %v", ErrSchemaViolation, err)
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrSchemaViolation, err)
	}

	if err := s.validator.Validate(doc); err != nil {
		return fmt.Errorf("%w: %v", ErrSchemaViolation, err)
	}
	return nil
}

// ParseResult parses raw provider text as a JSON object and validates it.
// Text that is not a JSON object is ErrInvalidResponse; an object that does
// not satisfy the schema is ErrSchemaViolation.
func (s *Schema) ParseResult(text string) (Result, error) {
	s.compile()
	if s.err != nil {
		return nil, s.err
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, ErrEmptyResponse
	}

	var parsed any
	if err := json.Unmarshal([]byte(trimmed), &parsed); err != nil {
		return nil, fmt.Errorf("%w: failed to parse JSON response: %v", ErrInvalidResponse, err)
	}

	obj, ok := parsed.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected a JSON object, got %T", ErrInvalidResponse, parsed)
	}

	if err := s.validator.Validate(obj); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaViolation, err)
	}
	return Result(obj), nil
}

// MarshalJSON renders the schema as a JSON Schema document.
func (s *Schema) MarshalJSON() ([]byte, error) {
	s.compile()
	if s.err != nil {
		return nil, s.err
	}
	return append([]byte(nil), s.text...), nil
}

func (s *Schema) compile() {
	s.once.Do(func() {
		root, err := buildNode(Field{Type: TypeObject, Fields: s.fields}, "")
		if err != nil {
			s.err = fmt.Errorf("%w: %s: %v", ErrInvalidSchema, s.name, err)
			return
		}
		root.Title = s.name

		text, err := json.MarshalIndent(root, "", "  ")
		if err != nil {
			s.err = fmt.Errorf("%w: %s: %v", ErrInvalidSchema, s.name, err)
			return
		}

		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource("schema.json", bytes.NewReader(text)); err != nil {
			s.err = fmt.Errorf("%w: %s: %v", ErrInvalidSchema, s.name, err)
			return
		}
		compiled, err := compiler.Compile("schema.json")
		if err != nil {
			s.err = fmt.Errorf("%w: %s: %v", ErrInvalidSchema, s.name, err)
			return
		}

		s.text = text
		s.validator = compiled
	})
}

// schemaNode is the JSON Schema representation of a Field.
type schemaNode struct {
	Title       string      `json:"title,omitempty"`
	Type        FieldType   `json:"type"`
	Description string      `json:"description,omitempty"`
	Enum        []string    `json:"enum,omitempty"`
	Items       *schemaNode `json:"items,omitempty"`
	Properties  properties  `json:"properties,omitempty"`
	Required    []string    `json:"required,omitempty"`
}

type property struct {
	name string
	node *schemaNode
}

// properties keeps declaration order when marshaled, unlike a map.
type properties []property

func (p properties) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, prop := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(prop.name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(prop.node)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func buildNode(f Field, path string) (*schemaNode, error) {
	node := &schemaNode{Type: f.Type, Description: f.Description}

	switch f.Type {
	case TypeString:
		if f.Enum != nil && len(f.Enum) == 0 {
			return nil, fmt.Errorf("enum field %q has no values", path)
		}
		node.Enum = append([]string(nil), f.Enum...)
	case TypeNumber, TypeInteger, TypeBoolean:
	case TypeArray:
		if f.Items == nil {
			return nil, fmt.Errorf("array field %q has no item type", path)
		}
		items, err := buildNode(*f.Items, path+"[]")
		if err != nil {
			return nil, err
		}
		node.Items = items
	case TypeObject:
		seen := make(map[string]bool, len(f.Fields))
		for _, child := range f.Fields {
			childPath := child.Name
			if path != "" {
				childPath = path + "." + child.Name
			}
			if child.Name == "" {
				return nil, fmt.Errorf("object %q has a field without a name", path)
			}
			if seen[child.Name] {
				return nil, fmt.Errorf("duplicate field %q", childPath)
			}
			seen[child.Name] = true

			childNode, err := buildNode(child, childPath)
			if err != nil {
				return nil, err
			}
			node.Properties = append(node.Properties, property{name: child.Name, node: childNode})
			if child.Required {
				node.Required = append(node.Required, child.Name)
			}
		}
	default:
		return nil, fmt.Errorf("field %q has unsupported type %q", path, f.Type)
	}

	return node, nil
}
