package schema

// Schema resolves a field name to its scalar type. The predicate tree and
// executor both consult it to validate that a leaf's declared type matches
// the field's actual type.
type Schema interface {
	// FieldType returns the field's scalar type, and false if the field is
	// not part of the schema.
	FieldType(field string) (Type, bool)
}

// StaticSchema is a map-backed Schema, used by tests and examples in place
// of a real segment's schema catalog.
type StaticSchema struct {
	fields map[string]Type
	offset map[string]int
	order  []string
}

// NewStaticSchema builds a StaticSchema from an ordered field list. Field
// order is preserved and exposed via Offset, mirroring how a real segment
// assigns a stable column offset to each field at schema definition time.
func NewStaticSchema(fields map[string]Type, order []string) *StaticSchema {
	s := &StaticSchema{
		fields: make(map[string]Type, len(fields)),
		offset: make(map[string]int, len(order)),
		order:  append([]string(nil), order...),
	}
	for i, f := range order {
		s.offset[f] = i
	}
	for k, v := range fields {
		s.fields[k] = v
	}
	return s
}

// FieldType implements Schema.
func (s *StaticSchema) FieldType(field string) (Type, bool) {
	t, ok := s.fields[field]
	return t, ok
}

// Offset returns the field's stable column offset, resolved once by callers
// that want to avoid repeated map lookups on a hot leaf-evaluation path.
func (s *StaticSchema) Offset(field string) (int, bool) {
	o, ok := s.offset[field]
	return o, ok
}
