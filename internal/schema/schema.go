package schema

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	gormschema "gorm.io/gorm/schema"
)

// ErrUnknownAttribute indicates a query expression referenced an attribute
// that does not exist on the resource model.
var ErrUnknownAttribute = errors.New("unknown resource attribute")

// ColumnKind classifies the Go type behind a resolved column.
type ColumnKind int

const (
	KindUnknown ColumnKind = iota
	KindString
	KindInt
	KindUint
	KindFloat
	KindBool
	KindTime
	KindBytes
	KindDecimal
	KindUUID
)

// String returns a readable name for the column kind.
func (k ColumnKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindTime:
		return "time"
	case KindBytes:
		return "bytes"
	case KindDecimal:
		return "decimal"
	case KindUUID:
		return "uuid"
	default:
		return "unknown"
	}
}

// Column is the resolved handle for a single model attribute. It is opaque to
// the query parser; downstream query builders rely on Name and DBName to
// address the attribute.
type Column struct {
	// Name is the Go struct field name.
	Name string
	// DBName is the database column name derived from gorm conventions.
	DBName string
	// Kind classifies the column's Go type.
	Kind ColumnKind
	// GoType is the struct field type, with pointers preserved.
	GoType reflect.Type
	// PrimaryKey reports whether the column is part of the primary key.
	PrimaryKey bool
}

// Model describes the queryable attributes of a resource model. A Model is
// read-only after Analyze returns and safe for concurrent use.
type Model struct {
	// Name is the model's Go type name.
	Name string
	// Table is the database table name derived from gorm conventions.
	Table string

	columns map[string]Column
	names   []string
}

// Parsed gorm schemas are cached per model type, matching gorm's own behaviour.
var schemaCache = &sync.Map{}

var (
	decimalType = reflect.TypeOf(decimal.Decimal{})
	uuidType    = reflect.TypeOf(uuid.UUID{})
)

// Analyze extracts the queryable schema from a model struct. Column naming
// follows gorm conventions so downstream query builders see the same database
// identifiers gorm would generate for the model.
func Analyze(model any) (*Model, error) {
	parsed, err := gormschema.Parse(model, schemaCache, gormschema.NamingStrategy{})
	if err != nil {
		return nil, fmt.Errorf("analyzing model: %w", err)
	}

	m := &Model{
		Name:    parsed.Name,
		Table:   parsed.Table,
		columns: make(map[string]Column, len(parsed.Fields)),
	}

	for _, field := range parsed.Fields {
		if field.DBName == "" {
			// Ignored fields carry no column of their own.
			continue
		}

		col := Column{
			Name:       field.Name,
			DBName:     field.DBName,
			Kind:       kindOf(field),
			GoType:     field.FieldType,
			PrimaryKey: field.PrimaryKey,
		}

		m.columns[field.Name] = col
		m.names = append(m.names, field.Name)

		// The gorm column name is accepted as an alias unless a field of that
		// exact name exists.
		if _, ok := m.columns[field.DBName]; !ok {
			m.columns[field.DBName] = col
		}
	}

	return m, nil
}

// Resolve maps an attribute name from a query expression to its column.
// Both the Go field name and the gorm column name are accepted. Resolution
// never partially succeeds: either the attribute exists or an error wrapping
// ErrUnknownAttribute is returned.
func (m *Model) Resolve(attribute string) (Column, error) {
	col, ok := m.columns[attribute]
	if !ok {
		return Column{}, fmt.Errorf("%w: resource model %s does not contain %s attribute",
			ErrUnknownAttribute, m.Name, attribute)
	}
	return col, nil
}

// Columns returns the resolvable columns in struct declaration order.
func (m *Model) Columns() []Column {
	out := make([]Column, 0, len(m.names))
	for _, name := range m.names {
		out = append(out, m.columns[name])
	}
	return out
}

// kindOf classifies a gorm field. Well-known external types are matched by
// their Go type before falling back to gorm's data type classification.
func kindOf(field *gormschema.Field) ColumnKind {
	goType := field.FieldType
	for goType.Kind() == reflect.Ptr {
		goType = goType.Elem()
	}

	switch goType {
	case decimalType:
		return KindDecimal
	case uuidType:
		return KindUUID
	}

	switch field.DataType {
	case gormschema.String:
		return KindString
	case gormschema.Int:
		return KindInt
	case gormschema.Uint:
		return KindUint
	case gormschema.Float:
		return KindFloat
	case gormschema.Bool:
		return KindBool
	case gormschema.Time:
		return KindTime
	case gormschema.Bytes:
		return KindBytes
	}

	return KindUnknown
}
