package schema

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Customer struct {
	ID         uint   `gorm:"primaryKey"`
	Name       string `gorm:"column:customer_name"`
	Balance    decimal.Decimal
	ExternalID uuid.UUID
	CreatedAt  time.Time
	Active     bool
	Score      *float64
}

func TestAnalyze(t *testing.T) {
	model, err := Analyze(Customer{})
	require.NoError(t, err)

	assert.Equal(t, "Customer", model.Name)
	assert.Equal(t, "customers", model.Table)
}

func TestAnalyzeColumnKinds(t *testing.T) {
	model, err := Analyze(Customer{})
	require.NoError(t, err)

	tests := []struct {
		attribute string
		kind      ColumnKind
	}{
		{"ID", KindUint},
		{"Name", KindString},
		{"Balance", KindDecimal},
		{"ExternalID", KindUUID},
		{"CreatedAt", KindTime},
		{"Active", KindBool},
		{"Score", KindFloat},
	}

	for _, tt := range tests {
		col, err := model.Resolve(tt.attribute)
		require.NoError(t, err, tt.attribute)
		assert.Equal(t, tt.kind, col.Kind, tt.attribute)
	}
}

func TestAnalyzeColumnNaming(t *testing.T) {
	model, err := Analyze(Customer{})
	require.NoError(t, err)

	col, err := model.Resolve("Name")
	require.NoError(t, err)
	assert.Equal(t, "Name", col.Name)
	assert.Equal(t, "customer_name", col.DBName)

	// The gorm column name resolves to the same column.
	alias, err := model.Resolve("customer_name")
	require.NoError(t, err)
	assert.Equal(t, col, alias)
}

func TestAnalyzePrimaryKey(t *testing.T) {
	model, err := Analyze(Customer{})
	require.NoError(t, err)

	id, err := model.Resolve("ID")
	require.NoError(t, err)
	assert.True(t, id.PrimaryKey)

	name, err := model.Resolve("Name")
	require.NoError(t, err)
	assert.False(t, name.PrimaryKey)
}

func TestResolveUnknownAttribute(t *testing.T) {
	model, err := Analyze(Customer{})
	require.NoError(t, err)

	_, err = model.Resolve("Missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownAttribute)
	assert.Contains(t, err.Error(), "Customer")
	assert.Contains(t, err.Error(), "Missing")
}

func TestColumnsOrder(t *testing.T) {
	model, err := Analyze(Customer{})
	require.NoError(t, err)

	columns := model.Columns()
	require.Len(t, columns, 7)

	names := make([]string, 0, len(columns))
	for _, col := range columns {
		names = append(names, col.Name)
	}
	assert.Equal(t, []string{"ID", "Name", "Balance", "ExternalID", "CreatedAt", "Active", "Score"}, names)
}

func TestAnalyzeNonStruct(t *testing.T) {
	_, err := Analyze(42)
	assert.Error(t, err)
}

func TestColumnKindString(t *testing.T) {
	assert.Equal(t, "string", KindString.String())
	assert.Equal(t, "decimal", KindDecimal.String())
	assert.Equal(t, "uuid", KindUUID.String())
	assert.Equal(t, "unknown", KindUnknown.String())
}
