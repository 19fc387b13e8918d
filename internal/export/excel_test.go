package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/shenikar/shomrim_dispatch/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWorkbook_WritesHeaderAndRows(t *testing.T) {
	// Подготовка
	created := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	records := []models.Record{
		{{Name: "id", Value: "inc-1"}, {Name: "shcad", Value: "CAD1"}, {Name: "caller_is_victim", Value: true}, {Name: "created_at", Value: created}},
		{{Name: "id", Value: "inc-2"}, {Name: "shcad", Value: "CAD2"}, {Name: "caller_is_victim", Value: false}, {Name: "created_at", Value: nil}},
	}

	// Действие
	data, err := Workbook("Incidents", records)

	// Проверки
	require.NoError(t, err)
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Incidents"}, f.GetSheetList())
	rows, err := f.GetRows("Incidents")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"id", "shcad", "caller_is_victim", "created_at"}, rows[0])
	assert.Equal(t, []string{"inc-1", "CAD1", "Yes", "2024-03-01 09:30:00"}, rows[1])
	assert.Equal(t, []string{"inc-2", "CAD2", "No"}, rows[2])
}

func TestWorkbook_Empty(t *testing.T) {
	data, err := Workbook("Incidents", nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Incidents")
	require.NoError(t, err)
	assert.Empty(t, rows)
}
