package reportxls

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type identity struct {
	ID string `json:"id"`
}

type course struct {
	identity
	Name     string    `json:"name"`
	Status   string    `json:"status"`
	Started  time.Time `json:"started"`
	internal string
}

type person struct {
	Name    string  `json:"name"`
	Address address `json:"address"`
	Tags    map[string]string
}

type address struct {
	City string `json:"city"`
}

func TestFlattenStruct(t *testing.T) {
	tbl, err := flatten(person{
		Name:    "Avery",
		Address: address{City: "Portland"},
	})
	require.NoError(t, err)
	require.Len(t, tbl.rows, 1)

	assert.Equal(t, []string{"name", "Address.city"}, tbl.headers)
	assert.Equal(t, "Avery", tbl.rows[0]["name"])
	assert.Equal(t, "Portland", tbl.rows[0]["Address.city"])
}

func TestFlattenSliceWithEmbeddedFields(t *testing.T) {
	started := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	tbl, err := flatten([]course{
		{identity: identity{ID: "c1"}, Name: "Go", Status: "Done", Started: started},
		{identity: identity{ID: "c2"}, Name: "SQL", Status: "Open"},
	})
	require.NoError(t, err)

	// Embedded fields surface without a prefix; unexported fields are skipped.
	assert.Equal(t, []string{"id", "name", "status", "started"}, tbl.headers)
	require.Len(t, tbl.rows, 2)
	assert.Equal(t, "c1", tbl.rows[0]["id"])
	assert.Equal(t, started, tbl.rows[0]["started"])
}

func TestFlattenMapColumnsSorted(t *testing.T) {
	tbl, err := flatten(person{
		Name: "Avery",
		Tags: map[string]string{"c": "3", "a": "1", "b": "2"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "Address.city", "Tags.a", "Tags.b", "Tags.c"}, tbl.headers)
	assert.Equal(t, "2", tbl.rows[0]["Tags.b"])
}

func TestFlattenRejectsScalars(t *testing.T) {
	_, err := flatten(42)
	assert.Error(t, err)
}

func TestRenderWorkbook(t *testing.T) {
	exporter := NewExporter()
	require.NoError(t, exporter.LoadTemplate([]byte(`
sheets:
  - name: Report
    sections:
      - id: owner
        title: Owner
        direction: vertical
      - id: courses
        title: Courses
        show_header: true
      - id: unbound
        title: Never Rendered
`)))

	exporter.BindData("owner", person{Name: "Avery", Address: address{City: "Portland"}})
	exporter.BindData("courses", []course{
		{identity: identity{ID: "c1"}, Name: "Go", Status: "Done",
			Started: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)},
	})

	f, err := exporter.Render()
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Report"}, f.GetSheetList())

	// Vertical section: label column then value column.
	title, err := f.GetCellValue("Report", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Owner", title)
	label, _ := f.GetCellValue("Report", "A2")
	value, _ := f.GetCellValue("Report", "B2")
	assert.Equal(t, "name", label)
	assert.Equal(t, "Avery", value)

	// Horizontal section follows with a gap row: title, header, data.
	sectionTitle, _ := f.GetCellValue("Report", "A5")
	assert.Equal(t, "Courses", sectionTitle)
	header, _ := f.GetCellValue("Report", "A6")
	assert.Equal(t, "id", header)
	cell, _ := f.GetCellValue("Report", "B7")
	assert.Equal(t, "Go", cell)

	// Sections without bound data leave no trace.
	after, _ := f.GetCellValue("Report", "A8")
	assert.Empty(t, after)
}

func TestLoadTemplateErrors(t *testing.T) {
	exporter := NewExporter()
	assert.Error(t, exporter.LoadTemplate([]byte("sheets: [")))
	assert.Error(t, exporter.LoadTemplate([]byte("sheets: []")))

	_, err := NewExporter().Render()
	assert.Error(t, err)
}
