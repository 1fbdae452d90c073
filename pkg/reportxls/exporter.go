package reportxls

import (
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v2"
)

const (
	DirectionHorizontal = "horizontal"
	DirectionVertical   = "vertical"
)

// ReportTemplate is the YAML layout for a workbook.
type ReportTemplate struct {
	Sheets []SheetTemplate `yaml:"sheets"`
}

type SheetTemplate struct {
	Name     string          `yaml:"name"`
	Sections []SectionConfig `yaml:"sections"`
}

// SectionConfig defines one block of data on a sheet. Data is bound to the ID
// at render time.
type SectionConfig struct {
	ID         string `yaml:"id"`
	Title      string `yaml:"title"`
	Direction  string `yaml:"direction"`
	ShowHeader bool   `yaml:"show_header"`
}

// Exporter renders bound data through a YAML template into an xlsx workbook.
type Exporter struct {
	template *ReportTemplate
	data     map[string]interface{}
}

func NewExporter() *Exporter {
	return &Exporter{data: make(map[string]interface{})}
}

// LoadTemplateFile reads a YAML layout from disk.
func (e *Exporter) LoadTemplateFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read template: %w", err)
	}
	return e.LoadTemplate(raw)
}

// LoadTemplate parses a YAML layout.
func (e *Exporter) LoadTemplate(raw []byte) error {
	var tpl ReportTemplate
	if err := yaml.Unmarshal(raw, &tpl); err != nil {
		return fmt.Errorf("parse template: %w", err)
	}
	if len(tpl.Sheets) == 0 {
		return fmt.Errorf("template has no sheets")
	}
	e.template = &tpl
	return nil
}

// BindData attaches data (a struct or slice of structs) to a section ID.
func (e *Exporter) BindData(sectionID string, data interface{}) {
	e.data[sectionID] = data
}

// Render builds the workbook. Sections with no bound data are skipped.
func (e *Exporter) Render() (*excelize.File, error) {
	if e.template == nil {
		return nil, fmt.Errorf("no template loaded")
	}

	f := excelize.NewFile()
	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 12}})
	if err != nil {
		return nil, err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	for i, sheet := range e.template.Sheets {
		if i == 0 {
			f.SetSheetName("Sheet1", sheet.Name)
		} else {
			if _, err := f.NewSheet(sheet.Name); err != nil {
				return nil, err
			}
		}

		row := 1
		for _, section := range sheet.Sections {
			data, ok := e.data[section.ID]
			if !ok {
				continue
			}
			next, err := e.renderSection(f, sheet.Name, row, section, data, titleStyle, headerStyle)
			if err != nil {
				return nil, fmt.Errorf("section %s: %w", section.ID, err)
			}
			// Leave one blank row between sections.
			row = next + 2
		}
	}
	return f, nil
}

// renderSection writes one section starting at startRow and returns the last
// row it wrote.
func (e *Exporter) renderSection(f *excelize.File, sheet string, startRow int, section SectionConfig, data interface{}, titleStyle, headerStyle int) (int, error) {
	t, err := flatten(data)
	if err != nil {
		return 0, err
	}

	row := startRow
	if section.Title != "" {
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetCellValue(sheet, cell, section.Title); err != nil {
			return 0, err
		}
		if err := f.SetCellStyle(sheet, cell, cell, titleStyle); err != nil {
			return 0, err
		}
		row++
	}

	if section.Direction == DirectionVertical {
		return e.renderVertical(f, sheet, row, t, headerStyle)
	}
	return e.renderHorizontal(f, sheet, row, section, t, headerStyle)
}

// renderHorizontal writes a header row followed by one row per record.
func (e *Exporter) renderHorizontal(f *excelize.File, sheet string, row int, section SectionConfig, t *table, headerStyle int) (int, error) {
	if section.ShowHeader && len(t.headers) > 0 {
		for col, h := range t.headers {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(sheet, cell, h); err != nil {
				return 0, err
			}
			if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
				return 0, err
			}
		}
		row++
	}

	for _, rec := range t.rows {
		for col, h := range t.headers {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(sheet, cell, rec[h]); err != nil {
				return 0, err
			}
		}
		row++
	}
	return row - 1, nil
}

// renderVertical writes one field per row: a label column then one value
// column per record. Suits single-record profile sections.
func (e *Exporter) renderVertical(f *excelize.File, sheet string, row int, t *table, headerStyle int) (int, error) {
	for _, h := range t.headers {
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return 0, err
		}
		if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
			return 0, err
		}
		for i, rec := range t.rows {
			valueCell, _ := excelize.CoordinatesToCellName(i+2, row)
			if err := f.SetCellValue(sheet, valueCell, rec[h]); err != nil {
				return 0, err
			}
		}
		row++
	}
	return row - 1, nil
}
