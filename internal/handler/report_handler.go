package handler

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"

	"github.com/peoplecore/employee-records/internal/domain"
	"github.com/peoplecore/employee-records/internal/logger"
	"github.com/peoplecore/employee-records/pkg/reportxls"
)

// defaultReportTemplate is used when no layout file is configured or the
// configured file cannot be read.
const defaultReportTemplate = `
sheets:
  - name: Employee Report
    sections:
      - id: profile
        title: Profile
        direction: vertical
      - id: compensation
        title: Compensation
        show_header: true
      - id: bonuses
        title: Bonuses
        show_header: true
      - id: training
        title: Training
        show_header: true
      - id: timeOff
        title: Time Off
        show_header: true
`

// ReportHandler serves per-employee xlsx exports.
type ReportHandler struct {
	store        domain.Storage
	templatePath string
}

func NewReportHandler(store domain.Storage, templatePath string) *ReportHandler {
	return &ReportHandler{store: store, templatePath: templatePath}
}

// ExportHandler renders one employee's record into a workbook and streams it
// as an attachment.
func (h *ReportHandler) ExportHandler(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	emp, err := h.store.GetEmployee(ctx, id)
	if err != nil {
		return respondError(c, err)
	}

	exporter := reportxls.NewExporter()
	if err := h.loadTemplate(ctx, exporter); err != nil {
		return respondError(c, err)
	}

	exporter.BindData("profile", emp)
	if err := h.bindCollections(c, exporter, id); err != nil {
		return respondError(c, err)
	}

	file, err := exporter.Render()
	if err != nil {
		return respondError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="employee-%s.xlsx"`, id))
	c.Response().Header().Set(echo.HeaderContentType,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().WriteHeader(http.StatusOK)
	return file.Write(c.Response())
}

func (h *ReportHandler) loadTemplate(ctx context.Context, exporter *reportxls.Exporter) error {
	if h.templatePath != "" {
		if _, err := os.Stat(h.templatePath); err == nil {
			return exporter.LoadTemplateFile(h.templatePath)
		}
		logger.WarnLog(ctx, "report template %s not found, using built-in layout", h.templatePath)
	}
	return exporter.LoadTemplate([]byte(defaultReportTemplate))
}

func (h *ReportHandler) bindCollections(c echo.Context, exporter *reportxls.Exporter, employeeID string) error {
	ctx := c.Request().Context()

	compensation, err := h.store.CompensationByEmployee(ctx, employeeID)
	if err != nil {
		return err
	}
	exporter.BindData("compensation", compensation)

	bonuses, err := h.store.BonusesByEmployee(ctx, employeeID)
	if err != nil {
		return err
	}
	exporter.BindData("bonuses", bonuses)

	training, err := h.store.TrainingByEmployee(ctx, employeeID)
	if err != nil {
		return err
	}
	exporter.BindData("training", training)

	timeOff, err := h.store.TimeOffByEmployee(ctx, employeeID)
	if err != nil {
		return err
	}
	exporter.BindData("timeOff", timeOff)

	return nil
}
