package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/jung-kurt/gofpdf"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

// ExportFormat is a file format the dashboard reports can be exported to
type ExportFormat string

const (
	ExportXLSX ExportFormat = "xlsx"
	ExportPDF  ExportFormat = "pdf"
	ExportCSV  ExportFormat = "csv"
)

// ContentType returns the MIME type of the format
func (f ExportFormat) ContentType() string {
	switch f {
	case ExportXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case ExportPDF:
		return "application/pdf"
	default:
		return "text/csv; charset=utf-8"
	}
}

// ParseExportFormat validates a requested format
func ParseExportFormat(s string) (ExportFormat, error) {
	switch f := ExportFormat(s); f {
	case ExportXLSX, ExportPDF, ExportCSV:
		return f, nil
	}
	return "", fmt.Errorf("unsupported export format %q", s)
}

// ReportTable is one report section laid out as text cells
type ReportTable struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// DashboardTables lays out the five report sections as tables, with the
// same rows and display values the dashboard shows
func DashboardTables(d *ReportDashboard) []ReportTable {
	zonas := ReportTable{Title: "Zonas criticas", Headers: []string{"Distrito", "Fallas"}}
	for _, z := range d.ZonasCriticas.Items {
		zonas.Rows = append(zonas.Rows, []string{z.Distrito, strconv.FormatInt(z.TotalFallas, 10)})
	}

	planes := ReportTable{Title: "Ranking de planes", Headers: []string{"Plan", "Contratos"}}
	for _, p := range d.RankingPlanes.Items {
		planes.Rows = append(planes.Rows, []string{p.Plan, strconv.FormatInt(p.TotalContratos, 10)})
	}

	tecnicos := ReportTable{Title: "Top tecnicos", Headers: []string{"Tecnico", "Instalaciones"}}
	for _, t := range d.TopTecnicos.Items {
		tecnicos.Rows = append(tecnicos.Rows, []string{t.Tecnico, strconv.FormatInt(t.TotalInstalaciones, 10)})
	}

	ingresos := ReportTable{Title: "Ingresos mensuales", Headers: []string{"Mes", "Total"}}
	for _, r := range d.IngresosMensuales.Items {
		ingresos.Rows = append(ingresos.Rows, []string{r.Mes, r.TotalLabel})
	}

	morosos := ReportTable{Title: "Clientes morosos", Headers: []string{"Cliente", "Plan", "Deuda estimada"}}
	for _, m := range d.ClientesMorosos.Items {
		morosos.Rows = append(morosos.Rows, []string{m.Nombres + " " + m.Apellidos, m.Plan, m.DeudaLabel})
	}

	return []ReportTable{zonas, planes, tecnicos, ingresos, morosos}
}

// Exporter writes report tables as spreadsheet, PDF or CSV
type Exporter struct {
	logger *logrus.Logger
}

func NewExporter(logger *logrus.Logger) *Exporter {
	return &Exporter{logger: logger}
}

// Write renders tables to w in the given format
func (e *Exporter) Write(w io.Writer, format ExportFormat, tables []ReportTable) error {
	switch format {
	case ExportXLSX:
		return e.writeExcel(w, tables)
	case ExportPDF:
		return e.writePDF(w, tables)
	case ExportCSV:
		return e.writeCSV(w, tables)
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
}

// writeCSV puts the tables one after another, each preceded by its title
// and separated by a blank record
func (e *Exporter) writeCSV(w io.Writer, tables []ReportTable) error {
	writer := csv.NewWriter(w)
	for i, table := range tables {
		if i > 0 {
			if err := writer.Write([]string{""}); err != nil {
				return err
			}
		}
		if err := writer.Write([]string{table.Title}); err != nil {
			return err
		}
		if err := writer.Write(table.Headers); err != nil {
			return err
		}
		if err := writer.WriteAll(table.Rows); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// writeExcel puts every table on its own sheet
func (e *Exporter) writeExcel(w io.Writer, tables []ReportTable) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			e.logger.WithError(err).Warn("failed to close excel file")
		}
	}()

	for i, table := range tables {
		sheet := table.Title
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return err
		}

		for col, header := range table.Headers {
			if err := setCell(f, sheet, col+1, 1, header); err != nil {
				return err
			}
		}
		for row, values := range table.Rows {
			for col, value := range values {
				if err := setCell(f, sheet, col+1, row+2, value); err != nil {
					return err
				}
			}
		}

		if len(table.Rows) > 0 {
			endCell, err := excelize.CoordinatesToCellName(len(table.Headers), len(table.Rows)+1)
			if err != nil {
				return err
			}
			if err := f.AutoFilter(sheet, "A1:"+endCell, []excelize.AutoFilterOptions{}); err != nil {
				return err
			}
		}
	}

	return f.Write(w)
}

func setCell(f *excelize.File, sheet string, col, row int, value string) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheet, cell, value)
}

func (e *Exporter) writePDF(w io.Writer, tables []ReportTable) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, tr("Reportes"))
	pdf.Ln(14)

	for _, table := range tables {
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(0, 8, tr(table.Title))
		pdf.Ln(8)

		width := 180.0 / float64(len(table.Headers))
		pdf.SetFont("Arial", "B", 9)
		for _, header := range table.Headers {
			pdf.CellFormat(width, 7, tr(header), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Arial", "", 9)
		if len(table.Rows) == 0 {
			pdf.CellFormat(180, 7, tr(NoDataMessage), "1", 0, "C", false, 0, "")
			pdf.Ln(-1)
		}
		for _, values := range table.Rows {
			for _, value := range values {
				pdf.CellFormat(width, 7, tr(value), "1", 0, "L", false, 0, "")
			}
			pdf.Ln(-1)
		}
		pdf.Ln(6)
	}

	return pdf.Output(w)
}
