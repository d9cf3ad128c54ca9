package api

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"backend_tigo/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// DashboardAPI serves the dashboard counters, the report sections and their export
type DashboardAPI struct {
	reports  *services.ReportAggregator
	exporter *services.Exporter
	logger   *logrus.Logger
}

func NewDashboardAPI(reports *services.ReportAggregator, exporter *services.Exporter, logger *logrus.Logger) *DashboardAPI {
	return &DashboardAPI{reports: reports, exporter: exporter, logger: logger}
}

func (da *DashboardAPI) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/dashboard", da.GetDashboard)
	router.GET("/reportes/export", da.ExportReports)
}

// GetDashboard godoc
// GET /api/dashboard
func (da *DashboardAPI) GetDashboard(c *gin.Context) {
	ctx := c.Request.Context()

	respondSuccess(c, http.StatusOK, gin.H{
		"counts":       da.reports.Counts(ctx),
		"reports":      da.reports.Build(ctx),
		"generated_at": time.Now(),
	})
}

// ExportReports godoc
// GET /api/reportes/export?format=xlsx|pdf|csv
func (da *DashboardAPI) ExportReports(c *gin.Context) {
	format, err := services.ParseExportFormat(c.DefaultQuery("format", string(services.ExportXLSX)))
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	dashboard := da.reports.Build(c.Request.Context())

	var buf bytes.Buffer
	if err := da.exporter.Write(&buf, format, services.DashboardTables(dashboard)); err != nil {
		respondFailure(c, da.logger, "ExportReports", err)
		return
	}

	fileName := fmt.Sprintf("reportes_%s.%s", time.Now().Format("20060102_150405"), format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", fileName))
	c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}
