package controllers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/tomereli/nutrition-tracker/services"
)

type ReportController struct {
	Summary  *services.SummaryService
	Report   *services.ReportService
	Resolver *services.RangeResolver

	// ReportPath gets a best-effort copy of every rendered report; empty
	// disables the dump.
	ReportPath string
}

func NewReportController(
	summary *services.SummaryService,
	report *services.ReportService,
	resolver *services.RangeResolver,
	reportPath string,
) *ReportController {
	return &ReportController{
		Summary:    summary,
		Report:     report,
		Resolver:   resolver,
		ReportPath: reportPath,
	}
}

func (h *ReportController) ShowDaily(c *gin.Context) {
	rng, err := h.Resolver.Resolve(c.Query("start"), c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	grouped, err := h.Summary.EntriesByDate(rng)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, grouped)
}

func (h *ReportController) ShowSummary(c *gin.Context) {
	rng, err := h.Resolver.Resolve(c.Query("start"), c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summaries, err := h.Summary.Summarize(rng)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := make(map[string]services.DailySummary, len(summaries))
	for _, s := range summaries {
		resp[s.Date] = s
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReportController) WeeklyReport(c *gin.Context) {
	rng, err := h.Resolver.ResolveStrict(c.Query("start"), c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	html, err := h.Report.WeeklyReport(rng)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if h.ReportPath != "" {
		if err := os.WriteFile(h.ReportPath, html, 0o644); err != nil {
			log.WithError(err).Warnf("failed to write report copy to %s", h.ReportPath)
		}
	}

	if c.Query("download") == "true" {
		c.Header("Content-Disposition", `attachment; filename="weekly_report.html"`)
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", html)
}

func (h *ReportController) Home(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(homePage))
}
