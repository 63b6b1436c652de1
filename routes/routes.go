package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/tomereli/nutrition-tracker/controllers"
)

func SetupRouter(entries *controllers.EntryController, reports *controllers.ReportController) *gin.Engine {
	r := gin.Default()

	r.GET("/", reports.Home)

	r.POST("/addEntry", entries.AddEntry)
	r.POST("/deleteEntry", entries.DeleteEntry)
	r.POST("/flushEntries", entries.FlushEntries)

	r.GET("/showDaily", reports.ShowDaily)
	r.GET("/showSummary", reports.ShowSummary)
	r.GET("/getWeeklyReport", reports.WeeklyReport)

	return r
}
