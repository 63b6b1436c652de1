package main

import (
	"flag"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/tomereli/nutrition-tracker/config"
	"github.com/tomereli/nutrition-tracker/controllers"
	"github.com/tomereli/nutrition-tracker/routes"
	"github.com/tomereli/nutrition-tracker/services"
)

func main() {
	debug := flag.Bool("debug", false, "run the server with pre-populated mock data")
	dumpReport := flag.Bool("dump-report", false, "generate a mock weekly report and exit without running the server")
	flag.Parse()

	cfg := config.Load()

	db, err := config.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize entry database: %v", err)
	}

	store := services.NewEntryStore(db)
	resolver := services.NewRangeResolver(cfg.Location)
	summary := services.NewSummaryService(store, cfg.Goals)
	report := services.NewReportService(summary, cfg.Goals)

	if *dumpReport {
		week := resolver.CurrentWeek()
		seeder := services.NewMockSeeder(store, time.Now().UnixNano())
		if _, err := seeder.Seed(week); err != nil {
			log.Fatalf("Failed to seed mock data: %v", err)
		}
		html, err := report.WeeklyReport(week)
		if err != nil {
			log.Fatalf("Failed to generate report: %v", err)
		}
		if err := os.WriteFile(cfg.ReportPath, html, 0o644); err != nil {
			log.Fatalf("Failed to write report to %s: %v", cfg.ReportPath, err)
		}
		log.Infof("Report generated: %s", cfg.ReportPath)
		return
	}

	if *debug {
		week := resolver.CurrentWeek()
		seeder := services.NewMockSeeder(store, time.Now().UnixNano())
		n, err := seeder.Seed(week)
		if err != nil {
			log.Fatalf("Failed to seed mock data: %v", err)
		}
		log.Infof("Seeded %d mock entries for %s to %s", n, week.StartKey(), week.EndKey())
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	entries := controllers.NewEntryController(store, resolver)
	reports := controllers.NewReportController(summary, report, resolver, cfg.ReportPath)

	r := routes.SetupRouter(entries, reports)
	log.Infof("Listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server exited: %v", err)
	}
}
