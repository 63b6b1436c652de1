package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/tomereli/nutrition-tracker/models"
)

// Goals holds the process-wide daily targets used for scoring and the report
// header. Calories/Protein/Caffeine are the scoring targets; the workout
// variants and the caffeine cutoff only appear in the rendered report.
type Goals struct {
	Calories int
	Protein  int
	Caffeine int

	WorkoutCalories    int
	WorkoutProtein     int
	CaffeineCutoffHour int
}

type Config struct {
	Port       string
	Location   *time.Location
	ReportPath string
	Goals      Goals
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file found, using environment defaults")
	}

	tz := getenv("TIMEZONE", "Asia/Jerusalem")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Fatalf("Invalid TIMEZONE %q: %v", tz, err)
	}

	return &Config{
		Port:       getenv("PORT", "8080"),
		Location:   loc,
		ReportPath: getenv("REPORT_PATH", "/tmp/weekly_report.html"),
		Goals: Goals{
			Calories:           getenvInt("GOAL_CALORIES", 1600),
			Protein:            getenvInt("GOAL_PROTEIN", 160),
			Caffeine:           getenvInt("GOAL_CAFFEINE", 400),
			WorkoutCalories:    getenvInt("GOAL_WORKOUT_CALORIES", 1800),
			WorkoutProtein:     getenvInt("GOAL_WORKOUT_PROTEIN", 210),
			CaffeineCutoffHour: getenvInt("CAFFEINE_CUTOFF_HOUR", 19),
		},
	}
}

// InitDB opens the in-memory entry database. Entries live only for the
// process lifetime; a single connection keeps every session on the same
// SQLite memory database.
func InitDB() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.NutritionEntry{}); err != nil {
		return nil, err
	}
	return db, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("Invalid %s %q: %v", key, v, err)
	}
	return n
}
