package admins

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// brokenDB returns a gorm handle whose connection fails on first use, for
// exercising persistence-fault paths without a live database.
func brokenDB(t *testing.T) *gorm.DB {
	t.Helper()
	sqlDB, err := sql.Open("mysql", "none:none@tcp(127.0.0.1:1)/none?timeout=100ms")
	if err != nil {
		t.Fatalf("sql.Open: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(gormmysql.New(gormmysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Discard, DisableAutomaticPing: true})
	if err != nil {
		t.Fatalf("gorm.Open: %v", err)
	}
	return db
}

func TestGetStatsReportsQueryFailure(t *testing.T) {
	controller := NewDashboardController(brokenDB(t))

	r := httptest.NewRequest(http.MethodGet, "/v1/admin/dashboard", nil)
	w := httptest.NewRecorder()
	controller.GetStats(w, r)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("got status %d, want 500 when stats queries fail", w.Code)
	}
}
