// Package config loads the process configuration from environment
// variables. A .env file, when present, is loaded by the entrypoint before
// this package reads anything.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type Config struct {
	// HTTP server
	Port string

	// Persistence backend selection: excel, sqlite, sheets or memory.
	DataBackend string

	// File backends
	DataDir      string
	OrdersFile   string
	ExpensesFile string
	MenuFile     string
	CostsFile    string
	ReportsDir   string

	// SQLite backend
	SQLiteDBPath string

	// Google Sheets backend
	GoogleSpreadsheetID string
	OrdersSheetName     string
	ExpensesSheetName   string
}

func Load() *Config {
	dataDir := getEnv("DATA_DIR", "./data")
	return &Config{
		Port: getEnv("PORT", "8080"),

		DataBackend: getEnv("DATA_BACKEND", "excel"),

		DataDir:      dataDir,
		OrdersFile:   getEnv("ORDERS_FILE", filepath.Join(dataDir, "pedidos.xlsx")),
		ExpensesFile: getEnv("EXPENSES_FILE", filepath.Join(dataDir, "gastos.xlsx")),
		MenuFile:     getEnv("MENU_FILE", filepath.Join(dataDir, "menu.json")),
		CostsFile:    getEnv("COSTS_FILE", filepath.Join(dataDir, "insumos.json")),
		ReportsDir:   getEnv("REPORTS_DIR", filepath.Join(dataDir, "reportes")),

		SQLiteDBPath: getEnv("SQLITE_DB_PATH", filepath.Join(dataDir, "comandas.db")),

		GoogleSpreadsheetID: getEnv("GOOGLE_SPREADSHEET_ID", ""),
		OrdersSheetName:     getEnv("ORDERS_SHEET_NAME", "Pedidos"),
		ExpensesSheetName:   getEnv("EXPENSES_SHEET_NAME", "Gastos"),
	}
}

// Validate checks the configuration and returns one combined error listing
// everything wrong with it.
func (c *Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, fmt.Sprintf("invalid port %q: must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.DataBackend {
	case "excel", "sqlite", "sheets", "memory":
	default:
		errs = append(errs, fmt.Sprintf("invalid data backend %q: must be one of [excel sqlite sheets memory]", c.DataBackend))
	}

	if c.DataBackend == "sqlite" && c.SQLiteDBPath == "" {
		errs = append(errs, "SQLite database path cannot be empty when using sqlite backend")
	}

	if c.DataBackend == "sheets" && c.GoogleSpreadsheetID == "" {
		errs = append(errs, "GOOGLE_SPREADSHEET_ID is required when using sheets backend")
	}

	if c.DataBackend == "excel" {
		if c.OrdersFile == "" || c.ExpensesFile == "" {
			errs = append(errs, "orders and expenses file paths cannot be empty when using excel backend")
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
