// Package config exposes build metadata and environment-driven paths for quote-hunt.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
)

//go:embed version
var version string

//go:embed name
var name string

type LogLevel string

const (
	Debug  LogLevel = "debug"
	Info   LogLevel = "info"
	Notice LogLevel = "notice"
	Warn   LogLevel = "warn"
	Error  LogLevel = "error"
)

func GetVersion() string {
	return strings.TrimSpace(version)
}

func GetName() string {
	return strings.TrimSpace(name)
}

func GetLogLevel() LogLevel {
	if IsDebug() {
		return Debug
	}
	logLevel := os.Getenv("QH_LOG_LEVEL")
	if logLevel == "" {
		return Info
	}
	return LogLevel(logLevel)
}

func IsDebug() bool {
	return os.Getenv("QH_DEBUG") == "true"
}

func GetDBFolderPath() string {
	dbFolderPath := os.Getenv("QH_DB_FOLDER")
	if dbFolderPath == "" {
		dbFolderPath = "/etc/quote-hunt"
	}
	return dbFolderPath
}

func GetDBPath() string {
	return fmt.Sprintf("%s/%s.db", GetDBFolderPath(), GetName())
}

func GetLogFolder() string {
	logFolderPath := os.Getenv("QH_LOG_FOLDER")
	if logFolderPath == "" {
		logFolderPath = "/var/log"
	}
	return logFolderPath
}

// GetCatalogPath returns the path of the location catalog JSON file. An empty
// value means the embedded default catalog is used.
func GetCatalogPath() string {
	return os.Getenv("QH_CATALOG_PATH")
}

// GetAdminPassword returns the admin password used to seed the stored
// credential on first start.
func GetAdminPassword() string {
	return os.Getenv("QH_ADMIN_PASSWORD")
}
