package main

import "os"

type Config struct {
	HTTPAddr       string
	MySQLDSN       string
	MigrationsDir  string
	PublicBaseURL  string
	FrontendURL    string
	SSLCzEndpoint  string
	SSLCzStoreID   string
	SSLCzStorePass string
}

func loadConfig() Config {
	return Config{
		HTTPAddr:       getenv("HTTP_ADDR", ":8157"),
		MySQLDSN:       getenv("MYSQL_DSN", "bookbarn:bookbarn@tcp(mysql:3306)/bookbarn?parseTime=true"),
		MigrationsDir:  getenv("MIGRATIONS_DIR", "db/migrations"),
		PublicBaseURL:  getenv("PUBLIC_BASE_URL", "http://localhost:8157"),
		FrontendURL:    getenv("FRONTEND_URL", "http://localhost:5173"),
		SSLCzEndpoint:  getenv("SSLCZ_ENDPOINT", ""),
		SSLCzStoreID:   getenv("SSLCZ_STORE_ID", ""),
		SSLCzStorePass: getenv("SSLCZ_STORE_PASS", ""),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
