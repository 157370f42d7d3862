package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

type Config struct {
	DB            *sql.DB
	Port          string
	SessionSecret string
	OSS           OSSConfig
}

type OSSConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	// Optional override for public object URLs, e.g. a CDN domain.
	PublicBaseURL string
}

var AppConfig *Config

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Init loads .env (if present), connects to Postgres and fills AppConfig.
func Init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		host := getenv("PGHOST", "localhost")
		port, err := strconv.Atoi(getenv("PGPORT", "5432"))
		if err != nil {
			log.Fatalf("Invalid PGPORT: %v", err)
		}
		user := getenv("PGUSER", "postgres")
		password := os.Getenv("PGPASSWORD")
		dbname := getenv("PGDATABASE", "gloriousfuture")
		sslmode := getenv("PGSSLMODE", "disable")

		dsn = fmt.Sprintf("host=%s port=%d user=%s dbname=%s sslmode=%s", host, port, user, dbname, sslmode)
		if password != "" {
			dsn += " password=" + password
		}
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	if err = db.Ping(); err != nil {
		log.Fatal("Cannot establish database connection:", err)
	}

	AppConfig = &Config{
		DB:            db,
		Port:          getenv("PORT", "3000"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		OSS: OSSConfig{
			Endpoint:      os.Getenv("OSS_ENDPOINT"),
			AccessKey:     os.Getenv("OSS_ACCESS_KEY"),
			SecretKey:     os.Getenv("OSS_SECRET_KEY"),
			Bucket:        os.Getenv("OSS_BUCKET"),
			PublicBaseURL: os.Getenv("OSS_PUBLIC_BASE_URL"),
		},
	}
	log.Println("Database connected successfully")
}

func GetDB() *sql.DB {
	return AppConfig.DB
}
