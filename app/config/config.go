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
	DB *sql.DB

	// Port the HTTP server listens on
	Port string

	// CORSOrigin allowed for the browser front end
	CORSOrigin string

	// DiscountPercentBase controls what percentage discounts apply to:
	// "required" (the required total) or "net" (required minus fixed
	// discounts). The source data never pinned this down, so it is an
	// explicit deployment choice rather than a silent default.
	DiscountPercentBase string
}

var AppConfig *Config

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Init loads .env if present, connects the database pool and builds the
// global config
func Init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	host := envOr("DB_HOST", "localhost")
	port, err := strconv.Atoi(envOr("DB_PORT", "5432"))
	if err != nil {
		log.Fatal("Invalid DB_PORT:", err)
	}
	user := envOr("DB_USER", "postgres")
	password := os.Getenv("DB_PASSWORD")
	dbname := envOr("DB_NAME", "school_management")

	psqlInfo := fmt.Sprintf("host=%s port=%d user=%s dbname=%s sslmode=disable", host, port, user, dbname)
	if password != "" {
		psqlInfo += " password=" + password
	}

	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	// Pool limits: each request borrows a connection for its duration and
	// returns it on every exit path.
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	log.Println("Testing database connection...")
	if err = db.Ping(); err != nil {
		log.Printf("Database connection failed: %v", err)
		log.Println("Check DB_HOST/DB_PORT/DB_USER/DB_PASSWORD/DB_NAME and that the database exists")
		log.Fatal("Cannot establish database connection")
	}

	base := envOr("DISCOUNT_PERCENT_BASE", "required")
	if base != "required" && base != "net" {
		log.Fatalf("Invalid DISCOUNT_PERCENT_BASE %q: must be \"required\" or \"net\"", base)
	}

	AppConfig = &Config{
		DB:                  db,
		Port:                envOr("PORT", "5000"),
		CORSOrigin:          envOr("CORS_ORIGIN", "http://localhost:3000"),
		DiscountPercentBase: base,
	}
	log.Println("Database connected successfully")
}

func GetDB() *sql.DB {
	return AppConfig.DB
}
