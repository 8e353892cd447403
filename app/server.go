package app

import (
	"flag"
	"log"
	"os"

	"github.com/ashidesu/Foodie-business/app/controllers"
	"github.com/ashidesu/Foodie-business/app/mailer"
	"github.com/ashidesu/Foodie-business/app/storage"
	"github.com/joho/godotenv"
)

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}

func Run() {
	var server = controllers.Server{}
	var appConfig = controllers.AppConfig{}
	var dbConfig = controllers.DBConfig{}

	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment defaults")
	}

	appConfig.AppName = getEnv("APP_NAME", "Foodie Business")
	appConfig.AppEnv = getEnv("APP_ENV", "development")
	appConfig.AppPort = getEnv("APP_PORT", "9000")
	appConfig.AppURL = getEnv("APP_URL", "http://localhost:9000")

	dbConfig.DBHost = getEnv("DB_HOST", "localhost")
	dbConfig.DBUser = getEnv("DB_USER", "root")
	dbConfig.DBPassword = getEnv("DB_PASSWORD", "123")
	dbConfig.DBName = getEnv("DB_NAME", "foodiedb")
	dbConfig.DBPort = getEnv("DB_PORT", "3306")
	dbConfig.DBDriver = getEnv("DB_DRIVER", "mysql")

	storageConfig := storage.Config{
		Driver:   getEnv("STORAGE_DRIVER", "local"),
		BaseDir:  getEnv("STORAGE_BASE_DIR", "public/uploads"),
		BaseURL:  appConfig.AppURL,
		S3Bucket: getEnv("STORAGE_S3_BUCKET", ""),
		S3Region: getEnv("STORAGE_S3_REGION", "us-east-1"),
	}

	mailConfig := mailer.Config{
		Host:     getEnv("SMTP_HOST", ""),
		Port:     getEnv("SMTP_PORT", "587"),
		Username: getEnv("SMTP_USERNAME", ""),
		Password: getEnv("SMTP_PASSWORD", ""),
		From:     getEnv("SMTP_FROM", "no-reply@foodie.local"),
	}

	flag.Parse()
	arg := flag.Arg(0)

	if arg != "" {
		server.InitCommands(appConfig, dbConfig)
	} else {
		server.Initialize(appConfig, dbConfig, storageConfig, mailConfig)
		server.Run(":" + appConfig.AppPort)
	}
}
