package config

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"gopkg.in/gcfg.v1"
)

const CONFIG_FILE = "./config/config.ini"

type (
	Config struct {
		SYRVE struct {
			URL                     string
			TimeoutRead             int
			TimeoutCreate           int
			TransportToFrontTimeout int
		}
		LOG struct {
			Debug int
		}
		APILogin string
	}
)

var cfg Config
var once sync.Once

func GetConfig() *Config {
	once.Do(func() {
		err := os.MkdirAll("logs", 0770)
		if err != nil {
			fmt.Println(err)
		}

		file, err := os.OpenFile("logs/config.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0640)
		if err != nil {
			fmt.Println(err)
		}

		multiWriter := io.MultiWriter(file, os.Stdout)

		logger := log.New(multiWriter, "MAIN ", log.Ldate|log.Ltime|log.Lshortfile)

		logger.Print("Config:>Read application configurations")

		cfg.SYRVE.URL = "https://api-eu.syrve.live/api/1"
		cfg.SYRVE.TimeoutRead = 10
		cfg.SYRVE.TimeoutCreate = 15
		cfg.SYRVE.TransportToFrontTimeout = 15

		if _, err := os.Stat(CONFIG_FILE); err == nil {
			err = gcfg.ReadFileInto(&cfg, CONFIG_FILE)
			if err != nil {
				logger.Fatalf("Config:>Failed to parse gcfg data: %s", err)
			} else {
				logger.Print("Config:>Config is read")
			}
		} else {
			logger.Printf("Config:>%s не найден, используются значения по умолчанию", CONFIG_FILE)
		}

		err = godotenv.Load()
		if err != nil {
			logger.Print("Config:>.env не найден, читаем окружение процесса")
		}

		cfg.APILogin = os.Getenv("API_LOGIN")
		if cfg.APILogin == "" {
			logger.Fatal("Config:>API_LOGIN не задан; добавьте его в .env или окружение")
		}
	})

	return &cfg
}
