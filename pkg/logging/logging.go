package logging

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

const LOG_FILE = "logs/create_order.log"

var logger *logrus.Logger
var once sync.Once

// GetLogger возвращает логгер, пишущий одновременно в logs/ и на консоль
func GetLogger() *logrus.Logger {
	once.Do(func() {
		logger = logrus.New()
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})

		err := os.MkdirAll("logs", 0770)
		if err != nil {
			fmt.Println(err)
		}

		file, err := os.OpenFile(LOG_FILE, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0640)
		if err != nil {
			fmt.Println(err)
			logger.SetOutput(os.Stdout)
			return
		}

		logger.SetOutput(io.MultiWriter(file, os.Stdout))
	})

	return logger
}

// SetDebug включает уровень Debug, вызывается из main после чтения конфига
func SetDebug(debug bool) {
	l := GetLogger()
	if debug {
		l.SetLevel(logrus.DebugLevel)
	} else {
		l.SetLevel(logrus.InfoLevel)
	}
}
