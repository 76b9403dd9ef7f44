package main

import (
	"DineInWithSyrve/internal/config"
	"DineInWithSyrve/internal/prompt"
	"DineInWithSyrve/internal/syrveapi"
	"DineInWithSyrve/internal/version"
	"DineInWithSyrve/internal/workflow"
	"DineInWithSyrve/pkg/logging"
	"os"
	"time"
)

func main() {
	logger := logging.GetLogger()
	logger.Info("Start Main")
	v := version.GetVersion()
	logger.Infof("Version %s", v.String())
	defer logger.Info("End Main")

	cfg := config.GetConfig()

	w := workflow.New(
		syrveapi.GetAPI(),
		prompt.NewConsole(os.Stdin, os.Stdout),
		cfg.APILogin,
		cfg.SYRVE.TransportToFrontTimeout,
		os.Stdout,
	)

	if err := w.Run(); err != nil {
		logger.Errorf("Не удалось создать заказ; error: %v", err)
		os.Exit(1)
	}
}

func init() {
	logger := logging.GetLogger()

	logger.Println("Start main init...")
	defer logger.Println("End main init.")

	cfg := config.GetConfig()
	logging.SetDebug(cfg.LOG.Debug == 1)

	_ = syrveapi.NewAPI(cfg.SYRVE.URL,
		time.Duration(cfg.SYRVE.TimeoutRead)*time.Second,
		time.Duration(cfg.SYRVE.TimeoutCreate)*time.Second)
}
