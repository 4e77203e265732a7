package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func configureLogging() {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		return
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.WithError(err).Warn("ignoring LOG_LEVEL")
		return
	}
	logrus.SetLevel(lvl)
}
