package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func setupLogging(verbose bool) {
	log.Out = os.Stderr
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}
}
