package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// global accessible logger
var (
	log *logrus.Logger
	Log *logrus.Entry
)

// This init function is only for testing cases, where the entry point is not
// main function. Unit test will fail with nil pointer dereference if we don't
// init here.
func init() {
	Init()
}

// Init 初始化全局日志实例。GIN_MODE=release 时输出 JSON 便于采集。
func Init() {
	log = logrus.New()
	log.SetOutput(os.Stdout)

	if os.Getenv("GIN_MODE") == "release" {
		log.SetFormatter(&logrus.JSONFormatter{})
		log.SetLevel(logrus.InfoLevel)
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		log.SetLevel(logrus.DebugLevel)
	}

	Log = log.WithField("service", "inkspire")
}
