// Package logger configures logrus for an experiment binary: logs are mirrored
// to stderr and to a master log file inside the experiment directory.
package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"glueball/pkg/experiment"
	"glueball/pkg/utils/errutil"
)

// Initialize creates the experiment logs directory and configures logrus for
// an experiment. The experiment id is printed to stdout so scripts can pick
// it up.
func Initialize(appName, uid string) {
	// Create experiment directory
	experimentDirectory, logFile, err := experiment.CreateExperimentDir(uid, appName)
	errutil.CheckWithContext(err, "Cannot create experiment logs directory")

	// Setup logging set to both output and logFile.
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: "2006-01-02 15:04:05.100"})
	logrus.Infof("Working directory %q", experimentDirectory)
	logrus.SetOutput(io.MultiWriter(logFile, os.Stderr))

	// Logging and outputting experiment ID.
	logrus.Info("Starting experiment ", appName, " with uid ", uid)
	fmt.Println(uid)
}
