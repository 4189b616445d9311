package experiment

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// masterLogFileName is the log file created inside each experiment directory.
const masterLogFileName = "master.log"

// CreateExperimentDir creates a unique directory for experiment logs and
// results under the current working directory, laid out as
// <cwd>/<appName>/<uid>/, makes it the working directory and opens the
// master log file inside it. The caller owns the returned file.
func CreateExperimentDir(uid, appName string) (experimentDirectory string, logFile *os.File, err error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", nil, errors.Wrap(err, "cannot get working directory")
	}

	experimentDirectory = filepath.Join(cwd, filepath.Base(appName), uid)
	if err = os.MkdirAll(experimentDirectory, 0777); err != nil {
		return "", nil, errors.Wrapf(err, "cannot create experiment directory %q", experimentDirectory)
	}
	if err = os.Chdir(experimentDirectory); err != nil {
		return "", nil, errors.Wrapf(err, "cannot enter experiment directory %q", experimentDirectory)
	}

	masterLogFile := filepath.Join(experimentDirectory, masterLogFileName)
	logFile, err = os.OpenFile(masterLogFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return "", nil, errors.Wrapf(err, "cannot create master log file %q", masterLogFile)
	}

	return experimentDirectory, logFile, nil
}
