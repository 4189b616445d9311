package experiment

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCreateExperimentDir(t *testing.T) {
	tempDir := t.TempDir()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(cwd)

	Convey("While creating an experiment directory", t, func() {
		// CreateExperimentDir changes the working directory, so reset it
		// before every case.
		So(os.Chdir(tempDir), ShouldBeNil)
		base, err := os.Getwd()
		So(err, ShouldBeNil)

		Convey("The directory is rooted under the application name and uid", func() {
			experimentDirectory, logFile, err := CreateExperimentDir("some-uid", "glueball-spectroscopy")
			So(err, ShouldBeNil)
			defer logFile.Close()

			So(experimentDirectory, ShouldEqual, filepath.Join(base, "glueball-spectroscopy", "some-uid"))

			workDir, err := os.Getwd()
			So(err, ShouldBeNil)
			So(workDir, ShouldEqual, experimentDirectory)
		})

		Convey("The master log file is created and writable", func() {
			experimentDirectory, logFile, err := CreateExperimentDir("log-uid", "glueball-spectroscopy")
			So(err, ShouldBeNil)
			defer logFile.Close()

			_, err = logFile.WriteString("experiment started\n")
			So(err, ShouldBeNil)

			_, err = os.Stat(filepath.Join(experimentDirectory, masterLogFileName))
			So(err, ShouldBeNil)
		})

		Convey("The application name is reduced to its base name", func() {
			experimentDirectory, logFile, err := CreateExperimentDir("path-uid", "/usr/local/bin/glueball-spectroscopy")
			So(err, ShouldBeNil)
			defer logFile.Close()

			So(experimentDirectory, ShouldEqual, filepath.Join(base, "glueball-spectroscopy", "path-uid"))
		})
	})
}
