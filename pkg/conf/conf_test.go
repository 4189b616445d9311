package conf

import (
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	. "github.com/smartystreets/goconvey/convey"
)

const testAppName = "testAppName"

var customFlag = NewStringFlag("custom_arg", "help", "default")

func clearEnv() {
	// Clear all environment variables in context of that test.
	logLevelFlag.clear()
	customFlag.clear()
}

func TestConf(t *testing.T) {
	Convey("While using Conf pkg", t, func() {
		clearEnv()
		defer clearEnv()

		SetAppName(testAppName)
		SetHelp("help message")

		Convey("Name and help should match to specified one", func() {
			So(AppName(), ShouldEqual, testAppName)
			So(app.Help, ShouldEqual, "help message")
		})

		Convey("Log level can be fetched", func() {
			So(LogLevel(), ShouldEqual, logrus.InfoLevel)
		})

		Convey("Log level can be fetched from env", func() {
			// Default one.
			So(LogLevel(), ShouldEqual, logrus.InfoLevel)

			os.Setenv(logLevelFlag.envName(), "debug")

			err := ParseEnv()
			So(err, ShouldBeNil)

			// Should be from environment.
			So(LogLevel(), ShouldEqual, logrus.DebugLevel)
		})

		Convey("When some custom argument is defined", func() {
			Convey("Without parse it should be default", func() {
				So(customFlag.Value(), ShouldEqual, "default")
			})

			Convey("When we not defined any environment variable we should have default value after parse", func() {
				err := ParseEnv()
				So(err, ShouldBeNil)
				So(customFlag.Value(), ShouldEqual, customFlag.defaultValue)
			})

			Convey("When we define custom environment variable we should have custom value after parse", func() {
				customValue := "customContent"
				os.Setenv(customFlag.envName(), customValue)

				err := ParseEnv()
				So(err, ShouldBeNil)
				So(customFlag.Value(), ShouldEqual, customValue)
			})
		})

		Convey("Flags can be dumped and fetched as a map", func() {
			err := ParseEnv()
			So(err, ShouldBeNil)

			flags := GetFlags()
			So(flags, ShouldContainKey, "custom_arg")
			So(flags, ShouldContainKey, "log")

			dump := DumpConfigMap(map[string]string{"custom_arg": "overridden"})
			So(dump, ShouldContainSubstring, "set -o allexport")
			So(dump, ShouldContainSubstring, "GLUEBALL_CUSTOM_ARG=overridden")
			So(dump, ShouldContainSubstring, "set +o allexport")
		})
	})
}
