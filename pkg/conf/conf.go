// conf is a helper for glueball configuration for both command line
// interface and environment variables.
// It gives the ability to register arguments which will be fetched from
// CLI input OR environment variable.
// By default it registers following options:
// <GLUEBALL_LOG> --log <Log level: debug, info, warn, error, fatal, panic> Default: info
//
// When `ParseEnv` is executed, only the environment arguments are parsed and
// ready to be used in flag values. `ParseEnv` can be run multiple times.
//
// When `ParseFlags` is executed, the arguments from both CLI and Env are
// parsed. In case of --help option it prints help. It is recommended to run
// it only once, so the help shows the whole overview of the glueball
// configuration.

package conf

import (
	"bytes"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

// EnvironmentPrefix is prepended to the uppercased flag name to form its
// environment variable name.
const EnvironmentPrefix = "GLUEBALL"

var (
	app = kingpin.New("glueball", "No help available")
	// Default flags and values.
	logLevelFlag = NewStringFlag(
		"log",
		"Log level: debug, info, warn, error, fatal, panic",
		"info",
	)
	isEnvParsed = false
)

// SetHelp sets the help message for the CLI.
// We need to expose this function so other packages can set the app help.
func SetHelp(help string) {
	app.Help = help
}

// SetAppName sets application name for CLI output.
// We need to expose this function so other packages can set the app name.
func SetAppName(name string) {
	app.Name = name
}

// LogLevel returns configured logLevel from input option or env variable.
// If it cannot parse the log level, it returns the default value.
func LogLevel() logrus.Level {
	level, err := logrus.ParseLevel(logLevelFlag.Value())
	if err == nil {
		return level
	}

	level, err = logrus.ParseLevel(logLevelFlag.defaultValue)
	if err == nil {
		return level
	}

	// Programmer error.
	panic(errors.Wrap(err, "parsing log level failed"))
}

// AppName returns specified app name.
func AppName() string {
	return app.Name
}

// ParseFlags parse both the command line flags of the process and
// environment variables.
func ParseFlags() error {
	_, err := app.Parse(os.Args[1:])
	if err == nil {
		isEnvParsed = true
		return nil
	}

	return errors.Wrapf(err, "could not parse command line flags")
}

// ParseEnv parse the environment for arguments.
func ParseEnv() error {
	_, err := app.Parse([]string{})
	if err == nil {
		isEnvParsed = true
		return nil
	}

	return errors.Wrapf(err, "could not parse environment flags")
}

// getFlagsDefinition returns current value, default, name and description
// for every flag. Note: order is important because it logically groups flags.
func getFlagsDefinition() (flags []struct{ Name, Value, Default, Help string }) {
	for _, flag := range app.Model().Flags {

		// Skip kingpin builtin flags that aren't compatible with environment
		// based configuration.
		if strings.Contains(flag.Name, "-") {
			continue
		}

		// Use reflection to extract the value hidden in the non exported
		// kingpin implementation: flag.Value is a pointer to a small struct
		// (e.g. kingpin.boolValue) holding a pointer field "v" to the native
		// value.
		var value interface{}

		elem := reflect.ValueOf(flag.Value).Elem()
		if elem.Kind() == reflect.Struct {
			field := elem.FieldByName("v")
			valueInField := field.Elem()

			// The Kind of a reflection object describes the underlying type,
			// not the static type.
			switch valueInField.Kind() {

			case reflect.String:
				value = valueInField.String()

			case reflect.Bool:
				value = valueInField.Bool()

			case reflect.Int64, reflect.Int:
				value = valueInField.Int()

			case reflect.Float64:
				value = valueInField.Float()

			default:
				logrus.Debugf("unhandled flag %s kind=%s", flag.Name, valueInField.Kind())
			}
		}

		flags = append(flags, struct{ Name, Value, Default, Help string }{
			Name:    flag.Name,
			Help:    flag.Help,
			Default: strings.Join(flag.Default, ","),
			Value:   fmt.Sprintf("%v", value),
		})
	}

	return flags
}

// DumpConfig dumps environment based configuration with current values of flags.
func DumpConfig() string {
	return DumpConfigMap(nil)
}

// DumpConfigMap dumps environment based configuration with current values
// overwritten by the given flagMap. Includes "allexport" directives for bash.
func DumpConfigMap(flagMap map[string]string) string {
	buffer := &bytes.Buffer{}

	buffer.WriteString("# Export are values.\n")
	buffer.WriteString("set -o allexport\n")

	for _, fd := range getFlagsDefinition() {

		fmt.Fprintf(buffer, "\n# %s\n", fd.Help)
		if fd.Default != "" {
			fmt.Fprintf(buffer, "# Default: %s\n", fd.Default)
		}

		// Override current values with provided from flagMap.
		value := fd.Value
		if mapValue, ok := flagMap[fd.Name]; ok {
			value = mapValue
		}

		fmt.Fprintf(buffer, "%s_%s=%v\n", EnvironmentPrefix, strings.ToUpper(fd.Name), value)
	}

	buffer.WriteString("set +o allexport")
	return buffer.String()
}

// GetFlags returns flags as map with current values.
func GetFlags() map[string]string {
	flagsMap := map[string]string{}
	for _, flag := range getFlagsDefinition() {
		flagsMap[flag.Name] = flag.Value
	}
	return flagsMap
}
