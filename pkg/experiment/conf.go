package experiment

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"glueball/pkg/conf"
	"glueball/pkg/utils/errutil"
)

var (
	// DumpConfigFlag name includes dash to exclude it from dumping.
	dumpConfigFlag = conf.NewBoolFlag("config-dump", "Dump configuration as environment script.", false)

	// DumpConfigExperimentIDFlag name includes dash to exclude it from dumping.
	dumpConfigExperimentIDFlag = conf.NewStringFlag("config-dump-experiment-id", "Dump configuration recorded by a previous experiment, given its results directory.", "")
)

// Configure handles configuration parsing, generation and restoration based
// on config-* flags.
// Note: exits if configuration generation was requested.
func Configure() {
	err := conf.ParseFlags()
	if err != nil {
		logrus.Errorf("Cannot parse flags: %q", err.Error())
		os.Exit(ExUsage)
	}
	logrus.SetLevel(conf.LogLevel())

	if dumpConfigFlag.Value() {
		previousExperiment := dumpConfigExperimentIDFlag.Value()
		if previousExperiment != "" {
			metadata, err := LoadMetadata(filepath.Join(previousExperiment, metadataFileName))
			errutil.CheckWithContext(err, "Cannot load recorded experiment metadata")
			flags, err := metadata.GetGroup(metadataKindFlags)
			errutil.Check(err)
			fmt.Println(conf.DumpConfigMap(flags))
		} else {
			fmt.Println(conf.DumpConfig())
		}
		os.Exit(0)
	}
}
