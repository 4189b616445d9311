package main

import (
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"glueball/pkg/audit"
	"glueball/pkg/conf"
	"glueball/pkg/entanglement"
	"glueball/pkg/experiment"
	"glueball/pkg/experiment/logger"
	"glueball/pkg/lattice"
	"glueball/pkg/twolevel"
	"glueball/pkg/utils/err_collection"
	"glueball/pkg/utils/errutil"
	"glueball/pkg/utils/uuid"
	"glueball/pkg/visualization"
)

var (
	seedFlag       = conf.NewIntFlag("seed", "Seed for the experiment random source. Zero derives the seed from the current time.", 0)
	resultsDirFlag = conf.NewStringFlag("results_dir", "Parent directory for experiment results. Empty means the current directory.", "")
	appName        = os.Args[0]
)

func main() {
	// Preparing application - setting name, help, parsing flags etc.
	experimentStart := time.Now()
	conf.SetAppName("glueball-spectroscopy")
	conf.SetHelp(`Glueball spectroscopy experiment calibrates the two-level variance reduction on a Gaussian toy lattice.
It runs the nested boundary/interior sampler, analyzes frozen-boundary saturation, stress tests the entanglement entropy scaling and audits the continuum incompatibility.`)
	experiment.Configure()

	// Generate an experiment ID and start the metadata session.
	uid := uuid.New()

	// Enter the results parent directory before the logger creates the
	// experiment directory inside it.
	if resultsDir := resultsDirFlag.Value(); resultsDir != "" {
		errutil.CheckWithContext(os.Chdir(resultsDir), "Cannot enter results directory")
	}

	// Initialize logger.
	logger.Initialize(appName, uid)

	metadata := experiment.NewMetadata(uid)

	// Save experiment runtime environment (configuration, environmental variables, etc).
	err := metadata.RecordRuntimeEnv(experimentStart)
	errutil.CheckWithContext(err, "Cannot record runtime environment")

	// Read configuration.
	latticeConfig := lattice.ConfigFromFlags()
	twoLevelConfig := twolevel.ConfigFromFlags()
	maxRegionSize := entanglement.MaxRegionFromFlags()
	massGap := audit.MassGapFromFlags()

	seed := int64(seedFlag.Value())
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logrus.Infof("Using random seed %d", seed)
	rng := rand.New(rand.NewSource(seed))

	// Record metadata.
	records := experiment.MetadataMap{
		"command_arguments": strings.Join(os.Args, ","),
		"experiment_name":   appName,
		"seed":              strconv.FormatInt(seed, 10),
	}
	err = metadata.RecordMap(records)
	errutil.CheckWithContext(err, "Cannot record experiment metadata")

	// Two-level variance calibration.
	sampler, err := twolevel.NewSampler(latticeConfig, twoLevelConfig, rng)
	if err != nil {
		logrus.Errorf("Invalid two-level configuration: %v", err)
		os.Exit(experiment.ExUsage)
	}
	simulation := sampler.RunSimulation()
	saturation := sampler.AnalyzeBoundarySaturation()

	// Entanglement entropy stress test.
	analyzer := entanglement.NewAnalyzer(latticeConfig, rng)
	stressTest, err := analyzer.RunStressTest(maxRegionSize)
	if err != nil {
		logrus.Errorf("Entropy stress test failed: %v", err)
		os.Exit(experiment.ExUsage)
	}

	// Continuum audit.
	auditor := audit.NewAuditor(audit.LambdaQCDFromFlags())
	incompatibility := auditor.VerifyIncompatibility(massGap)

	// Record the outcomes alongside the runtime environment.
	err = metadata.RecordMap(experiment.MetadataMap{
		"two_level_verdict":      string(simulation.Verdict),
		"saturation_detected":    strconv.FormatBool(saturation.Detected),
		"entanglement_success":   strconv.FormatBool(stressTest.Success),
		"continuum_incompatible": strconv.FormatBool(incompatibility.Incompatible),
	})
	errutil.CheckWithContext(err, "Cannot record experiment outcomes")

	// Render tables and summaries.
	errutil.Check(visualization.DrawTable(visualization.SimulationTable(simulation)))
	visualization.PrintList(visualization.SimulationSummary(simulation))
	errutil.Check(visualization.DrawTable(visualization.SaturationTable(saturation)))
	visualization.PrintList(visualization.SaturationSummary(saturation))
	errutil.Check(visualization.DrawTable(visualization.EntanglementTable(stressTest)))
	visualization.PrintList(visualization.EntanglementSummary(stressTest))
	visualization.PrintList(visualization.AuditSummary(incompatibility))
	visualization.PrintExperimentMetadata(visualization.NewExperimentMetadata(uid))

	// Persist the plot frontend documents and the metadata record.
	errColl := &errcollection.ErrorCollection{}
	errColl.Add(visualization.WriteJSON(visualization.TwoLevelFileName, visualization.NewTwoLevelExport(simulation)))
	errColl.Add(visualization.WriteJSON(visualization.SaturationFileName, visualization.NewSaturationExport(saturation)))
	errColl.Add(visualization.WriteJSON(visualization.EntanglementFileName, visualization.NewEntanglementExport(stressTest)))
	errColl.Add(visualization.WriteJSON(visualization.AuditFileName, visualization.NewAuditExport(incompatibility)))
	errColl.Add(metadata.Save())
	if err := errColl.GetErrIfAny(); err != nil {
		logrus.Errorf("Cannot persist experiment results: %v", err)
		os.Exit(experiment.ExIOErr)
	}

	logrus.Infof("Ended experiment %s with uid %s in %s", appName, uid, time.Since(experimentStart).String())
}
