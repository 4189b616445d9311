package experiment

import (
	"bufio"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	// CPUModelNameKey defines a key in the platform metrics map
	CPUModelNameKey = "cpu_model"
	// KernelVersionKey defines a key in the platform metrics map
	KernelVersionKey = "kernel_version"
	// GoVersionKey defines a key in the platform metrics map
	GoVersionKey = "go_version"
	// NumCPUKey defines a key in the platform metrics map
	NumCPUKey = "num_cpus"
	// OSKey defines a key in the platform metrics map
	OSKey = "os"
	// ArchKey defines a key in the platform metrics map
	ArchKey = "arch"
)

// GetPlatformMetrics returns map of strings with platform metrics.
// If a metric could not be retrieved the value for the key is an empty string.
func GetPlatformMetrics() MetadataMap {
	platformMetrics := MetadataMap{}

	item, err := CPUModelName()
	if err != nil {
		logrus.Warn(fmt.Sprintf("GetPlatformMetrics: Failed to get %s metric. Skipping. Error: %s", CPUModelNameKey, err.Error()))
	}
	platformMetrics[CPUModelNameKey] = item

	item, err = KernelVersion()
	if err != nil {
		logrus.Warn(fmt.Sprintf("GetPlatformMetrics: Failed to get %s metric. Skipping. Error: %s", KernelVersionKey, err.Error()))
	}
	platformMetrics[KernelVersionKey] = item

	platformMetrics[GoVersionKey] = runtime.Version()
	platformMetrics[NumCPUKey] = strconv.Itoa(runtime.NumCPU())
	platformMetrics[OSKey] = runtime.GOOS
	platformMetrics[ArchKey] = runtime.GOARCH

	return platformMetrics
}

// CPUModelName reads /proc/cpuinfo and returns the value of the 'model name'
// line. Note that it returns only the first occurrence of the model since
// mixed cpu models in > 2 CPUs are not supported.
// In case of an error empty string is returned.
func CPUModelName() (string, error) {
	file, err := os.Open("/proc/cpuinfo")
	if err != nil {
		return "", errors.Wrap(err, "cannot open /proc/cpuinfo file")
	}
	defer file.Close()

	procScanner := bufio.NewScanner(file)

	for procScanner.Scan() {
		chunks := strings.SplitN(procScanner.Text(), ":", 2)
		if len(chunks) < 2 {
			continue
		}
		if strings.TrimSpace(chunks[0]) == "model name" {
			return strings.TrimSpace(chunks[1]), nil
		}
	}
	// Return error from scanner or newly created one.
	err = procScanner.Err()
	if err == nil {
		err = errors.New("did not find phrase 'model name' in /proc/cpuinfo")
	}
	return "", err
}

// KernelVersion returns the kernel release as stated in
// /proc/sys/kernel/osrelease.
// In case of an error empty string is returned.
func KernelVersion() (string, error) {
	return readContents("/proc/sys/kernel/osrelease")
}

func readContents(name string) (string, error) {
	content, err := os.ReadFile(name)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read %s", name)
	}
	return strings.TrimSpace(string(content)), nil
}
