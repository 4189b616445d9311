package experiment

import (
	"encoding/json"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"

	"glueball/pkg/conf"
)

const (
	metadataKindEmpty    = ""
	metadataKindFlags    = "flags"
	metadataKindEnviron  = "environ"
	metadataKindPlatform = "platform"
)

// metadataFileName is the file where experiment metadata is persisted,
// relative to the experiment directory.
const metadataFileName = "metadata.json"

// MetadataMap encodes the key value pairs to be stored for an experiment.
type MetadataMap map[string]string

// Metadata gathers key value metadata about a single experiment run, grouped
// by kind (flags, environment, platform and free form entries), and persists
// it as a JSON document in the experiment directory.
type Metadata struct {
	experimentID string
	groups       map[string]MetadataMap
}

// metadataDocument is the on disk representation of Metadata.
type metadataDocument struct {
	ExperimentID string                 `json:"experiment_id"`
	Groups       map[string]MetadataMap `json:"groups"`
}

// NewMetadata returns the Metadata helper for an experiment id.
func NewMetadata(experimentID string) *Metadata {
	return &Metadata{
		experimentID: experimentID,
		groups:       map[string]MetadataMap{},
	}
}

// ExperimentID returns the id the metadata is tagged with.
func (m *Metadata) ExperimentID() string {
	return m.experimentID
}

// storeMap merges the given map into the group of the given kind.
func (m *Metadata) storeMap(metadata MetadataMap, kind string) error {
	group, ok := m.groups[kind]
	if !ok {
		group = MetadataMap{}
		m.groups[kind] = group
	}

	for key, value := range metadata {
		group[key] = value
	}

	return nil
}

// Record stores a key and value and associates it with the experiment id.
func (m *Metadata) Record(key string, value string) error {
	return m.storeMap(MetadataMap{key: value}, metadataKindEmpty)
}

// RecordMap stores a key and value map and associates it with the experiment id.
func (m *Metadata) RecordMap(metadata MetadataMap) error {
	return m.storeMap(metadata, metadataKindEmpty)
}

// RecordFlags saves the whole flags based configuration in the metadata
// information.
func (m *Metadata) RecordFlags() error {
	return m.storeMap(conf.GetFlags(), metadataKindFlags)
}

// RecordEnv adds all OS environment variables that start with prefix 'prefix'
// to the metadata information.
func (m *Metadata) RecordEnv(prefix string) error {
	metadata := MetadataMap{}
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, prefix) {
			fields := strings.SplitN(env, "=", 2)
			metadata[fields[0]] = fields[1]
		}
	}
	return m.storeMap(metadata, metadataKindEnviron)
}

// RecordPlatformMetrics stores platform specific metadata.
func (m *Metadata) RecordPlatformMetrics() error {
	return m.storeMap(GetPlatformMetrics(), metadataKindPlatform)
}

// RecordRuntimeEnv stores the runtime environment of the experiment: the
// flags based configuration, the GLUEBALL_ environment variables, the host
// and start time, and hardware & OS details.
func (m *Metadata) RecordRuntimeEnv(experimentStart time.Time) error {
	// Store configuration.
	if err := m.RecordFlags(); err != nil {
		return err
	}

	// Store GLUEBALL_ environment configuration.
	if err := m.RecordEnv(conf.EnvironmentPrefix); err != nil {
		return err
	}

	hostname, err := os.Hostname()
	if err != nil {
		return errors.Wrap(err, "cannot retrieve hostname")
	}
	// Store hostname and start time.
	err = m.RecordMap(MetadataMap{"time": experimentStart.Format(time.RFC822Z), "host": hostname})
	if err != nil {
		return err
	}

	// Store hardware & OS details.
	return m.RecordPlatformMetrics()
}

// GetGroup retrieves a single kind of metadata.
// Returns an error if nothing was recorded for the kind.
func (m *Metadata) GetGroup(kind string) (MetadataMap, error) {
	group, ok := m.groups[kind]
	if !ok {
		return nil, errors.Errorf("no metadata recorded for experiment ID %q and kind %q", m.experimentID, kind)
	}
	return group, nil
}

// Save writes the metadata document to the metadata file in the current
// working directory, which CreateExperimentDir sets to the experiment
// directory.
func (m *Metadata) Save() error {
	document := metadataDocument{
		ExperimentID: m.experimentID,
		Groups:       m.groups,
	}

	bytes, err := json.MarshalIndent(document, "", "  ")
	if err != nil {
		return errors.Wrap(err, "cannot serialize experiment metadata")
	}

	if err := os.WriteFile(metadataFileName, bytes, 0644); err != nil {
		return errors.Wrapf(err, "cannot write metadata file %q", metadataFileName)
	}

	return nil
}

// Clear deletes all metadata entries associated with the current experiment
// id, including the metadata file if one was saved.
func (m *Metadata) Clear() error {
	m.groups = map[string]MetadataMap{}

	if err := os.Remove(metadataFileName); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "cannot remove metadata file %q", metadataFileName)
	}

	return nil
}

// LoadMetadata reads a metadata document saved by a previous experiment run.
func LoadMetadata(path string) (*Metadata, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read metadata file %q", path)
	}

	document := metadataDocument{}
	if err := json.Unmarshal(bytes, &document); err != nil {
		return nil, errors.Wrapf(err, "cannot parse metadata file %q", path)
	}

	metadata := NewMetadata(document.ExperimentID)
	for kind, group := range document.Groups {
		if err := metadata.storeMap(group, kind); err != nil {
			return nil, err
		}
	}

	return metadata, nil
}
