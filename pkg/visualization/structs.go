// Package visualization renders experiment results for humans (stdout
// tables and lists) and for the plot frontend (JSON documents).
package visualization

// Table is a model for tabular data.
type Table struct {
	headers []string
	data    [][]string
}

// NewTable creates new model of data representation.
func NewTable(headers []string, data [][]string) *Table {
	return &Table{
		headers,
		data,
	}
}

// List is a model for line-oriented data.
type List struct {
	elements []string
	label    string
}

// NewList creates new model of data representation. The label is prepended
// to every printed element.
func NewList(elements []string, label string) *List {
	return &List{
		elements,
		label,
	}
}

// ExperimentMetadata encodes the metadata which is related to an experiment run.
// This currently only contains the experiment id, but is intended to encode
// the experiment environment (hardware and software configuration) as well.
type ExperimentMetadata struct {
	experimentID string
}

// NewExperimentMetadata is the ExperimentMetadata constructor and returns
// a new ExperimentMetadata with a specific id.
func NewExperimentMetadata(ID string) *ExperimentMetadata {
	return &ExperimentMetadata{
		ID,
	}
}

// String returns a printable string with all experiment metadata.
// This is currently only the experiment id.
func (metadata *ExperimentMetadata) String() string {
	return "Experiment id: " + metadata.experimentID
}
