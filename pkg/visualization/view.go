package visualization

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
)

// DrawTable draws a struct with headers and data rows.
func DrawTable(table *Table) error {
	output := tablewriter.NewWriter(os.Stdout)
	output.SetHeader(table.headers)
	for _, v := range table.data {
		output.Append(v)
	}
	output.Render()
	return nil
}

// PrintList prints elements from list.
func PrintList(list *List) {
	for _, value := range list.elements {
		fmt.Println(list.label + value)
	}
}

// PrintExperimentMetadata prints the experiment metadata.
func PrintExperimentMetadata(experimentMetadata *ExperimentMetadata) {
	fmt.Println("\n" + experimentMetadata.String())
}
