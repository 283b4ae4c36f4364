package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"github.com/pterm/pterm"

	"github.com/born-ml/ricenet/internal/dataset"
	"github.com/born-ml/ricenet/internal/eval"
)

// renderReport prints one row per held-out sample, the confusion matrix and
// the accuracy line.
func renderReport(w io.Writer, report *eval.Report, registry *dataset.Registry) error {
	label := func(class int) string {
		return fmt.Sprintf("%d (%s)", class, registry.Name(class))
	}

	samples := pterm.TableData{{"Sample", "Predicted", "Actual"}}
	for i := range report.Predictions {
		samples = append(samples, []string{
			strconv.Itoa(i),
			label(report.Predictions[i]),
			label(report.Actuals[i]),
		})
	}
	sampleTable, err := pterm.DefaultTable.WithHasHeader().WithData(samples).Srender()
	if err != nil {
		return errors.Wrap(err, "failed to render predictions")
	}

	confusion := pterm.TableData{append([]string{"actual \\ predicted"}, registry.Names()...)}
	for actual, row := range report.Confusion {
		line := []string{registry.Name(actual)}
		for _, count := range row {
			line = append(line, strconv.Itoa(count))
		}
		confusion = append(confusion, line)
	}
	confusionTable, err := pterm.DefaultTable.WithHasHeader().WithData(confusion).Srender()
	if err != nil {
		return errors.Wrap(err, "failed to render confusion matrix")
	}

	fmt.Fprintln(w, "Neural Network Predictions:")
	fmt.Fprintln(w, sampleTable)
	fmt.Fprintln(w)
	fmt.Fprintln(w, confusionTable)
	fmt.Fprintf(w, "Accuracy: %.2f%%\n", report.Accuracy*100)
	return nil
}
