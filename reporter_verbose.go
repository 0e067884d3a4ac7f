package cssguide

import (
	"fmt"
	"io"
	"sort"
)

// VerboseReporter handles detailed statistics and breakdowns.
type VerboseReporter struct {
	w         io.Writer
	useColors bool
}

// NewVerboseReporter creates a verbose reporter.
func NewVerboseReporter(w io.Writer, useColors bool) *VerboseReporter {
	return &VerboseReporter{
		w:         w,
		useColors: useColors,
	}
}

// PrintStatistics outputs detailed linting statistics.
func (r *VerboseReporter) PrintStatistics(result LintResult) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Class Naming Statistics", r.useColors))
	fmt.Fprintln(r.w, "------------------------")

	fmt.Fprintf(r.w, "Files Scanned:     %d\n", result.FilesScanned)
	fmt.Fprintf(r.w, "Classes Checked:   %d\n", result.TokensChecked)
	fmt.Fprintf(r.w, "Conforming:        %d (%.1f%%)\n", result.ValidTokens, result.ConformancePercentage)
	fmt.Fprintf(r.w, "Errors:            %d\n", result.ErrorCount)
	fmt.Fprintf(r.w, "Warnings:          %d\n", result.WarningCount)

	if len(result.NamespaceCounts) > 0 {
		fmt.Fprintln(r.w, "")
		fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Namespace Breakdown", r.useColors))
		fmt.Fprintln(r.w, "-------------------")

		namespaces := make([]Namespace, 0, len(result.NamespaceCounts))
		for ns := range result.NamespaceCounts {
			namespaces = append(namespaces, ns)
		}
		sort.Slice(namespaces, func(i, j int) bool {
			if result.NamespaceCounts[namespaces[i]] != result.NamespaceCounts[namespaces[j]] {
				return result.NamespaceCounts[namespaces[i]] > result.NamespaceCounts[namespaces[j]]
			}
			return namespaces[i] < namespaces[j]
		})

		for _, ns := range namespaces {
			fmt.Fprintf(r.w, "  %-12s %d\n", ns, result.NamespaceCounts[ns])
		}
	}
}

// PrintConformance shows a visual conformance bar.
func (r *VerboseReporter) PrintConformance(result LintResult) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Conformance", r.useColors))
	fmt.Fprintln(r.w, "-----------")
	printProgressBar(r.w, result.ConformancePercentage)
}

// PrintTopOffenders shows the most frequent failing class names.
func (r *VerboseReporter) PrintTopOffenders(result LintResult) {
	if len(result.TopOffenders) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleYellow, "Top Offenders", r.useColors))
	fmt.Fprintln(r.w, "-------------")

	for i, offender := range result.TopOffenders {
		fmt.Fprintf(r.w, "%d. %q - %d occurrence%s (%s)\n",
			i+1, offender.ClassName, offender.Occurrences,
			pluralize(offender.Occurrences), offender.Message)
	}
}

// PrintWarnings shows scanner warnings.
func (r *VerboseReporter) PrintWarnings(result LintResult) {
	if len(result.Warnings) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleYellow, "Warnings", r.useColors))
	fmt.Fprintln(r.w, "-----------")

	for _, warning := range result.Warnings {
		fmt.Fprintf(r.w, "* %s\n", warning)
	}
}

// printProgressBar prints a visual progress bar.
func printProgressBar(w io.Writer, percentage float64) {
	barWidth := 20
	filled := int(percentage / 100 * float64(barWidth))

	fmt.Fprint(w, "[")
	for i := 0; i < barWidth; i++ {
		if i < filled {
			fmt.Fprint(w, "█")
		} else {
			fmt.Fprint(w, "░")
		}
	}
	fmt.Fprintf(w, "] %.1f%%\n", percentage)
}

// pluralize returns "s" if count != 1.
func pluralize(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}
