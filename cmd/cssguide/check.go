package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cssguide "github.com/j-d-b/css-guide"
)

var checkCmd = &cobra.Command{
	Use:   "check [class...]",
	Short: "Validate individual class names",
	Long: `Validate class-name tokens given as arguments, or read them from
stdin one per line when no arguments are given. Prints one line per
token and exits 1 if any token fails.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().Bool("json", false, "Emit results as JSON")
}

// checkResult is the JSON shape for one validated token.
type checkResult struct {
	Input      string   `json:"input"`
	OK         bool     `json:"ok"`
	Namespace  string   `json:"namespace"`
	Block      string   `json:"block,omitempty"`
	Element    string   `json:"element,omitempty"`
	Modifier   string   `json:"modifier,omitempty"`
	Violations []string `json:"violations,omitempty"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	validator, err := cssguide.ForVariant(
		getStringWithFallback("variant", "variant", "double-underscore"),
		cssguide.WithStrict(getBoolWithFallback("strict", "strict", false)),
		cssguide.WithCustomNamespaces(customNamespaces()),
	)
	if err != nil {
		return err
	}

	names := args
	if len(names) == 0 {
		names, err = readLines(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
	}

	results := validator.ValidateAll(names)
	quiet := getBoolWithFallback("quiet", "quiet", false)
	asJSON, _ := cmd.Flags().GetBool("json")

	failed := false
	if asJSON {
		out := make([]checkResult, len(results))
		for i, res := range results {
			out[i] = toCheckResult(res)
			if !res.OK {
				failed = true
			}
		}
		if !quiet {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(out); err != nil {
				return err
			}
		}
	} else {
		useColors := getBoolWithFallback("color", "color", false)
		for _, res := range results {
			if !res.OK {
				failed = true
			}
			if !quiet {
				printCheckResult(res, useColors)
			}
		}
	}

	if failed {
		os.Exit(1)
	}
	return nil
}

// printCheckResult writes one human-readable line per token.
func printCheckResult(res cssguide.Result, useColors bool) {
	if res.OK {
		fmt.Printf("%s %s (namespace=%s block=%s",
			cssguide.RenderStyle(cssguide.StyleGreen, "ok  ", useColors),
			res.Class.Raw, res.Class.Namespace, res.Class.Block)
		if res.Class.Element != "" {
			fmt.Printf(" element=%s", res.Class.Element)
		}
		if res.Class.Modifier != "" {
			fmt.Printf(" modifier=%s", res.Class.Modifier)
		}
		fmt.Println(")")
		return
	}

	fmt.Printf("%s %s\n",
		cssguide.RenderStyle(cssguide.StyleRed, "FAIL", useColors),
		res.Class.Raw)
	for _, viol := range res.Violations {
		fmt.Printf("     %s: %s\n", viol.Kind, viol.Message)
	}
}

// toCheckResult flattens a validation result for JSON output.
func toCheckResult(res cssguide.Result) checkResult {
	out := checkResult{
		Input:     res.Class.Raw,
		OK:        res.OK,
		Namespace: string(res.Class.Namespace),
		Block:     res.Class.Block,
		Element:   res.Class.Element,
		Modifier:  res.Class.Modifier,
	}
	for _, viol := range res.Violations {
		out.Violations = append(out.Violations, fmt.Sprintf("%s: %s", viol.Kind, viol.Message))
	}
	return out
}

// readLines collects non-empty lines from r.
func readLines(r *os.File) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}
