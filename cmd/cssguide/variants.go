package main

import (
	"fmt"

	"github.com/spf13/cobra"

	cssguide "github.com/j-d-b/css-guide"
)

var variantsCmd = &cobra.Command{
	Use:   "variants",
	Short: "List the built-in naming variants",
	Run: func(_ *cobra.Command, _ []string) {
		for _, variant := range cssguide.Variants() {
			fmt.Println(variant.Name)

			elementDelim := variant.ElementDelim
			if elementDelim == "" {
				elementDelim = "(none)"
			}
			fmt.Printf("  element delimiter:  %s\n", elementDelim)
			fmt.Printf("  modifier delimiter: %s\n", variant.ModifierDelim)

			fmt.Println("  prefixes:")
			for _, prefix := range variant.Prefixes {
				fmt.Printf("    %-5s %s\n", prefix.Literal, prefix.Namespace)
			}
			fmt.Println()
		}
	},
}
