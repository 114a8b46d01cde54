package main

import (
	"github.com/spf13/cobra"

	"github.com/leengari/colframe/internal/engine"
)

func addCommands(root *cobra.Command, eng *engine.Engine) {
	demo := &cobra.Command{
		Use:   "demo",
		Short: "Run the engine on small example frames and print the results",
	}

	cmd := &cobra.Command{
		Use:   "repeat-by",
		Short: "Repeat each list value N times across nested element types",
		RunE: func(cmd *cobra.Command, args []string) error {
			return demoRepeatBy(cmd.Context(), cmd.OutOrStdout(), eng)
		}}
	demo.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "struct-field field",
		Short: "Extract a struct field from a list-of-structs column",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			field := "icd"
			if len(args) == 1 {
				field = args[0]
			}
			return demoStructField(cmd.Context(), cmd.OutOrStdout(), eng, field)
		}}
	demo.AddCommand(cmd)

	root.AddCommand(demo)

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "Time engine strategies against each other",
	}

	cmd = &cobra.Command{
		Use:   "struct-field",
		Short: "Compare flattened extraction against by-row reconstruction",
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, _ := cmd.Flags().GetInt("rows")
			iters, _ := cmd.Flags().GetInt("iters")
			return benchStructField(cmd.Context(), eng, rows, iters)
		}}
	cmd.Flags().Int("rows", 1_000_000, "rows in the generated frame")
	cmd.Flags().Int("iters", 20, "iterations per strategy")
	benchCmd.AddCommand(cmd)

	root.AddCommand(benchCmd)
}
