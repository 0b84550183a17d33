package main

import (
	"github.com/spf13/cobra"
)

var listJobsCmd = &cobra.Command{
	Use:   "list-jobs",
	Short: "List the job templates",
	RunE:  runListJobs,
}

func init() {
	rootCmd.AddCommand(listJobsCmd)
}

func runListJobs(_ *cobra.Command, _ []string) error {
	if p := printer(); p != nil {
		p.PrintJobTemplates(appCatalog.JobTemplates)
	}
	return writeJSON(appCatalog.JobTemplates, "", "")
}
