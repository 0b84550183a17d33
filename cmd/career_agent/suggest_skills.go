package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/career-compass/internal/schemas"
	"github.com/jonathan/career-compass/internal/skills"
	"github.com/jonathan/career-compass/internal/types"
)

var suggestSkillsCmd = &cobra.Command{
	Use:   "suggest-skills",
	Short: "Suggest skills related to the ones already listed",
	RunE:  runSuggestSkills,
}

var (
	suggestSkills     string
	suggestOutputFile string
)

func init() {
	suggestSkillsCmd.Flags().StringVarP(&suggestSkills, "skills", "s", "", "The user's skills, free text")
	suggestSkillsCmd.Flags().StringVarP(&suggestOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	rootCmd.AddCommand(suggestSkillsCmd)
}

func runSuggestSkills(_ *cobra.Command, _ []string) error {
	out := types.SkillSuggestions{
		Suggestions: skills.SuggestRelatedSkills(suggestSkills, appCatalog.RelatedSkills),
	}
	if p := printer(); p != nil {
		p.PrintSuggestions(out.Suggestions)
	}
	return writeJSON(out, suggestOutputFile, schemas.SuggestionsSchema)
}
