package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-compass/internal/ranking"
	"github.com/jonathan/career-compass/internal/schemas"
	"github.com/jonathan/career-compass/internal/types"
)

var matchMentorsCmd = &cobra.Command{
	Use:   "match-mentors",
	Short: "Rank mentors for a role and the user's interests",
	Long: `Score every mentor in the roster against a role's required and soft skills and the user's interests,
and print the top matches. The role comes from a saved career guide (--guide), a job template (--job)
or explicit flags.`,
	RunE: runMatchMentors,
}

var (
	mentorGuideFile  string
	mentorJobID      string
	mentorTitle      string
	mentorRequired   string
	mentorSoft       string
	mentorInterests  string
	mentorOutputFile string
)

func init() {
	matchMentorsCmd.Flags().StringVarP(&mentorGuideFile, "guide", "g", "", "Path to a career guide JSON file")
	matchMentorsCmd.Flags().StringVarP(&mentorJobID, "job", "j", "", "Job template ID")
	matchMentorsCmd.Flags().StringVar(&mentorTitle, "title", "", "Target job title")
	matchMentorsCmd.Flags().StringVar(&mentorRequired, "required", "", "Comma-separated required skills")
	matchMentorsCmd.Flags().StringVar(&mentorSoft, "soft", "", "Comma-separated soft skills")
	matchMentorsCmd.Flags().StringVarP(&mentorInterests, "interests", "i", "", "The user's interests, free text")
	matchMentorsCmd.Flags().StringVarP(&mentorOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")

	matchMentorsCmd.MarkFlagsMutuallyExclusive("guide", "job")
	rootCmd.AddCommand(matchMentorsCmd)
}

func runMatchMentors(_ *cobra.Command, _ []string) error {
	needs, err := resolveNeeds()
	if err != nil {
		return err
	}

	req := types.MentorMatchRequest{
		JobTitle:       needs.JobTitle,
		RequiredSkills: needs.RequiredSkills,
		SoftSkills:     needs.SoftSkills,
		Interests:      mentorInterests,
	}
	if err := req.Validate(); err != nil {
		return err
	}

	matches := ranking.MatchMentors(needs, req.Interests, appCatalog.Mentors)
	out := types.MentorMatches{JobTitle: needs.JobTitle, Matches: matches}
	if p := printer(); p != nil {
		p.PrintMentorMatches(matches)
	}
	return writeJSON(out, mentorOutputFile, schemas.MentorMatchesSchema)
}

// resolveNeeds builds the role from a guide file, a template, or explicit flags.
// Explicit flags override what the guide or template provides.
func resolveNeeds() (types.RoleNeeds, error) {
	var needs types.RoleNeeds

	switch {
	case mentorGuideFile != "":
		var guide types.CareerGuide
		if err := readJSONFile(mentorGuideFile, &guide); err != nil {
			return needs, err
		}
		needs = guide.Needs()
	case mentorJobID != "":
		job, ok := appCatalog.Job(mentorJobID)
		if !ok {
			return needs, fmt.Errorf("unknown job template %q (see list-jobs)", mentorJobID)
		}
		needs = types.RoleNeeds{JobTitle: job.Title, RequiredSkills: job.Skills}
	}

	if mentorTitle != "" {
		needs.JobTitle = mentorTitle
	}
	if list := splitList(mentorRequired); len(list) > 0 {
		needs.RequiredSkills = list
	}
	if list := splitList(mentorSoft); len(list) > 0 {
		needs.SoftSkills = list
	}
	return needs, nil
}
