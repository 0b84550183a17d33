package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-compass/internal/logging"
	"github.com/jonathan/career-compass/internal/rendering"
	"github.com/jonathan/career-compass/internal/types"
)

var renderResumeCmd = &cobra.Command{
	Use:   "render-resume",
	Short: "Render a resume as LaTeX",
	Long:  "Render a resume JSON file, and optionally the career guide it targets, into a LaTeX document.",
	RunE:  runRenderResume,
}

var (
	resumeFile       string
	resumeGuideFile  string
	resumeTemplate   string
	resumeOutputFile string
)

func init() {
	renderResumeCmd.Flags().StringVarP(&resumeFile, "resume", "r", "", "Path to resume JSON file (required)")
	renderResumeCmd.Flags().StringVarP(&resumeGuideFile, "guide", "g", "", "Path to career guide JSON file")
	renderResumeCmd.Flags().StringVarP(&resumeTemplate, "template", "t", "", "Path to LaTeX template (default built-in)")
	renderResumeCmd.Flags().StringVarP(&resumeOutputFile, "out", "o", "", "Path to output .tex file (default stdout)")

	_ = renderResumeCmd.MarkFlagRequired("resume")
	rootCmd.AddCommand(renderResumeCmd)
}

func runRenderResume(_ *cobra.Command, _ []string) error {
	var resume types.Resume
	if err := readJSONFile(resumeFile, &resume); err != nil {
		return err
	}

	var guide *types.CareerGuide
	if resumeGuideFile != "" {
		guide = &types.CareerGuide{}
		if err := readJSONFile(resumeGuideFile, guide); err != nil {
			return err
		}
	}

	templatePath := resumeTemplate
	if templatePath == "" {
		templatePath = settings.Template
	}

	tex, err := rendering.RenderResumeLaTeX(&resume, guide, templatePath)
	if err != nil {
		return fmt.Errorf("failed to render resume: %w", err)
	}

	if resumeOutputFile == "" {
		_, err = os.Stdout.WriteString(tex)
		return err
	}
	if err := os.WriteFile(resumeOutputFile, []byte(tex), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	logging.Info().Str("path", resumeOutputFile).Msg("resume written")
	return nil
}
