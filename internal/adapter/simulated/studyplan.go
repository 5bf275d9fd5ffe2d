package simulated

import (
	"context"

	"studymate/internal/domain"
)

var cannedPlan = []domain.StudyStep{
	{
		Step:        1,
		Title:       "Initial Reading & Overview",
		Duration:    "15-20 minutes",
		Description: "Read through your notes completely to get a big picture understanding. Don't worry about memorizing details yet.",
		Tips:        []string{"Take your time", "Highlight key concepts", "Note any confusing areas"},
	},
	{
		Step:        2,
		Title:       "Concept Mapping",
		Duration:    "20-25 minutes",
		Description: "Create visual connections between different concepts. Draw diagrams, flowcharts, or mind maps to understand relationships.",
		Tips:        []string{"Use colors and symbols", "Connect related ideas", "Identify main themes"},
	},
	{
		Step:        3,
		Title:       "Active Recall Practice",
		Duration:    "30 minutes",
		Description: "Close your notes and try to explain key concepts out loud or write them from memory. This strengthens neural pathways.",
		Tips:        []string{"Explain to yourself", "Use the Feynman technique", "Identify knowledge gaps"},
	},
	{
		Step:        4,
		Title:       "Problem Solving & Application",
		Duration:    "25-30 minutes",
		Description: "Apply what you've learned to practice problems or real-world scenarios. This deepens understanding.",
		Tips:        []string{"Start with easy problems", "Work through examples", "Think about applications"},
	},
	{
		Step:        5,
		Title:       "Review & Consolidation",
		Duration:    "15 minutes",
		Description: "Review everything you've learned, fill in any gaps, and create a final summary for future reference.",
		Tips:        []string{"Summarize key points", "Note areas for follow-up", "Plan next study session"},
	},
}

// StudyPlanGenerator returns the canned five-step plan.
type StudyPlanGenerator struct{}

func NewStudyPlanGenerator() *StudyPlanGenerator {
	return &StudyPlanGenerator{}
}

func (g *StudyPlanGenerator) GenerateStudyPlan(ctx context.Context, notes string) ([]domain.StudyStep, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	steps := make([]domain.StudyStep, len(cannedPlan))
	for i, s := range cannedPlan {
		s.Tips = append([]string(nil), s.Tips...)
		s.Status = domain.StepPending
		steps[i] = s
	}
	return steps, nil
}

var _ domain.StudyPlanGenerator = (*StudyPlanGenerator)(nil)
