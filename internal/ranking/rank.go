// Package ranking combines extracted signals and semantic similarity into a
// final ranked candidate list with human-readable rationale.
package ranking

import (
	"context"
	"sort"

	"github.com/jonathan/resume-screener/internal/extraction"
	"github.com/jonathan/resume-screener/internal/types"
)

// DefaultSimilarity is the neutral base score used when a candidate arrives
// without a measured semantic similarity.
const DefaultSimilarity = 60.0

// Ranker scores candidates against a job description.
type Ranker struct {
	extractor *extraction.Extractor
}

// NewRanker creates a Ranker over the given extractor.
func NewRanker(extractor *extraction.Extractor) *Ranker {
	return &Ranker{extractor: extractor}
}

// Requirements derives the job's requirements from its description text. The
// same extraction logic applies to jobs and resumes; only the labels differ.
func (r *Ranker) Requirements(ctx context.Context, jobText string) types.JobRequirements {
	profile := r.extractor.Extract(ctx, jobText)
	return types.JobRequirements{
		Skills:    profile.Skills,
		Seniority: profile.Seniority,
		Education: profile.Education,
		MinYears:  profile.ExperienceYears,
	}
}

// Rank scores every candidate against the job description and returns them
// sorted by final score descending. The sort is stable: equal scores keep
// input order. Absent or empty inputs degrade to zero contributions; Rank
// itself never fails.
func (r *Ranker) Rank(ctx context.Context, candidates []types.MatchResult, jobText string) []types.RankedCandidate {
	req := r.Requirements(ctx, jobText)

	ranked := make([]types.RankedCandidate, 0, len(candidates))
	for _, c := range candidates {
		profile := r.extractor.Extract(ctx, c.Text)

		base := DefaultSimilarity
		if c.Similarity != nil {
			base = *c.Similarity
		}

		matched := matchedSkills(req.Skills, profile.Skills)
		score := base +
			skillBonus(matched, req.Skills) +
			experienceBonus(profile.ExperienceYears, req.MinYears) +
			seniorityBonus(profile.Seniority, req.Seniority) +
			educationBonus(profile.Education, req.Education)

		ranked = append(ranked, types.RankedCandidate{
			Name:            c.Name,
			Similarity:      round2(base),
			FinalScore:      round2(clamp(score, 0, 100)),
			MatchedSkills:   matched,
			AllSkills:       profile.Skills,
			ExperienceYears: profile.ExperienceYears,
			Seniority:       profile.Seniority,
			Education:       profile.Education,
			Reason:          buildReason(base, matched, profile.ExperienceYears, req.MinYears),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].FinalScore > ranked[j].FinalScore
	})

	return ranked
}
