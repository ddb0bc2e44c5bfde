package ranking

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/jonathan/resume-screener/internal/vocab"
)

// Bonus/penalty magnitudes. Fixed heuristics, not trained weights.
const (
	maxSkillBonus        = 20.0
	maxExperienceBonus   = 10.0
	maxExperiencePenalty = 10.0
	seniorityMatchBonus  = 5.0
	educationMatchBonus  = 5.0
)

// matchedSkills returns the sorted intersection of required and candidate
// skills.
func matchedSkills(required, candidate []string) []string {
	have := make(map[string]bool, len(candidate))
	for _, s := range candidate {
		have[s] = true
	}

	matched := make([]string, 0)
	for _, s := range required {
		if have[s] {
			matched = append(matched, s)
		}
	}
	sort.Strings(matched)
	return matched
}

// skillBonus awards up to +20 proportional to the share of required skills
// the candidate covers. Zero when the job states no required skills.
func skillBonus(matched, required []string) float64 {
	if len(required) == 0 {
		return 0
	}
	overlap := float64(len(matched)) / math.Max(1, float64(len(required)))
	return overlap * maxSkillBonus
}

// experienceBonus rewards meeting or exceeding the job's minimum years and
// penalizes falling short. Exactly meeting the minimum still earns +2.5: the
// +1 term rewards meeting the bar, not just clearing it. Zero when the job
// states no minimum.
func experienceBonus(candidateYears, requiredYears int) float64 {
	if requiredYears == 0 {
		return 0
	}
	if candidateYears >= requiredYears {
		return math.Min(maxExperienceBonus, float64(candidateYears-requiredYears+1)*2.5)
	}
	return -math.Min(maxExperiencePenalty, float64(requiredYears-candidateYears)*2.0)
}

// seniorityBonus awards +5 only for an exact level match; adjacent levels
// earn nothing.
func seniorityBonus(candidate, required string) float64 {
	if required != "" && candidate != "" && candidate == required {
		return seniorityMatchBonus
	}
	return 0
}

// educationBonus awards +5 when the job states a required education level and
// the candidate's rank meets or exceeds it. A candidate with no detected
// education ranks 0.
func educationBonus(candidate, required string) float64 {
	if required == "" {
		return 0
	}
	if vocab.EducationRank(candidate) >= vocab.EducationRank(required) {
		return educationMatchBonus
	}
	return 0
}

// buildReason produces the human-readable rationale: a similarity band, the
// matched skills when any, and an experience comparison when the job states a
// minimum.
func buildReason(base float64, matched []string, candidateYears, requiredYears int) string {
	parts := make([]string, 0, 3)

	switch {
	case base >= 80:
		parts = append(parts, "Strong semantic similarity")
	case base >= 60:
		parts = append(parts, "Good semantic similarity")
	default:
		parts = append(parts, "Moderate semantic similarity")
	}

	if len(matched) > 0 {
		parts = append(parts, fmt.Sprintf("skill overlap: %s", strings.Join(matched, ", ")))
	}

	if requiredYears > 0 {
		if candidateYears >= requiredYears {
			parts = append(parts, fmt.Sprintf("experience meets requirement (%dy >= %dy)", candidateYears, requiredYears))
		} else {
			parts = append(parts, fmt.Sprintf("experience below requirement (%dy < %dy)", candidateYears, requiredYears))
		}
	}

	return strings.Join(parts, "; ") + "."
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// round2 rounds to two decimal places for presentation.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
