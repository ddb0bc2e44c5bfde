// Package report summarizes screening results and renders them as a
// self-contained HTML report.
package report

import (
	"fmt"
	"html/template"
	"io"
	"sort"

	"github.com/jonathan/resume-screener/internal/types"
)

// defaultTopSkills caps the skill frequency list in summaries.
const defaultTopSkills = 10

// SkillCount pairs a canonical skill with how many candidates list it.
type SkillCount struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

// Summary aggregates a ranked candidate list.
type Summary struct {
	TotalCandidates   int          `json:"total_candidates"`
	AverageScore      float64      `json:"average_score"`
	AverageExperience float64      `json:"average_experience"`
	TopSkills         []SkillCount `json:"top_skills"`
}

// Summarize computes aggregate statistics over a ranked list. An empty list
// yields a zero summary.
func Summarize(ranked []types.RankedCandidate) Summary {
	if len(ranked) == 0 {
		return Summary{}
	}

	var scoreSum, expSum float64
	counts := make(map[string]int)
	for _, c := range ranked {
		scoreSum += c.FinalScore
		expSum += float64(c.ExperienceYears)
		for _, skill := range c.AllSkills {
			counts[skill]++
		}
	}

	return Summary{
		TotalCandidates:   len(ranked),
		AverageScore:      scoreSum / float64(len(ranked)),
		AverageExperience: expSum / float64(len(ranked)),
		TopSkills:         topSkills(counts, defaultTopSkills),
	}
}

// topSkills returns the n most common skills, count descending with
// alphabetical tie-break for determinism.
func topSkills(counts map[string]int, n int) []SkillCount {
	all := make([]SkillCount, 0, len(counts))
	for skill, count := range counts {
		all = append(all, SkillCount{Skill: skill, Count: count})
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Count != all[j].Count {
			return all[i].Count > all[j].Count
		}
		return all[i].Skill < all[j].Skill
	})
	if len(all) > n {
		all = all[:n]
	}
	return all
}

var reportTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"rank": func(i int) int { return i + 1 },
}).Parse(`<!DOCTYPE html>
<html>
<head>
<title>Screening Report - {{.Title}}</title>
<style>
body { font-family: Arial, sans-serif; margin: 40px; }
.stats { display: grid; grid-template-columns: repeat(3, 1fr); gap: 20px; }
.stat-card { background: #f5f5f5; padding: 20px; border-radius: 8px; }
table { border-collapse: collapse; margin-top: 30px; width: 100%; }
th, td { border: 1px solid #ddd; padding: 8px; text-align: left; }
th { background: #f5f5f5; }
</style>
</head>
<body>
<h1>Screening Report - {{.Title}}</h1>

<div class="stats">
<div class="stat-card"><h3>Total Candidates</h3><p>{{.Summary.TotalCandidates}}</p></div>
<div class="stat-card"><h3>Average Score</h3><p>{{printf "%.2f" .Summary.AverageScore}}</p></div>
<div class="stat-card"><h3>Average Experience</h3><p>{{printf "%.1f" .Summary.AverageExperience}} years</p></div>
</div>

<h2>Ranked Candidates</h2>
<table>
<tr><th>#</th><th>Candidate</th><th>Final Score</th><th>Similarity</th><th>Experience</th><th>Reason</th></tr>
{{range $i, $c := .Ranked}}<tr><td>{{rank $i}}</td><td>{{$c.Name}}</td><td>{{printf "%.2f" $c.FinalScore}}</td><td>{{printf "%.2f" $c.Similarity}}</td><td>{{$c.ExperienceYears}}y</td><td>{{$c.Reason}}</td></tr>
{{end}}</table>

<h2>Top Skills</h2>
<ul>
{{range .Summary.TopSkills}}<li>{{.Skill}}: {{.Count}} candidates</li>
{{end}}</ul>
</body>
</html>
`))

// reportData feeds the HTML template.
type reportData struct {
	Title   string
	Summary Summary
	Ranked  []types.RankedCandidate
}

// WriteHTML renders the screening report for a job.
func WriteHTML(w io.Writer, title string, ranked []types.RankedCandidate) error {
	data := reportData{
		Title:   title,
		Summary: Summarize(ranked),
		Ranked:  ranked,
	}
	if err := reportTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return nil
}
