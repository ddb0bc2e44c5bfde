// Package vocab holds the static skill vocabulary, education ranks, and
// seniority keyword sets used for entity extraction and scoring.
package vocab

import (
	"regexp"
	"sort"
)

// SkillSynonyms maps each canonical skill to its synonym surface forms.
// Every canonical skill lists itself as a synonym. Matching is whole-word and
// case-insensitive, so "java" never fires inside "javascript".
var SkillSynonyms = map[string][]string{
	"python":           {"python", "py", "python3"},
	"java":             {"java"},
	"javascript":       {"javascript", "js", "node.js", "nodejs", "typescript", "ts"},
	"sql":              {"sql", "postgresql", "mysql", "mssql", "sqlite"},
	"pandas":           {"pandas"},
	"numpy":            {"numpy"},
	"scikit-learn":     {"scikit-learn", "sklearn"},
	"tensorflow":       {"tensorflow", "tf"},
	"pytorch":          {"pytorch", "torch"},
	"machine learning": {"machine learning", "ml", "mlops"},
	"deep learning":    {"deep learning", "dl", "neural networks"},
	"nlp":              {"nlp", "natural language processing", "spacy", "transformers"},
	"data science":     {"data science", "data scientist"},
	"aws":              {"aws", "amazon web services", "ec2", "s3", "lambda"},
	"gcp":              {"gcp", "google cloud", "bigquery"},
	"azure":            {"azure", "microsoft azure"},
	"docker":           {"docker", "containers"},
	"kubernetes":       {"kubernetes", "k8s"},
	"flask":            {"flask"},
	"django":           {"django"},
	"fastapi":          {"fastapi"},
	"airflow":          {"airflow"},
	"spark":            {"spark", "pyspark"},
	"tableau":          {"tableau"},
	"power bi":         {"power bi", "powerbi"},
	"excel":            {"excel"},
}

// EducationLevels maps education labels to rank scores. Higher means more
// advanced; ranks are only ever compared with >=.
var EducationLevels = map[string]int{
	"phd":           5,
	"doctorate":     5,
	"masters":       4,
	"master":        4,
	"mba":           4,
	"bachelors":     3,
	"bachelor":      3,
	"undergraduate": 3,
	"associates":    2,
	"associate":     2,
	"diploma":       1,
	"high school":   1,
}

// SeniorityKeywords maps each seniority level to its trigger keywords.
var SeniorityKeywords = map[string][]string{
	"intern": {"intern", "internship"},
	"entry":  {"entry", "junior", "jr", "graduate"},
	"mid":    {"mid", "intermediate", "mid-level"},
	"senior": {"senior", "sr", "lead", "principal", "staff"},
}

// SeniorityOrder lists seniority levels from least to most senior. When a
// text mentions keywords from multiple levels, the most senior level wins.
var SeniorityOrder = []string{"intern", "entry", "mid", "senior"}

// skillPatterns holds one compiled whole-word pattern per synonym, keyed by
// canonical skill. Built once at package init; read-only afterwards.
var skillPatterns = func() map[string][]*regexp.Regexp {
	patterns := make(map[string][]*regexp.Regexp, len(SkillSynonyms))
	for canonical, terms := range SkillSynonyms {
		compiled := make([]*regexp.Regexp, 0, len(terms))
		for _, term := range terms {
			compiled = append(compiled, wordPattern(term))
		}
		patterns[canonical] = compiled
	}
	return patterns
}()

// educationPatterns holds one compiled whole-word pattern per education label.
var educationPatterns = func() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(EducationLevels))
	for label := range EducationLevels {
		patterns[label] = wordPattern(label)
	}
	return patterns
}()

// seniorityPatterns holds one compiled whole-word pattern per keyword, keyed
// by seniority level.
var seniorityPatterns = func() map[string][]*regexp.Regexp {
	patterns := make(map[string][]*regexp.Regexp, len(SeniorityKeywords))
	for level, keywords := range SeniorityKeywords {
		compiled := make([]*regexp.Regexp, 0, len(keywords))
		for _, kw := range keywords {
			compiled = append(compiled, wordPattern(kw))
		}
		patterns[level] = compiled
	}
	return patterns
}()

// wordPattern compiles a case-insensitive whole-word pattern for a term.
// Word boundaries keep "py" from firing inside "happy" and "java" inside
// "javascript".
func wordPattern(term string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
}

// MatchSkills returns the sorted canonical skills whose synonyms appear in
// the text as whole words. Idempotent and free of side effects.
func MatchSkills(text string) []string {
	found := make([]string, 0)
	for canonical, patterns := range skillPatterns {
		for _, p := range patterns {
			if p.MatchString(text) {
				found = append(found, canonical)
				break
			}
		}
	}
	sort.Strings(found)
	return found
}

// MatchEducationLabels returns the education labels that appear in the text
// as whole words, in no particular order.
func MatchEducationLabels(text string) []string {
	found := make([]string, 0)
	for label, p := range educationPatterns {
		if p.MatchString(text) {
			found = append(found, label)
		}
	}
	return found
}

// MatchesSeniority reports whether any keyword of the given level appears in
// the text as a whole word.
func MatchesSeniority(level, text string) bool {
	for _, p := range seniorityPatterns[level] {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}

// EducationRank returns the rank score for an education label, or 0 for an
// unknown or empty label.
func EducationRank(label string) int {
	return EducationLevels[label]
}
