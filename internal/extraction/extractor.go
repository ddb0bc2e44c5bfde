// Package extraction pulls structured signals (skills, experience, seniority,
// education, organizations) out of resume and job-description text.
package extraction

import (
	"context"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/resume-screener/internal/types"
	"github.com/jonathan/resume-screener/internal/vocab"
)

// Experience phrasing like "5+ years", "3 years", "2 yrs", "7+ yrs" and
// "X years of experience". Both are scanned; the maximum match wins.
var (
	yearsPattern        = regexp.MustCompile(`(\d{1,2})\s*\+?\s*(?:years|year|yrs|yr)\b`)
	yearsOfExpPattern   = regexp.MustCompile(`(\d{1,2})\s*\+?\s*years? of experience`)
	senioritiesByRank   = []string{"senior", "mid", "entry", "intern"}
	educationTieBreaker = func(a, b string) bool {
		if len(a) != len(b) {
			return len(a) > len(b)
		}
		return a < b
	}
)

// Extractor derives a Profile from raw text. The organization recognizer is
// an optional injected capability; extraction of the other signals is pure.
type Extractor struct {
	recognizer Recognizer
	logger     *zap.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithRecognizer sets the organization recognizer.
func WithRecognizer(r Recognizer) Option {
	return func(e *Extractor) { e.recognizer = r }
}

// WithLogger sets the logger used for degradation warnings.
func WithLogger(l *zap.Logger) Option {
	return func(e *Extractor) { e.logger = l }
}

// New creates an Extractor. Without options it uses a no-op organization
// recognizer and a nop logger.
func New(opts ...Option) *Extractor {
	e := &Extractor{
		recognizer: NoopRecognizer{},
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract derives all signals from the text. It never fails: absent signals
// come back as zero/empty values, and a failing organization recognizer only
// leaves Organizations empty.
func (e *Extractor) Extract(ctx context.Context, text string) types.Profile {
	orgs := e.organizations(ctx, text)

	return types.Profile{
		Skills:          vocab.MatchSkills(text),
		ExperienceYears: ExperienceYears(text),
		Seniority:       DetectSeniority(text),
		Education:       EducationLevel(text),
		Organizations:   orgs,
	}
}

func (e *Extractor) organizations(ctx context.Context, text string) []string {
	orgs, err := e.recognizer.Organizations(ctx, text)
	if err != nil {
		e.logger.Warn("organization recognition failed, continuing without organizations",
			zap.Error(err))
		return nil
	}
	sort.Strings(orgs)
	return orgs
}

// ExperienceYears scans the text for experience phrasing and returns the
// maximum number of years mentioned, or 0 when the text states none.
func ExperienceYears(text string) int {
	t := strings.ToLower(text)
	years := 0
	for _, pattern := range []*regexp.Regexp{yearsPattern, yearsOfExpPattern} {
		for _, m := range pattern.FindAllStringSubmatch(t, -1) {
			n, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			if n > years {
				years = n
			}
		}
	}
	return years
}

// DetectSeniority returns the most senior level whose keywords appear in the
// text, or "" when none match. A text mentioning both "junior" and "senior"
// is classified senior.
func DetectSeniority(text string) string {
	for _, level := range senioritiesByRank {
		if vocab.MatchesSeniority(level, text) {
			return level
		}
	}
	return ""
}

// EducationLevel returns the highest-ranked education label present in the
// text, or "" when none match. Labels sharing the top rank tie-break
// deterministically: the longer label wins, then lexicographic order.
func EducationLevel(text string) string {
	best := ""
	bestRank := -1
	for _, label := range vocab.MatchEducationLabels(text) {
		rank := vocab.EducationRank(label)
		switch {
		case rank > bestRank:
			best, bestRank = label, rank
		case rank == bestRank && educationTieBreaker(label, best):
			best = label
		}
	}
	return best
}
