package server

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/jonathan/resume-screener/internal/db"
	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/report"
	"github.com/jonathan/resume-screener/internal/types"
)

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// CreateJobRequest is the payload for POST /jobs.
type CreateJobRequest struct {
	Title          string   `json:"title" validate:"required"`
	Description    string   `json:"description" validate:"required"`
	RequiredSkills []string `json:"required_skills,omitempty"`
	MinimumYears   int      `json:"minimum_years,omitempty" validate:"gte=0"`
}

// handleCreateJob stores a job posting. Skills and minimum years are derived
// from the description when the caller omits them.
func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	var req CreateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	// Stored and derived views must agree, so clean once up front.
	description := ingestion.CleanText(req.Description)

	if req.RequiredSkills == nil || req.MinimumYears == 0 {
		derived := s.ranker.Requirements(r.Context(), description)
		if req.RequiredSkills == nil {
			req.RequiredSkills = derived.Skills
		}
		if req.MinimumYears == 0 {
			req.MinimumYears = derived.MinYears
		}
	}

	id, err := s.db.AddJob(r.Context(), req.Title, description, req.RequiredSkills, req.MinimumYears)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]int{"job_id": id})
}

// handleGetJob retrieves a stored job posting.
func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	job, err := s.db.GetJob(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if job == nil {
		s.errorResponse(w, http.StatusNotFound, "Job not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, job)
}

// CreateCandidateRequest is the payload for POST /candidates. Resume content
// arrives either as plain text or as a base64 document with its extension.
type CreateCandidateRequest struct {
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email,omitempty" validate:"omitempty,email"`
	Phone          string `json:"phone,omitempty"`
	ResumeText     string `json:"resume_text,omitempty"`
	DocumentBase64 string `json:"document_base64,omitempty"`
	Extension      string `json:"extension,omitempty"`
}

// handleCreateCandidate stores a candidate, extracting skills, experience,
// and education from the resume text.
func (s *Server) handleCreateCandidate(w http.ResponseWriter, r *http.Request) {
	var req CreateCandidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	text := req.ResumeText
	if text == "" && req.DocumentBase64 != "" {
		data, err := base64.StdEncoding.DecodeString(req.DocumentBase64)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid document_base64: "+err.Error())
			return
		}
		text = ingestion.ExtractTextFromBytes(data, req.Extension)
	}
	text = ingestion.CleanText(text)
	if text == "" {
		s.errorResponse(w, http.StatusBadRequest, "No resume text could be extracted")
		return
	}

	profile := s.extractor.Extract(r.Context(), text)

	id, err := s.db.AddCandidate(r.Context(), db.Candidate{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		ResumeText:      text,
		Skills:          profile.Skills,
		ExperienceYears: profile.ExperienceYears,
		EducationLevel:  profile.Education,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]int{"candidate_id": id})
}

// ScreenRequest is the payload for POST /screen.
type ScreenRequest struct {
	JobID       int `json:"job_id" validate:"required,gt=0"`
	CandidateID int `json:"candidate_id" validate:"required,gt=0"`
}

// ScreenResponse reports one stored screening.
type ScreenResponse struct {
	ScreeningID     int     `json:"screening_id"`
	SimilarityScore float64 `json:"similarity_score"`
	FinalScore      float64 `json:"final_score"`
	Feedback        string  `json:"feedback"`
}

// handleScreen scores one stored candidate against one stored job and
// persists the result.
func (s *Server) handleScreen(w http.ResponseWriter, r *http.Request) {
	var req ScreenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	ctx := r.Context()
	job, err := s.db.GetJob(ctx, req.JobID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if job == nil {
		s.errorResponse(w, http.StatusNotFound, "Job not found")
		return
	}

	candidate, err := s.db.GetCandidate(ctx, req.CandidateID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if candidate == nil {
		s.errorResponse(w, http.StatusNotFound, "Candidate not found")
		return
	}

	resumes := []types.Resume{{Name: candidate.Name, Text: candidate.ResumeText}}
	matches, err := s.matcher.Match(ctx, job.Description, resumes)
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, "Similarity scoring failed: "+err.Error())
		return
	}

	ranked := s.ranker.Rank(ctx, matches, job.Description)
	result := ranked[0]

	screeningID, err := s.db.AddScreening(ctx, db.Screening{
		JobID:           req.JobID,
		CandidateID:     req.CandidateID,
		SimilarityScore: result.Similarity,
		FinalScore:      result.FinalScore,
		Feedback:        result.Reason,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, ScreenResponse{
		ScreeningID:     screeningID,
		SimilarityScore: result.Similarity,
		FinalScore:      result.FinalScore,
		Feedback:        result.Reason,
	})
}

// RankRequest is the payload for POST /rank.
type RankRequest struct {
	JobDescription string         `json:"job_description" validate:"required"`
	Resumes        []RankedResume `json:"resumes" validate:"required,min=1,dive"`
}

// RankedResume is one named resume text in a rank request.
type RankedResume struct {
	Name string `json:"name" validate:"required"`
	Text string `json:"text" validate:"required"`
}

// RankResponse carries the ranked list for an ad-hoc batch.
type RankResponse struct {
	Results []types.RankedCandidate `json:"results"`
	Count   int                     `json:"count"`
}

// handleRank screens a batch of resume texts against a job description
// without persisting anything.
func (s *Server) handleRank(w http.ResponseWriter, r *http.Request) {
	var req RankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	jobText := ingestion.CleanText(req.JobDescription)
	resumes := make([]types.Resume, 0, len(req.Resumes))
	for _, res := range req.Resumes {
		resumes = append(resumes, types.Resume{Name: res.Name, Text: ingestion.CleanText(res.Text)})
	}

	matches, err := s.matcher.Match(r.Context(), jobText, resumes)
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, "Similarity scoring failed: "+err.Error())
		return
	}

	ranked := s.ranker.Rank(r.Context(), matches, jobText)
	s.jsonResponse(w, http.StatusOK, RankResponse{Results: ranked, Count: len(ranked)})
}

// handleCandidateHistory lists a candidate's screenings, most recent first.
func (s *Server) handleCandidateHistory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid candidate ID")
		return
	}

	history, err := s.db.CandidateHistory(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"screenings": history, "count": len(history)})
}

// handleJobCandidates lists every candidate screened for a job, best first.
func (s *Server) handleJobCandidates(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	screened, err := s.db.JobCandidates(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"candidates": screened, "count": len(screened)})
}

// handleJobReport renders the HTML screening report for a job.
func (s *Server) handleJobReport(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	ctx := r.Context()
	job, err := s.db.GetJob(ctx, id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if job == nil {
		s.errorResponse(w, http.StatusNotFound, "Job not found")
		return
	}

	screened, err := s.db.JobCandidates(ctx, id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	ranked := make([]types.RankedCandidate, 0, len(screened))
	for _, sc := range screened {
		ranked = append(ranked, types.RankedCandidate{
			Name:            sc.Name,
			FinalScore:      sc.FinalScore,
			AllSkills:       sc.Skills,
			ExperienceYears: sc.ExperienceYears,
			Education:       sc.EducationLevel,
			Reason:          sc.Feedback,
		})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := report.WriteHTML(w, job.Title, ranked); err != nil {
		s.logger.Warn("failed to render report", zap.Error(err))
	}
}
