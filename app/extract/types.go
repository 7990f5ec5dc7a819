package extract

import (
	"github.com/rajcareers/jobsync/app/job"
)

// Outcome tags the three ways an extraction call can resolve. Callers must
// handle all of them: a valid posting, a definitive "not a posting" signal
// from the model, or a malformed exchange.
type Outcome int

const (
	OutcomeOK Outcome = iota
	OutcomeRejected
	OutcomeMalformed
)

type Result struct {
	Outcome Outcome
	Posting *job.Posting // set when Outcome is OutcomeOK
	Err     error        // set when Outcome is OutcomeMalformed
}

func ok(p *job.Posting) Result {
	return Result{Outcome: OutcomeOK, Posting: p}
}

func rejected() Result {
	return Result{Outcome: OutcomeRejected}
}

func malformed(err error) Result {
	return Result{Outcome: OutcomeMalformed, Err: err}
}

// payload mirrors the structured response schema the model is instructed to
// fill. Every field is required by the schema; is_valid false means the input
// text was not a genuine posting.
type payload struct {
	JobTitle           string   `json:"job_title"`
	Department         string   `json:"department"`
	PostName           string   `json:"post_name"`
	Qualification      string   `json:"qualification"`
	AgeLimit           string   `json:"age_limit"`
	TotalPosts         int      `json:"total_posts"`
	StartDate          string   `json:"start_date"`
	LastDate           string   `json:"last_date"`
	ApplyLink          string   `json:"apply_link"`
	Category           string   `json:"category"`
	IsCenterLevel      bool     `json:"is_center_level"`
	State              string   `json:"state"`
	SourceName         string   `json:"source_name"`
	IsAuthenticBoard   bool     `json:"is_authentic_board"`
	EligibilityDetails string   `json:"eligibility_details"`
	HowToApplySteps    []string `json:"how_to_apply_steps"`
	ContentType        string   `json:"content_type"`
	IsValid            bool     `json:"is_valid"`
}
