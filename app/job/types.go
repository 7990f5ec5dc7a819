package job

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

type ContentType string

const (
	ContentTypeJob       ContentType = "JOB"
	ContentTypeResult    ContentType = "RESULT"
	ContentTypeAdmitCard ContentType = "ADMIT_CARD"
	ContentTypeAdmission ContentType = "ADMISSION"
	ContentTypeNews      ContentType = "NEWS"
)

// Posting is one normalized recruitment/result/admit-card/admission notice.
// Date fields are kept as strings as delivered by extraction; they may be
// malformed or the "N/A" sentinel. TotalPosts 0 means unknown.
type Posting struct {
	ID                 string      `json:"id"`
	JobTitle           string      `json:"job_title"`
	Department         string      `json:"department"`
	PostName           string      `json:"post_name"`
	Qualification      string      `json:"qualification"`
	AgeLimit           string      `json:"age_limit"`
	TotalPosts         int         `json:"total_posts"`
	StartDate          string      `json:"start_date"`
	LastDate           string      `json:"last_date"`
	ApplyLink          string      `json:"apply_link"`
	NotificationPDFURL string      `json:"notification_pdf_url"`
	State              string      `json:"state"`
	Category           string      `json:"category"`
	Status             Status      `json:"status"`
	CreatedAt          string      `json:"created_at"`
	IsCenterLevel      bool        `json:"is_center_level"`
	IsAuthenticBoard   bool        `json:"is_authentic_board"`
	SourceName         string      `json:"source_name"`
	EligibilityDetails string      `json:"eligibility_details"`
	HowToApplySteps    []string    `json:"how_to_apply_steps"`
	ContentType        ContentType `json:"content_type"`
}
