package extract

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rajcareers/jobsync/app/job"
)

const promptInstructions = `You are an expert Government Recruitment Automation Architect.
Analyze the following notification text (often from RajasthanCareers.in or official boards) and extract highly accurate JSON data.

AUTHENTICITY RULES:
1. SOURCE IDENTIFICATION: Search for boards like "RPSC", "RSMSSB", "Rajasthan Police", "UPSC", "SSC", "IBPS".
2. RAJASTHAN FOCUS: If the notification is from RajasthanCareers.in, it is likely a Rajasthan or Central job relevant to Rajasthan candidates.
3. CATEGORY: Strictly classify as "JOB", "RESULT", "ADMIT_CARD", or "ADMISSION".
4. STATE: Correctly identify the State. Use "Central" for Union Govt jobs.
5. VACANCIES: Extract the total number of posts if available.

Input Text: `

// Client calls the Gemini generateContent endpoint to turn raw feed text into
// a structured posting. No retries: a failed call for an entry is simply lost
// for the cycle.
type Client struct {
	httpClient *http.Client
	baseURL    string
	model      string
	apiKey     string
	userAgent  string
}

func NewClient(httpClient *http.Client, baseURL, model, apiKey, userAgent string) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		model:      model,
		apiKey:     apiKey,
		userAgent:  userAgent,
	}
}

// Extract sends rawText to the model and resolves the exchange into a tagged
// Result. On success the posting carries a fresh identifier, APPROVED status,
// the current timestamp, and a notification URL defaulted to the apply link.
func (c *Client) Extract(ctx context.Context, rawText string) Result {
	text, err := c.generateContent(ctx, promptInstructions+rawText)
	if err != nil {
		return malformed(err)
	}

	text = strings.TrimSpace(text)
	if text == "" || text == "{}" {
		return rejected()
	}

	var data payload
	if err := json.Unmarshal([]byte(text), &data); err != nil {
		return malformed(fmt.Errorf("failed to decode extraction payload: %w", err))
	}

	if !data.IsValid {
		return rejected()
	}

	return ok(c.toPosting(data))
}

func (c *Client) toPosting(data payload) *job.Posting {
	notificationURL := data.ApplyLink
	if notificationURL == "" {
		notificationURL = "#"
	}

	return &job.Posting{
		ID:                 "auto-" + uuid.NewString(),
		JobTitle:           data.JobTitle,
		Department:         data.Department,
		PostName:           data.PostName,
		Qualification:      data.Qualification,
		AgeLimit:           data.AgeLimit,
		TotalPosts:         data.TotalPosts,
		StartDate:          data.StartDate,
		LastDate:           data.LastDate,
		ApplyLink:          data.ApplyLink,
		NotificationPDFURL: notificationURL,
		State:              data.State,
		Category:           data.Category,
		Status:             job.StatusApproved,
		CreatedAt:          time.Now().Format(time.RFC3339),
		IsCenterLevel:      data.IsCenterLevel,
		IsAuthenticBoard:   data.IsAuthenticBoard,
		SourceName:         data.SourceName,
		EligibilityDetails: data.EligibilityDetails,
		HowToApplySteps:    data.HowToApplySteps,
		ContentType:        job.ContentType(data.ContentType),
	}
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMimeType string          `json:"responseMimeType"`
	ResponseSchema   json.RawMessage `json:"responseSchema"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// responseSchema constrains the model to the posting payload shape. Kept as
// raw JSON: it is wire format, not application data.
var responseSchema = json.RawMessage(`{
  "type": "OBJECT",
  "properties": {
    "job_title": {"type": "STRING"},
    "department": {"type": "STRING"},
    "post_name": {"type": "STRING"},
    "qualification": {"type": "STRING"},
    "age_limit": {"type": "STRING"},
    "total_posts": {"type": "NUMBER"},
    "start_date": {"type": "STRING"},
    "last_date": {"type": "STRING"},
    "apply_link": {"type": "STRING"},
    "category": {"type": "STRING"},
    "is_center_level": {"type": "BOOLEAN"},
    "state": {"type": "STRING"},
    "source_name": {"type": "STRING"},
    "is_authentic_board": {"type": "BOOLEAN"},
    "eligibility_details": {"type": "STRING"},
    "how_to_apply_steps": {"type": "ARRAY", "items": {"type": "STRING"}},
    "content_type": {"type": "STRING", "enum": ["JOB", "RESULT", "ADMIT_CARD", "ADMISSION", "NEWS"]},
    "is_valid": {"type": "BOOLEAN"}
  },
  "required": ["job_title", "department", "post_name", "qualification", "age_limit", "total_posts", "start_date", "last_date", "apply_link", "category", "is_center_level", "state", "source_name", "is_authentic_board", "eligibility_details", "how_to_apply_steps", "content_type", "is_valid"]
}`)

func (c *Client) generateContent(ctx context.Context, prompt string) (string, error) {
	reqBody := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   responseSchema,
		},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call extraction service: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("extraction service HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	var parsed generateResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}

	return parsed.Candidates[0].Content.Parts[0].Text, nil
}
