package api

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rajcareers/jobsync/app/cfg"
	"github.com/rajcareers/jobsync/app/extract"
	"github.com/rajcareers/jobsync/app/job"
	"github.com/rajcareers/jobsync/app/sync"
)

type Handler struct {
	store     job.StoreInterface
	log       *sync.Log
	syncer    sync.SyncerInterface
	extractor sync.ExtractorInterface
}

func NewHandler(store job.StoreInterface, log *sync.Log, syncer sync.SyncerInterface,
	extractor sync.ExtractorInterface) *Handler {
	return &Handler{
		store:     store,
		log:       log,
		syncer:    syncer,
		extractor: extractor,
	}
}

func (h *Handler) GetRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service":     "JobSync",
		"version":     cfg.GetVersion(),
		"description": "Rajasthan government job-listing aggregator",
		"endpoints": map[string]string{
			"jobs":   "/jobs",
			"logs":   "/logs",
			"health": "/health",
		},
	})
}

// GetJobs serves approved postings in display order. Query filters mirror the
// dashboard tabs: content_type, level (rajasthan|center|other), state, q.
func (h *Handler) GetJobs(c *gin.Context) {
	postings := job.OrderForDisplay(h.store.Approved(), time.Now())

	contentType := c.Query("content_type")
	level := c.Query("level")
	state := c.Query("state")
	query := strings.ToLower(c.Query("q"))

	out := make([]job.Posting, 0, len(postings))
	for _, p := range postings {
		if contentType != "" && string(p.ContentType) != contentType {
			continue
		}
		if !matchesLevel(p, level, state) {
			continue
		}
		if query != "" && !matchesQuery(p, query) {
			continue
		}
		out = append(out, p)
	}

	c.JSON(http.StatusOK, gin.H{"jobs": out, "total": len(out)})
}

func matchesLevel(p job.Posting, level, state string) bool {
	jobState := strings.ToLower(p.State)

	switch level {
	case "rajasthan":
		return strings.Contains(jobState, "rajasthan")
	case "center":
		return p.IsCenterLevel
	case "other":
		if p.IsCenterLevel || strings.Contains(jobState, "rajasthan") {
			return false
		}
		return state == "" || p.State == state
	default:
		return state == "" || p.State == state
	}
}

func matchesQuery(p job.Posting, query string) bool {
	return strings.Contains(strings.ToLower(p.JobTitle), query) ||
		strings.Contains(strings.ToLower(p.Department), query) ||
		strings.Contains(strings.ToLower(p.SourceName), query)
}

func (h *Handler) GetLogs(c *gin.Context) {
	entries := h.log.Entries()
	c.JSON(http.StatusOK, gin.H{"logs": entries, "total": len(entries)})
}

func (h *Handler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
		"version":   cfg.GetVersion(),
		"postings":  h.store.Count(),
		"approved":  len(h.store.Approved()),
		"syncing":   h.syncer.Busy(),
	})
}

// APIListJobs serves every posting regardless of workflow state, optionally
// narrowed by ?status= for the moderation queue.
func (h *Handler) APIListJobs(c *gin.Context) {
	var postings []job.Posting
	switch job.Status(c.Query("status")) {
	case job.StatusPending:
		postings = h.store.Pending()
	case job.StatusApproved:
		postings = h.store.Approved()
	default:
		postings = h.store.All()
	}

	c.JSON(http.StatusOK, gin.H{"jobs": postings, "total": len(postings)})
}

type addJobRequest struct {
	RawText string `json:"raw_text" binding:"required"`
}

// APIAddJob runs admin-pasted notification text through the extraction client
// and stores the result directly as APPROVED.
func (h *Handler) APIAddJob(c *gin.Context) {
	var req addJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "raw_text is required"})
		return
	}

	result := h.extractor.Extract(c.Request.Context(), req.RawText)
	switch result.Outcome {
	case extract.OutcomeOK:
		h.store.Add(*result.Posting)
		c.JSON(http.StatusCreated, result.Posting)
	case extract.OutcomeRejected:
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Text does not describe a valid posting"})
	default:
		slog.Error("Manual extraction failed", "error", result.Err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Extraction service failure"})
	}
}

type setStatusRequest struct {
	Status job.Status `json:"status" binding:"required"`
}

func (h *Handler) APISetJobStatus(c *gin.Context) {
	id := c.Param("id")

	var req setStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}

	if req.Status != job.StatusApproved && req.Status != job.StatusRejected {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be APPROVED or REJECTED"})
		return
	}

	if !h.store.SetStatus(id, req.Status) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Posting not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id, "status": req.Status})
}

// APITriggerSync kicks off a cycle outside the schedule. A cycle already in
// flight yields 409 rather than queueing.
func (h *Handler) APITriggerSync(c *gin.Context) {
	if h.syncer.Busy() {
		c.JSON(http.StatusConflict, gin.H{"error": "Sync cycle already in progress"})
		return
	}

	go h.syncer.RunCycle(context.Background())

	c.JSON(http.StatusAccepted, gin.H{"message": "Sync cycle started"})
}
