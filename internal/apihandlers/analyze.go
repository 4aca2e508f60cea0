package apihandlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AnalyzeRequest is the shared body for the /analyze endpoints. Only
// Description is required; the other fields apply where they make
// sense for the specific endpoint.
type AnalyzeRequest struct {
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	MaxTags     int      `json:"max_tags"`
	MaxPhrases  int      `json:"max_phrases"`
}

// AnalyzeTagsHandler runs the tag generator over the posted text.
func (h *APIHandler) AnalyzeTagsHandler(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}
	tags := h.App.AnalysisService.Tags(c.Request.Context(), req.Description, req.Category, req.MaxTags)
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"tags": tags}})
}

// AnalyzeCategoriesHandler ranks taxonomy categories for the text.
func (h *APIHandler) AnalyzeCategoriesHandler(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}
	cats := h.App.AnalysisService.Categories(c.Request.Context(), req.Description, req.Tags)
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"categories": cats}})
}

// AnalyzeSentimentHandler labels the text positive/negative/neutral.
func (h *APIHandler) AnalyzeSentimentHandler(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}
	label := h.App.AnalysisService.Sentiment(c.Request.Context(), req.Description)
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"sentiment": label}})
}

// AnalyzePhrasesHandler extracts frequent key phrases from the text.
func (h *APIHandler) AnalyzePhrasesHandler(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}
	phrases := h.App.AnalysisService.Phrases(c.Request.Context(), req.Description, req.MaxPhrases)
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"phrases": phrases}})
}
