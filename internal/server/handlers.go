// ABOUTME: HTTP handlers for the four inquiry endpoints plus the root
// ABOUTME: Blocking handlers shape APIResponse; stream handlers emit SSE events
package server

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sable/inquiry/internal/core"
	"github.com/sable/inquiry/internal/models"
)

func (s *Server) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Inquiry System API"})
}

// handleStart begins a conversation and returns the first question
func (s *Server) handleStart(c *gin.Context) {
	var req models.StartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	res, err := s.inquirer.Start(c.Request.Context(), req.Message)
	if err != nil {
		log.Printf("start failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		ConversationID: res.ConversationID,
		Question:       res.Question,
	})
}

// handleContinue advances a conversation. Failures are reported inside
// the normal response shape, in the refined_query field, never as
// transport errors.
func (s *Server) handleContinue(c *gin.Context) {
	var req models.ContinueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	res, err := s.inquirer.Continue(c.Request.Context(), req.ConversationID, req.Answer)
	if errors.Is(err, core.ErrConversationNotFound) {
		c.JSON(http.StatusOK, models.APIResponse{RefinedQuery: "Error: Conversation not found."})
		return
	}
	if err != nil {
		log.Printf("continue failed for %s: %v", req.ConversationID, err)
		c.JSON(http.StatusOK, models.APIResponse{RefinedQuery: fmt.Sprintf("Error: %v", err)})
		return
	}

	if res.Final {
		c.JSON(http.StatusOK, models.APIResponse{RefinedQuery: res.RefinedQuery})
		return
	}
	c.JSON(http.StatusOK, models.APIResponse{
		ConversationID: res.ConversationID,
		Question:       res.Question,
	})
}

// handleStartStream begins a conversation in SSE mode
func (s *Server) handleStartStream(c *gin.Context) {
	var req models.StartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	w, err := newSSEWriter(c.Writer)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "streaming not supported"})
		return
	}

	if err := s.inquirer.StartStream(c.Request.Context(), req.Message, w.Emit); err != nil {
		// Emit failed mid-stream: the client disconnected. Nothing left
		// to send; the store was only touched by completed paths.
		log.Printf("start stream aborted: %v", err)
	}
}

// handleContinueStream advances a conversation in SSE mode. Unknown ids
// and model failures arrive as error events on the stream itself.
func (s *Server) handleContinueStream(c *gin.Context) {
	var req models.ContinueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	w, err := newSSEWriter(c.Writer)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "streaming not supported"})
		return
	}

	if err := s.inquirer.ContinueStream(c.Request.Context(), req.ConversationID, req.Answer, w.Emit); err != nil {
		log.Printf("continue stream aborted for %s: %v", req.ConversationID, err)
	}
}
