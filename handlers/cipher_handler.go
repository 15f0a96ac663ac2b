// Package handlers is made to handle requests
package handlers

import (
	"fmt"
	"net/http"
	"playfair-backend/models"
	"playfair-backend/playfair"
	"strconv"

	"github.com/gin-gonic/gin"
)

type CipherHandler struct{}

func NewCipherHandler() *CipherHandler {
	return &CipherHandler{}
}

func (h *CipherHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Playfair cipher API is running",
		"version": "1.0.0",
	})
}

func (h *CipherHandler) EncryptText(c *gin.Context) {
	h.runCipher(c, true)
}

func (h *CipherHandler) DecryptText(c *gin.Context) {
	h.runCipher(c, false)
}

func (h *CipherHandler) runCipher(c *gin.Context, encrypt bool) {
	var req models.CipherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.CipherResponse{
			Success: false,
			Message: fmt.Sprintf("Invalid request: %v", err),
		})
		return
	}

	mode, err := resolveMode(req.Mode)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.CipherResponse{
			Success: false,
			Message: fmt.Sprintf("Invalid mode: %v", err),
		})
		return
	}

	config := &models.CipherConfig{
		Key:     req.Key,
		Mode:    mode.String(),
		Encrypt: encrypt,
	}

	result := playfair.Process(config.Key, req.Text, mode, config.Encrypt)

	operation := "decrypted"
	if encrypt {
		operation = "encrypted"
	}

	// Operation metadata travels in headers so clients streaming the body
	// can still see it
	c.Header("X-Cipher-Mode", mode.String())
	c.Header("X-Cipher-Digraphs", strconv.Itoa(len(result)/2))

	c.JSON(http.StatusOK, models.CipherResponse{
		Success:   true,
		Message:   fmt.Sprintf("Text %s successfully", operation),
		Result:    string(result),
		Formatted: playfair.FormatDigraphs(result),
		Digraphs:  len(result) / 2,
	})
}

func (h *CipherHandler) BuildGrid(c *gin.Context) {
	var req models.GridRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.GridResponse{
			Success: false,
			Message: fmt.Sprintf("Invalid request: %v", err),
		})
		return
	}

	mode, err := resolveMode(req.Mode)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.GridResponse{
			Success: false,
			Message: fmt.Sprintf("Invalid mode: %v", err),
		})
		return
	}

	grid := playfair.BuildGrid(req.Key, mode)

	c.Header("X-Cipher-Mode", mode.String())

	c.JSON(http.StatusOK, models.GridResponse{
		Success: true,
		Message: "Key square built successfully",
		Rows:    grid.Rows(),
	})
}

// resolveMode maps the wire mode to a ReductionMode, defaulting to
// merge-j-into-i when the field was omitted.
func resolveMode(s string) (playfair.ReductionMode, error) {
	if s == "" {
		return playfair.MergeJIntoI, nil
	}
	return playfair.ParseReductionMode(s)
}
