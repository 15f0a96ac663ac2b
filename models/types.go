// Package models contain needed models
package models

// CipherRequest represents a request to encrypt or decrypt text
type CipherRequest struct {
	Key  string `json:"key"`
	Text string `json:"text"`
	Mode string `json:"mode" binding:"omitempty,oneof=merge-j-into-i drop-q"`
}

// CipherResponse represents the response after a cipher operation
type CipherResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Result    string `json:"result"`
	Formatted string `json:"formatted,omitempty"`
	Digraphs  int    `json:"digraphs"`
}

// GridRequest represents a request for the key square of a key
type GridRequest struct {
	Key  string `json:"key"`
	Mode string `json:"mode" binding:"omitempty,oneof=merge-j-into-i drop-q"`
}

// GridResponse represents the response carrying the five grid rows
type GridResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Rows    []string `json:"rows,omitempty"`
}

// CipherConfig represents a validated cipher operation
type CipherConfig struct {
	Key     string
	Mode    string
	Encrypt bool
}
