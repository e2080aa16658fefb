// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// json_output.go - machine-readable output for --json.

package cli

import (
	"encoding/json"
	"io"
	"time"
)

// JSONResponse is the envelope of every --json output.
type JSONResponse struct {
	// Success indicates whether the command completed successfully
	Success bool `json:"success"`

	// Data contains the command-specific response data
	Data interface{} `json:"data"`

	// Error contains the error message if Success is false, null otherwise
	Error *string `json:"error"`

	// Timestamp is the RFC3339 time the response was generated
	Timestamp string `json:"timestamp"`

	// Command is the subcommand that produced the response
	Command string `json:"command,omitempty"`
}

// NewJSONResponse creates a new successful JSON response.
func NewJSONResponse(command string, data interface{}) *JSONResponse {
	return &JSONResponse{
		Success:   true,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Command:   command,
	}
}

// NewJSONErrorResponse creates a failed response that still carries data,
// e.g. the partial results of a check.
func NewJSONErrorResponse(command string, data interface{}, err error) *JSONResponse {
	errStr := err.Error()
	return &JSONResponse{
		Success:   false,
		Data:      data,
		Error:     &errStr,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Command:   command,
	}
}

// Print writes the response as indented JSON.
func (r *JSONResponse) Print(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r)
}

// =============================================================================
// COMMAND-SPECIFIC DATA STRUCTURES
// =============================================================================

// ArgData is one parsed argument.
type ArgData struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Value string `json:"value"`
}

// ParseData is the result of resolving one definition.
type ParseData struct {
	Definition string    `json:"definition"`
	ID         int       `json:"id"`
	Command    string    `json:"command,omitempty"`
	OrigID     int       `json:"orig_id,omitempty"`
	Instance   bool      `json:"instance"`
	Args       []ArgData `json:"args,omitempty"`
	Error      string    `json:"error,omitempty"`
}

// ListEntry is one catalog command.
type ListEntry struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Args        []string `json:"args,omitempty"`
	Score       int      `json:"score,omitempty"`
}

// BindingData is one resolved shortcut.
type BindingData struct {
	Key        string `json:"key,omitempty"`
	Name       string `json:"name,omitempty"`
	Definition string `json:"definition"`
	ID         int    `json:"id"`
	Command    string `json:"command"`
}

// BrokenData is one shortcut that failed to resolve.
type BrokenData struct {
	Index      int    `json:"index"`
	Key        string `json:"key,omitempty"`
	Definition string `json:"definition"`
	Error      string `json:"error"`
}

// CheckData is the result of the check command.
type CheckData struct {
	Path     string        `json:"path"`
	Bindings []BindingData `json:"bindings"`
	Broken   []BrokenData  `json:"broken"`
}

// VersionData represents the data returned by the version command.
type VersionData struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version,omitempty"`
}
