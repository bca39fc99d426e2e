package dto

import (
	"math"
	"time"
)

// APIResponse is the standard success envelope. Warning is set on
// mutations whose in-memory state advanced but whose durable write
// failed.
type APIResponse struct {
	Success   bool                `json:"success" example:"true"`
	Message   string              `json:"message,omitempty"`
	Data      interface{}         `json:"data,omitempty"`
	Warning   *PersistenceWarning `json:"warning,omitempty"`
	Timestamp time.Time           `json:"timestamp"`
}

// NewSuccessResponse wraps data in the standard envelope
func NewSuccessResponse(data interface{}) APIResponse {
	return APIResponse{
		Success:   true,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// NewMessageResponse wraps a bare status message in the standard envelope
func NewMessageResponse(message string) APIResponse {
	return APIResponse{
		Success:   true,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// NewWriteResponse wraps a mutation result, attaching a persistence
// warning when the durable write did not go through
func NewWriteResponse(data interface{}, persisted bool, reason string) APIResponse {
	resp := NewSuccessResponse(data)
	if !persisted {
		resp.Warning = &PersistenceWarning{Persisted: false, Reason: reason}
	}
	return resp
}

// PersistenceWarning is attached to write responses when the in-memory
// state advanced but the durable write failed (quota or IO), so clients
// can stop claiming "saved" on a write that was not.
type PersistenceWarning struct {
	Persisted bool   `json:"persisted"`
	Reason    string `json:"reason,omitempty"`
}

// PaginationInfo represents pagination metadata
type PaginationInfo struct {
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
	PageSize    int `json:"pageSize"`
	TotalItems  int `json:"totalItems"`
}

// NewPaginationInfo computes pagination metadata for a 1-based page
func NewPaginationInfo(totalItems, page, size int) PaginationInfo {
	if size <= 0 {
		size = 10
	}
	if page < 1 {
		page = 1
	}

	totalPages := 0
	if totalItems > 0 {
		totalPages = int(math.Ceil(float64(totalItems) / float64(size)))
	} else if page == 1 {
		totalPages = 1
	}

	currentPage := page
	if totalPages > 0 && currentPage > totalPages {
		currentPage = totalPages
	}

	return PaginationInfo{
		CurrentPage: currentPage,
		TotalPages:  totalPages,
		PageSize:    size,
		TotalItems:  totalItems,
	}
}
