// Package controllers holds the HTTP handlers. Controllers bind and
// validate requests, delegate to services and translate outcomes into
// the standard response envelopes; mutations additionally surface the
// storage write outcome as a persistence warning.
package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/clubhub-app/clubhub/internal/app/models"
	"github.com/clubhub-app/clubhub/internal/app/models/dto"
	"github.com/clubhub-app/clubhub/internal/app/services"
	"github.com/clubhub-app/clubhub/internal/kvstore"
	"github.com/clubhub-app/clubhub/internal/middleware"
)

// actorFrom rebuilds the acting identity stored by the auth middleware
func actorFrom(ctx *gin.Context) services.Actor {
	return services.Actor{
		ID:   ctx.GetString(middleware.ContextUserID),
		Role: models.RoleType(ctx.GetString(middleware.ContextUserRole)),
	}
}

// writeResponse wraps a mutation result, converting the write outcome
// into an attached persistence warning
func writeResponse(data interface{}, res kvstore.WriteResult) dto.APIResponse {
	reason := ""
	if res.Err != nil {
		reason = res.Err.Error()
	}
	return dto.NewWriteResponse(data, res.Persisted, reason)
}
