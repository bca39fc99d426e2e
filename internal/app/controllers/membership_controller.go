package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clubhub-app/clubhub/internal/app/models"
	"github.com/clubhub-app/clubhub/internal/app/models/dto"
	"github.com/clubhub-app/clubhub/internal/app/services"
	"github.com/clubhub-app/clubhub/internal/middleware"
	"github.com/clubhub-app/clubhub/internal/pkg/export"
)

// MembershipController handles club membership operations
type MembershipController struct {
	membershipService services.MembershipService
	rosterSource      RosterSource
}

// RosterSource provides the data behind the roster export endpoint
type RosterSource interface {
	ClubWithMembers(clubID string) (models.Club, []models.ClubMember, error)
}

// NewMembershipController creates a new MembershipController
func NewMembershipController(membershipService services.MembershipService, rosterSource RosterSource) *MembershipController {
	return &MembershipController{
		membershipService: membershipService,
		rosterSource:      rosterSource,
	}
}

// GetMembers handles retrieving a club's member list with badge counts
// @Summary Get club members
// @Tags memberships
// @Produce json
// @Security BearerAuth
// @Param id path string true "Club ID"
// @Success 200 {object} dto.APIResponse{data=dto.MemberListResponse} "Members retrieved successfully"
// @Router /clubs/{id}/members [get]
func (c *MembershipController) GetMembers(ctx *gin.Context) {
	response, err := c.membershipService.ListMembers(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}

// RequestJoin handles filing a join request for the acting user
// @Summary Request to join a club
// @Tags memberships
// @Produce json
// @Security BearerAuth
// @Param id path string true "Club ID"
// @Success 201 {object} dto.APIResponse{data=dto.MemberResponse} "Join request filed"
// @Failure 409 {object} dto.ErrorResponse "Membership already exists"
// @Router /clubs/{id}/members [post]
func (c *MembershipController) RequestJoin(ctx *gin.Context) {
	member, res, err := c.membershipService.RequestJoin(ctx.Request.Context(), actorFrom(ctx), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, writeResponse(member, res))
}

// ApproveRequest handles approving a pending join request
// @Summary Approve join request
// @Tags memberships
// @Produce json
// @Security BearerAuth
// @Param id path string true "Club ID"
// @Param memberId path string true "Membership ID"
// @Success 200 {object} dto.APIResponse{data=dto.MemberResponse} "Request approved"
// @Failure 409 {object} dto.ErrorResponse "Membership is not pending"
// @Router /clubs/{id}/members/{memberId}/approve [put]
func (c *MembershipController) ApproveRequest(ctx *gin.Context) {
	member, res, err := c.membershipService.ApproveRequest(ctx.Request.Context(), actorFrom(ctx), ctx.Param("id"), ctx.Param("memberId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, writeResponse(member, res))
}

// DeclineRequest handles declining a pending join request
// @Summary Decline join request
// @Tags memberships
// @Produce json
// @Security BearerAuth
// @Param id path string true "Club ID"
// @Param memberId path string true "Membership ID"
// @Success 200 {object} dto.APIResponse "Request declined"
// @Router /clubs/{id}/members/{memberId}/decline [put]
func (c *MembershipController) DeclineRequest(ctx *gin.Context) {
	res, err := c.membershipService.DeclineRequest(ctx.Request.Context(), actorFrom(ctx), ctx.Param("id"), ctx.Param("memberId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, writeResponse(nil, res))
}

// RemoveMember handles removing a member from a club
// @Summary Remove member
// @Tags memberships
// @Produce json
// @Security BearerAuth
// @Param id path string true "Club ID"
// @Param memberId path string true "Membership ID"
// @Success 200 {object} dto.APIResponse "Member removed"
// @Router /clubs/{id}/members/{memberId} [delete]
func (c *MembershipController) RemoveMember(ctx *gin.Context) {
	res, err := c.membershipService.RemoveMember(ctx.Request.Context(), actorFrom(ctx), ctx.Param("id"), ctx.Param("memberId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, writeResponse(nil, res))
}

// LeaveClub handles the acting user leaving a club
// @Summary Leave club
// @Tags memberships
// @Produce json
// @Security BearerAuth
// @Param id path string true "Club ID"
// @Success 200 {object} dto.APIResponse "Left club"
// @Router /clubs/{id}/members/me [delete]
func (c *MembershipController) LeaveClub(ctx *gin.Context) {
	res, err := c.membershipService.LeaveClub(ctx.Request.Context(), actorFrom(ctx), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, writeResponse(nil, res))
}

// ExportRoster handles downloading a club's member roster as a workbook
// @Summary Export member roster
// @Tags memberships
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param id path string true "Club ID"
// @Success 200 {file} binary "Workbook download"
// @Router /clubs/{id}/members/export [get]
func (c *MembershipController) ExportRoster(ctx *gin.Context) {
	clubID := ctx.Param("id")

	club, members, err := c.rosterSource.ClubWithMembers(clubID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	data, err := export.MemberRoster(club, members)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	filename := fmt.Sprintf("%s-members.xlsx", club.ID)
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
