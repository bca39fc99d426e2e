package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clubhub-app/clubhub/internal/app/models/dto"
	"github.com/clubhub-app/clubhub/internal/app/services"
	"github.com/clubhub-app/clubhub/internal/middleware"
)

// ClubController handles club directory operations
type ClubController struct {
	clubService services.ClubService
}

// NewClubController creates a new ClubController
func NewClubController(clubService services.ClubService) *ClubController {
	return &ClubController{clubService: clubService}
}

// GetAllClubs handles retrieving the club directory with filters
// @Summary Get all clubs
// @Description Retrieves the club directory with optional category, recruiting and search filters
// @Tags clubs
// @Produce json
// @Param category query string false "Filter by category"
// @Param recruiting query bool false "Filter by recruiting state"
// @Param search query string false "Search in name and description"
// @Param page query int false "Page number (1-based)" default(1)
// @Param pageSize query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.ClubListResponse} "Clubs retrieved successfully"
// @Router /clubs [get]
func (c *ClubController) GetAllClubs(ctx *gin.Context) {
	var req dto.ClubFilterRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	response, err := c.clubService.ListClubs(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}

// GetClubByID handles retrieving a specific club
// @Summary Get club by ID
// @Tags clubs
// @Produce json
// @Param id path string true "Club ID"
// @Success 200 {object} dto.APIResponse{data=dto.ClubResponse} "Club retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Club not found"
// @Router /clubs/{id} [get]
func (c *ClubController) GetClubByID(ctx *gin.Context) {
	club, err := c.clubService.GetClub(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(club))
}

// CreateClub handles admin-only club registration
// @Summary Create club
// @Tags clubs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateClubRequest true "Club data"
// @Success 201 {object} dto.APIResponse{data=dto.ClubResponse} "Club created"
// @Failure 409 {object} dto.ErrorResponse "Club name already exists"
// @Router /clubs [post]
func (c *ClubController) CreateClub(ctx *gin.Context) {
	var req dto.CreateClubRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	club, res, err := c.clubService.CreateClub(ctx.Request.Context(), actorFrom(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, writeResponse(club, res))
}

// UpdateClub handles partial club edits by the leader or an admin
// @Summary Update club
// @Tags clubs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Club ID"
// @Param request body dto.UpdateClubRequest true "Club fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.ClubResponse} "Club updated"
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Router /clubs/{id} [put]
func (c *ClubController) UpdateClub(ctx *gin.Context) {
	var req dto.UpdateClubRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	club, res, err := c.clubService.UpdateClub(ctx.Request.Context(), actorFrom(ctx), ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, writeResponse(club, res))
}

// DeleteClub handles admin-only club removal
// @Summary Delete club
// @Description Removes the club record only; related rows are dropped by the views that join through the club
// @Tags clubs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Club ID"
// @Success 200 {object} dto.APIResponse "Club deleted"
// @Router /clubs/{id} [delete]
func (c *ClubController) DeleteClub(ctx *gin.Context) {
	res, err := c.clubService.DeleteClub(ctx.Request.Context(), actorFrom(ctx), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, writeResponse(nil, res))
}
