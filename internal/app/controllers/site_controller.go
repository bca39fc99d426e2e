package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clubhub-app/clubhub/internal/app/models/dto"
	"github.com/clubhub-app/clubhub/internal/app/services"
	"github.com/clubhub-app/clubhub/internal/middleware"
)

// SiteController handles site-wide content operations
type SiteController struct {
	siteService services.SiteService
}

// NewSiteController creates a new SiteController
func NewSiteController(siteService services.SiteService) *SiteController {
	return &SiteController{siteService: siteService}
}

// --- Theme ---

// GetTheme handles retrieving the theme mode and palette
// @Summary Get theme
// @Tags site
// @Produce json
// @Success 200 {object} dto.APIResponse "Theme retrieved successfully"
// @Router /site/theme [get]
func (c *SiteController) GetTheme(ctx *gin.Context) {
	mode, settings := c.siteService.GetTheme(ctx.Request.Context())
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{
		"mode":     mode,
		"settings": settings,
	}))
}

// UpdateThemeMode handles switching the default display mode
// @Summary Update theme mode
// @Tags site
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateThemeModeRequest true "Mode"
// @Success 200 {object} dto.APIResponse "Theme mode updated"
// @Router /site/theme/mode [put]
func (c *SiteController) UpdateThemeMode(ctx *gin.Context) {
	var req dto.UpdateThemeModeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	res, err := c.siteService.SetThemeMode(ctx.Request.Context(), actorFrom(ctx), req.Mode)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, writeResponse(gin.H{"mode": req.Mode}, res))
}

// UpdateThemeSettings handles replacing the palette
// @Summary Update theme palette
// @Tags site
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateThemeSettingsRequest true "Palette"
// @Success 200 {object} dto.APIResponse "Theme palette updated"
// @Router /site/theme/settings [put]
func (c *SiteController) UpdateThemeSettings(ctx *gin.Context) {
	var req dto.UpdateThemeSettingsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	settings, res, err := c.siteService.SetThemeSettings(ctx.Request.Context(), actorFrom(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, writeResponse(settings, res))
}

// --- Logo ---

// GetLogo handles retrieving the site logo
// @Summary Get site logo
// @Tags site
// @Produce json
// @Success 200 {object} dto.APIResponse "Logo retrieved successfully"
// @Router /site/logo [get]
func (c *SiteController) GetLogo(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(c.siteService.GetLogo(ctx.Request.Context())))
}

// UpdateLogo handles replacing the site logo
// @Summary Update site logo
// @Tags site
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateLogoRequest true "Inline-encoded logo"
// @Success 200 {object} dto.APIResponse "Logo updated"
// @Router /site/logo [put]
func (c *SiteController) UpdateLogo(ctx *gin.Context) {
	var req dto.UpdateLogoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	logo, res, err := c.siteService.SetLogo(ctx.Request.Context(), actorFrom(ctx), req.Data)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, writeResponse(logo, res))
}

// --- Testimonials ---

// GetTestimonials handles retrieving landing-page testimonials
// @Summary Get testimonials
// @Tags site
// @Produce json
// @Success 200 {object} dto.APIResponse "Testimonials retrieved successfully"
// @Router /site/testimonials [get]
func (c *SiteController) GetTestimonials(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(c.siteService.ListTestimonials(ctx.Request.Context())))
}

// CreateTestimonial handles adding a testimonial
// @Summary Create testimonial
// @Tags site
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.TestimonialRequest true "Testimonial"
// @Success 201 {object} dto.APIResponse "Testimonial added"
// @Router /site/testimonials [post]
func (c *SiteController) CreateTestimonial(ctx *gin.Context) {
	var req dto.TestimonialRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	testimonial, res, err := c.siteService.AddTestimonial(ctx.Request.Context(), actorFrom(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, writeResponse(testimonial, res))
}

// DeleteTestimonial handles removing a testimonial
// @Summary Delete testimonial
// @Tags site
// @Produce json
// @Security BearerAuth
// @Param id path string true "Testimonial ID"
// @Success 200 {object} dto.APIResponse "Testimonial deleted"
// @Router /site/testimonials/{id} [delete]
func (c *SiteController) DeleteTestimonial(ctx *gin.Context) {
	res, err := c.siteService.DeleteTestimonial(ctx.Request.Context(), actorFrom(ctx), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, writeResponse(nil, res))
}

// --- Impact stats ---

// GetImpactStats handles retrieving the landing-page figures
// @Summary Get impact stats
// @Tags site
// @Produce json
// @Success 200 {object} dto.APIResponse "Impact stats retrieved successfully"
// @Router /site/impact-stats [get]
func (c *SiteController) GetImpactStats(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(c.siteService.ListImpactStats(ctx.Request.Context())))
}

// ReplaceImpactStats handles replacing the full figure list
// @Summary Replace impact stats
// @Tags site
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body []dto.ImpactStatRequest true "Figures"
// @Success 200 {object} dto.APIResponse "Impact stats replaced"
// @Router /site/impact-stats [put]
func (c *SiteController) ReplaceImpactStats(ctx *gin.Context) {
	var reqs []dto.ImpactStatRequest
	if err := ctx.ShouldBindJSON(&reqs); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	stats, res, err := c.siteService.ReplaceImpactStats(ctx.Request.Context(), actorFrom(ctx), reqs)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, writeResponse(stats, res))
}

// --- Gallery ---

// GetGallery handles retrieving the image gallery
// @Summary Get gallery
// @Tags site
// @Produce json
// @Success 200 {object} dto.APIResponse "Gallery retrieved successfully"
// @Router /site/gallery [get]
func (c *SiteController) GetGallery(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(c.siteService.ListGallery(ctx.Request.Context())))
}

// UploadGalleryImage handles adding an inline-encoded gallery image
// @Summary Upload gallery image
// @Tags site
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UploadImageRequest true "Inline-encoded image"
// @Success 201 {object} dto.APIResponse "Image added"
// @Router /site/gallery [post]
func (c *SiteController) UploadGalleryImage(ctx *gin.Context) {
	var req dto.UploadImageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	image, res, err := c.siteService.AddGalleryImage(ctx.Request.Context(), actorFrom(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, writeResponse(image, res))
}

// DeleteGalleryImage handles removing a gallery image
// @Summary Delete gallery image
// @Tags site
// @Produce json
// @Security BearerAuth
// @Param id path string true "Image ID"
// @Success 200 {object} dto.APIResponse "Image deleted"
// @Router /site/gallery/{id} [delete]
func (c *SiteController) DeleteGalleryImage(ctx *gin.Context) {
	res, err := c.siteService.DeleteGalleryImage(ctx.Request.Context(), actorFrom(ctx), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, writeResponse(nil, res))
}

// --- Notifications ---

// GetNotifications handles retrieving the broadcast notification list
// @Summary Get notifications
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse "Notifications retrieved successfully"
// @Router /notifications [get]
func (c *SiteController) GetNotifications(ctx *gin.Context) {
	items, unread := c.siteService.ListNotifications(ctx.Request.Context())
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{
		"notifications": items,
		"unreadCount":   unread,
	}))
}

// CreateNotification handles posting a broadcast notification
// @Summary Create notification
// @Tags notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateNotificationRequest true "Notification content"
// @Success 201 {object} dto.APIResponse "Notification posted"
// @Router /notifications [post]
func (c *SiteController) CreateNotification(ctx *gin.Context) {
	var req dto.CreateNotificationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	notification, res, err := c.siteService.CreateNotification(ctx.Request.Context(), actorFrom(ctx), req.Content)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, writeResponse(notification, res))
}

// MarkNotificationsRead handles flipping every unread notification
// @Summary Mark notifications read
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse "Notifications marked read"
// @Router /notifications/read [put]
func (c *SiteController) MarkNotificationsRead(ctx *gin.Context) {
	res, err := c.siteService.MarkNotificationsRead(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, writeResponse(nil, res))
}
