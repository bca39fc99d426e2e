package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/clubhub-app/clubhub/internal/app/models/dto"
	"github.com/clubhub-app/clubhub/internal/app/services"
	"github.com/clubhub-app/clubhub/internal/middleware"
	"github.com/clubhub-app/clubhub/internal/pkg/export"
)

// EventController handles announcements, club meetings and the
// campus-wide events list
type EventController struct {
	announcementService services.AnnouncementService
	eventService        services.EventService
}

// NewEventController creates a new EventController
func NewEventController(announcementService services.AnnouncementService, eventService services.EventService) *EventController {
	return &EventController{
		announcementService: announcementService,
		eventService:        eventService,
	}
}

func limitParam(ctx *gin.Context) int {
	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", "0"))
	if err != nil || limit < 0 {
		limit = 0
	}
	return limit
}

// --- Announcements ---

// GetClubAnnouncements handles retrieving a club's announcements
// @Summary Get club announcements
// @Tags announcements
// @Produce json
// @Param id path string true "Club ID"
// @Success 200 {object} dto.APIResponse "Announcements retrieved successfully"
// @Router /clubs/{id}/announcements [get]
func (c *EventController) GetClubAnnouncements(ctx *gin.Context) {
	announcements, err := c.announcementService.ListForClub(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(announcements))
}

// GetRecentAnnouncements handles the cross-club recent announcement feed
// @Summary Get recent announcements
// @Tags announcements
// @Produce json
// @Param limit query int false "Maximum entries, 0 for no cap" default(0)
// @Success 200 {object} dto.APIResponse "Announcements retrieved successfully"
// @Router /announcements [get]
func (c *EventController) GetRecentAnnouncements(ctx *gin.Context) {
	announcements := c.announcementService.ListRecent(ctx.Request.Context(), limitParam(ctx))
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(announcements))
}

// CreateAnnouncement handles posting a club announcement
// @Summary Create announcement
// @Tags announcements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Club ID"
// @Param request body dto.CreateAnnouncementRequest true "Announcement data"
// @Success 201 {object} dto.APIResponse "Announcement posted"
// @Router /clubs/{id}/announcements [post]
func (c *EventController) CreateAnnouncement(ctx *gin.Context) {
	var req dto.CreateAnnouncementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	announcement, res, err := c.announcementService.Create(ctx.Request.Context(), actorFrom(ctx), ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, writeResponse(announcement, res))
}

// UpdateAnnouncement handles editing an announcement in place
// @Summary Update announcement
// @Tags announcements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Club ID"
// @Param announcementId path string true "Announcement ID"
// @Param request body dto.UpdateAnnouncementRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse "Announcement updated"
// @Router /clubs/{id}/announcements/{announcementId} [put]
func (c *EventController) UpdateAnnouncement(ctx *gin.Context) {
	var req dto.UpdateAnnouncementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	announcement, res, err := c.announcementService.Update(ctx.Request.Context(), actorFrom(ctx), ctx.Param("id"), ctx.Param("announcementId"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, writeResponse(announcement, res))
}

// DeleteAnnouncement handles removing an announcement
// @Summary Delete announcement
// @Tags announcements
// @Produce json
// @Security BearerAuth
// @Param id path string true "Club ID"
// @Param announcementId path string true "Announcement ID"
// @Success 200 {object} dto.APIResponse "Announcement deleted"
// @Router /clubs/{id}/announcements/{announcementId} [delete]
func (c *EventController) DeleteAnnouncement(ctx *gin.Context) {
	res, err := c.announcementService.Delete(ctx.Request.Context(), actorFrom(ctx), ctx.Param("id"), ctx.Param("announcementId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, writeResponse(nil, res))
}

// --- Club meetings ---

// GetClubMeetings handles retrieving a club's schedule entries
// @Summary Get club meetings
// @Tags meetings
// @Produce json
// @Param id path string true "Club ID"
// @Param upcoming query bool false "Only entries dated today or later, soonest first"
// @Param limit query int false "Maximum entries, 0 for no cap" default(0)
// @Success 200 {object} dto.APIResponse "Meetings retrieved successfully"
// @Router /clubs/{id}/meetings [get]
func (c *EventController) GetClubMeetings(ctx *gin.Context) {
	clubID := ctx.Param("id")

	if ctx.Query("upcoming") == "true" {
		meetings, err := c.eventService.UpcomingMeetingsForClub(ctx.Request.Context(), clubID, limitParam(ctx))
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.NewSuccessResponse(meetings))
		return
	}

	meetings, err := c.eventService.ListMeetingsForClub(ctx.Request.Context(), clubID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(meetings))
}

// CreateMeeting handles scheduling a club meeting
// @Summary Create meeting
// @Tags meetings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Club ID"
// @Param request body dto.CreateMeetingRequest true "Meeting data"
// @Success 201 {object} dto.APIResponse "Meeting scheduled"
// @Failure 400 {object} dto.ErrorResponse "Invalid date or type"
// @Router /clubs/{id}/meetings [post]
func (c *EventController) CreateMeeting(ctx *gin.Context) {
	var req dto.CreateMeetingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	meeting, res, err := c.eventService.CreateMeeting(ctx.Request.Context(), actorFrom(ctx), ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, writeResponse(meeting, res))
}

// UpdateMeeting handles editing a schedule entry in place
// @Summary Update meeting
// @Tags meetings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Club ID"
// @Param meetingId path string true "Meeting ID"
// @Param request body dto.UpdateMeetingRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse "Meeting updated"
// @Router /clubs/{id}/meetings/{meetingId} [put]
func (c *EventController) UpdateMeeting(ctx *gin.Context) {
	var req dto.UpdateMeetingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	meeting, res, err := c.eventService.UpdateMeeting(ctx.Request.Context(), actorFrom(ctx), ctx.Param("id"), ctx.Param("meetingId"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, writeResponse(meeting, res))
}

// DeleteMeeting handles removing a schedule entry
// @Summary Delete meeting
// @Tags meetings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Club ID"
// @Param meetingId path string true "Meeting ID"
// @Success 200 {object} dto.APIResponse "Meeting deleted"
// @Router /clubs/{id}/meetings/{meetingId} [delete]
func (c *EventController) DeleteMeeting(ctx *gin.Context) {
	res, err := c.eventService.DeleteMeeting(ctx.Request.Context(), actorFrom(ctx), ctx.Param("id"), ctx.Param("meetingId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, writeResponse(nil, res))
}

// --- Campus-wide events ---

// GetEvents handles retrieving the campus-wide events list
// @Summary Get events
// @Tags events
// @Produce json
// @Param upcoming query bool false "Only entries dated today or later, soonest first"
// @Param limit query int false "Maximum entries, 0 for no cap" default(0)
// @Success 200 {object} dto.APIResponse "Events retrieved successfully"
// @Router /events [get]
func (c *EventController) GetEvents(ctx *gin.Context) {
	if ctx.Query("upcoming") == "true" {
		ctx.JSON(http.StatusOK, dto.NewSuccessResponse(c.eventService.UpcomingEvents(ctx.Request.Context(), limitParam(ctx))))
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(c.eventService.ListEvents(ctx.Request.Context())))
}

// GetEventCalendar handles the iCal feed of upcoming events
// @Summary Export event calendar
// @Tags events
// @Produce text/calendar
// @Success 200 {string} string "iCal feed"
// @Router /events/calendar.ics [get]
func (c *EventController) GetEventCalendar(ctx *gin.Context) {
	upcoming := c.eventService.UpcomingEvents(ctx.Request.Context(), 0)
	feed := export.EventCalendar(upcoming)

	ctx.Header("Content-Disposition", `attachment; filename="events.ics"`)
	ctx.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(feed))
}

// CreateEvent handles publishing a campus-wide event
// @Summary Create event
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateMeetingRequest true "Event data"
// @Success 201 {object} dto.APIResponse "Event published"
// @Router /events [post]
func (c *EventController) CreateEvent(ctx *gin.Context) {
	var req dto.CreateMeetingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	event, res, err := c.eventService.CreateEvent(ctx.Request.Context(), actorFrom(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, writeResponse(event, res))
}

// UpdateEvent handles editing a campus-wide event in place
// @Summary Update event
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param request body dto.UpdateMeetingRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse "Event updated"
// @Router /events/{id} [put]
func (c *EventController) UpdateEvent(ctx *gin.Context) {
	var req dto.UpdateMeetingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	event, res, err := c.eventService.UpdateEvent(ctx.Request.Context(), actorFrom(ctx), ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, writeResponse(event, res))
}

// DeleteEvent handles removing a campus-wide event
// @Summary Delete event
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} dto.APIResponse "Event deleted"
// @Router /events/{id} [delete]
func (c *EventController) DeleteEvent(ctx *gin.Context) {
	res, err := c.eventService.DeleteEvent(ctx.Request.Context(), actorFrom(ctx), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, writeResponse(nil, res))
}
