package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/clubhub-app/clubhub/internal/app/controllers"
	"github.com/clubhub-app/clubhub/internal/app/models"
	"github.com/clubhub-app/clubhub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	clubController *controllers.ClubController,
	membershipController *controllers.MembershipController,
	eventController *controllers.EventController,
	siteController *controllers.SiteController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")

	// --- Public routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	// The directory, announcements, events and site content are readable
	// without a session; only mutations need one
	v1.GET("/clubs", clubController.GetAllClubs)
	v1.GET("/clubs/:id", clubController.GetClubByID)
	v1.GET("/clubs/:id/announcements", eventController.GetClubAnnouncements)
	v1.GET("/clubs/:id/meetings", eventController.GetClubMeetings)
	v1.GET("/announcements", eventController.GetRecentAnnouncements)
	v1.GET("/events", eventController.GetEvents)
	v1.GET("/events/calendar.ics", eventController.GetEventCalendar)

	site := v1.Group("/site")
	{
		site.GET("/theme", siteController.GetTheme)
		site.GET("/logo", siteController.GetLogo)
		site.GET("/testimonials", siteController.GetTestimonials)
		site.GET("/impact-stats", siteController.GetImpactStats)
		site.GET("/gallery", siteController.GetGallery)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.RequireAuth())
	{
		authenticated.POST("/auth/logout", authController.Logout)
		authenticated.GET("/auth/me", authController.Me)

		users := authenticated.Group("/users")
		{
			users.GET("", userController.GetAllUsers)
			users.GET("/:id", userController.GetUserByID)
			users.GET("/:id/clubs", userController.GetUserClubs)
			users.PUT("/:id", userController.UpdateProfile)

			usersAdmin := users.Group("")
			usersAdmin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
			{
				usersAdmin.PUT("/:id/role", userController.UpdateRole)
				usersAdmin.DELETE("/:id", userController.DeleteUser)
			}
		}

		clubs := authenticated.Group("/clubs")
		{
			clubs.GET("/:id/members", membershipController.GetMembers)
			clubs.POST("/:id/members", membershipController.RequestJoin)
			clubs.DELETE("/:id/members/me", membershipController.LeaveClub)

			// Approval, removal and roster export are leader operations;
			// the service re-checks the actor against the club's leader
			clubs.PUT("/:id/members/:memberId/approve", membershipController.ApproveRequest)
			clubs.PUT("/:id/members/:memberId/decline", membershipController.DeclineRequest)
			clubs.DELETE("/:id/members/:memberId", membershipController.RemoveMember)
			clubs.GET("/:id/members/export", membershipController.ExportRoster)

			clubs.POST("/:id/announcements", eventController.CreateAnnouncement)
			clubs.PUT("/:id/announcements/:announcementId", eventController.UpdateAnnouncement)
			clubs.DELETE("/:id/announcements/:announcementId", eventController.DeleteAnnouncement)

			clubs.POST("/:id/meetings", eventController.CreateMeeting)
			clubs.PUT("/:id/meetings/:meetingId", eventController.UpdateMeeting)
			clubs.DELETE("/:id/meetings/:meetingId", eventController.DeleteMeeting)

			clubs.PUT("/:id", clubController.UpdateClub)

			clubsAdmin := clubs.Group("")
			clubsAdmin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
			{
				clubsAdmin.POST("", clubController.CreateClub)
				clubsAdmin.DELETE("/:id", clubController.DeleteClub)
			}
		}

		events := authenticated.Group("/events")
		events.Use(authMiddleware.RoleRequired(models.RoleAdmin, models.RoleLeader))
		{
			events.POST("", eventController.CreateEvent)
			events.PUT("/:id", eventController.UpdateEvent)
			events.DELETE("/:id", eventController.DeleteEvent)
		}

		notifications := authenticated.Group("/notifications")
		{
			notifications.GET("", siteController.GetNotifications)
			notifications.PUT("/read", siteController.MarkNotificationsRead)

			notificationsPost := notifications.Group("")
			notificationsPost.Use(authMiddleware.RoleRequired(models.RoleAdmin, models.RoleLeader))
			{
				notificationsPost.POST("", siteController.CreateNotification)
			}
		}

		siteAuthed := authenticated.Group("/site")
		{
			gallery := siteAuthed.Group("/gallery")
			gallery.Use(authMiddleware.RoleRequired(models.RoleAdmin, models.RoleLeader))
			{
				gallery.POST("", siteController.UploadGalleryImage)
			}

			siteAdmin := siteAuthed.Group("")
			siteAdmin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
			{
				siteAdmin.PUT("/theme/mode", siteController.UpdateThemeMode)
				siteAdmin.PUT("/theme/settings", siteController.UpdateThemeSettings)
				siteAdmin.PUT("/logo", siteController.UpdateLogo)
				siteAdmin.POST("/testimonials", siteController.CreateTestimonial)
				siteAdmin.DELETE("/testimonials/:id", siteController.DeleteTestimonial)
				siteAdmin.PUT("/impact-stats", siteController.ReplaceImpactStats)
				siteAdmin.DELETE("/gallery/:id", siteController.DeleteGalleryImage)
			}
		}
	}
}
