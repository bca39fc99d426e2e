package repositories

import (
	"context"

	"github.com/clubhub-app/clubhub/internal/app/models"
	"github.com/clubhub-app/clubhub/internal/kvstore"
)

// Storage keys: one per logical collection, plus the scalar-valued keys
// and the one-time seed flag.
const (
	KeyUsers         = "users"
	KeyClubs         = "clubs"
	KeyClubMembers   = "clubMembers"
	KeyAnnouncements = "announcements"
	KeyMeetings      = "meetings"
	KeyEvents        = "events"
	KeyNotifications = "notifications"
	KeyGallery       = "gallery"
	KeyTestimonials  = "testimonials"
	KeyImpactStats   = "impactStats"
	KeySiteLogo      = "siteLogo"
	KeyTheme         = "theme"
	KeyThemeSettings = "themeSettings"
	KeySeedFlag      = "isUserDataSeeded_v2"
)

// Repositories is the application-state container: every collection the
// app owns, loaded once at startup and passed into services explicitly.
// Meetings holds the leader-facing club schedule; Events holds the
// campus-wide entries managed by the event manager. Both share the
// MeetingSchedule shape.
type Repositories struct {
	Users         *Collection[models.User]
	Clubs         *Collection[models.Club]
	ClubMembers   *Collection[models.ClubMember]
	Announcements *Collection[models.Announcement]
	Meetings      *Collection[models.MeetingSchedule]
	Events        *Collection[models.MeetingSchedule]
	Notifications *Collection[models.Notification]
	Gallery       *Collection[models.GalleryImage]
	Testimonials  *Collection[models.Testimonial]
	ImpactStats   *Collection[models.ImpactStat]
	Theme         *Scalar[string]
	ThemeSettings *Scalar[models.ThemeSettings]
	SiteLogo      *Scalar[models.SiteLogo]

	Store *kvstore.Store
}

// NewRepositories loads all collections from the store
func NewRepositories(ctx context.Context, store *kvstore.Store) *Repositories {
	return &Repositories{
		Users:         NewCollection[models.User](ctx, store, KeyUsers),
		Clubs:         NewCollection[models.Club](ctx, store, KeyClubs),
		ClubMembers:   NewCollection[models.ClubMember](ctx, store, KeyClubMembers),
		Announcements: NewCollection[models.Announcement](ctx, store, KeyAnnouncements),
		Meetings:      NewCollection[models.MeetingSchedule](ctx, store, KeyMeetings),
		Events:        NewCollection[models.MeetingSchedule](ctx, store, KeyEvents),
		Notifications: NewCollection[models.Notification](ctx, store, KeyNotifications),
		Gallery:       NewCollection[models.GalleryImage](ctx, store, KeyGallery),
		Testimonials:  NewCollection[models.Testimonial](ctx, store, KeyTestimonials),
		ImpactStats:   NewCollection[models.ImpactStat](ctx, store, KeyImpactStats),
		Theme:         NewScalar(ctx, store, KeyTheme, "light"),
		ThemeSettings: NewScalar(ctx, store, KeyThemeSettings, models.DefaultThemeSettings()),
		SiteLogo:      NewScalar(ctx, store, KeySiteLogo, models.SiteLogo{}),
		Store:         store,
	}
}

// UserByID finds a user by id in the current users snapshot
func (r *Repositories) UserByID(id string) (models.User, bool) {
	for _, u := range r.Users.All() {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

// UserByEmail finds a user by email in the current users snapshot
func (r *Repositories) UserByEmail(email string) (models.User, bool) {
	for _, u := range r.Users.All() {
		if u.Email == email {
			return u, true
		}
	}
	return models.User{}, false
}

// ClubByID finds a club by id in the current clubs snapshot
func (r *Repositories) ClubByID(id string) (models.Club, bool) {
	for _, c := range r.Clubs.All() {
		if c.ID == id {
			return c, true
		}
	}
	return models.Club{}, false
}
