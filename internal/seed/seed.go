// Package seed populates an empty store with sample data exactly once.
// Seeding is a bootstrap, not a reset mechanism: after the flag is set a
// user who empties their collections stays with empty collections.
package seed

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/clubhub-app/clubhub/internal/app/models"
	"github.com/clubhub-app/clubhub/internal/app/repositories"
	"github.com/clubhub-app/clubhub/internal/kvstore"
	"github.com/clubhub-app/clubhub/internal/pkg/auth"
)

// Default credentials created on first run
const (
	AdminEmail    = "admin@clubhub.app"
	AdminPassword = "Admin123!"
	DemoPassword  = "Welcome1!"
)

// CreateDefaultData seeds the five core collections on first run.
// The persisted flag is checked independently of collection emptiness on
// later runs, and a set flag with empty collections is accepted as-is.
func CreateDefaultData(ctx context.Context, repos *repositories.Repositories, lgr zerolog.Logger) error {
	seeded := kvstore.Get(ctx, repos.Store, repositories.KeySeedFlag, false)
	if seeded {
		lgr.Info().Msg("Sample data already seeded, skipping")
		return nil
	}
	if repos.Users.Len() > 0 {
		lgr.Info().Msg("Users collection not empty, skipping seed")
		return nil
	}

	lgr.Info().Msg("Seeding sample data...")

	users, err := sampleUsers()
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to generate sample users")
		return err
	}
	clubs := sampleClubs(users)
	members := sampleMembers(clubs, users)
	announcements := sampleAnnouncements(clubs)
	meetings := sampleMeetings(clubs)

	var finalErr error
	for _, write := range []struct {
		key    string
		result kvstore.WriteResult
	}{
		{repositories.KeyUsers, repos.Users.Replace(ctx, users)},
		{repositories.KeyClubs, repos.Clubs.Replace(ctx, clubs)},
		{repositories.KeyClubMembers, repos.ClubMembers.Replace(ctx, members)},
		{repositories.KeyAnnouncements, repos.Announcements.Replace(ctx, announcements)},
		{repositories.KeyMeetings, repos.Meetings.Replace(ctx, meetings)},
	} {
		if !write.result.Persisted {
			lgr.Error().Err(write.result.Err).Str("key", write.key).Msg("Failed to persist seeded collection")
			finalErr = errors.Join(finalErr, write.result.Err)
		}
	}

	// Flag is written last so a crash mid-seed retries on the next start
	if res := repos.Store.Set(ctx, repositories.KeySeedFlag, true); !res.Persisted {
		lgr.Error().Err(res.Err).Msg("Failed to persist seed flag")
		finalErr = errors.Join(finalErr, res.Err)
	}

	lgr.Info().
		Int("users", len(users)).
		Int("clubs", len(clubs)).
		Int("members", len(members)).
		Msg("Sample data seeded")
	return finalErr
}

func sampleUsers() ([]models.User, error) {
	adminHash, err := auth.HashPassword(AdminPassword)
	if err != nil {
		return nil, err
	}
	demoHash, err := auth.HashPassword(DemoPassword)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := func(name, email string, role models.RoleType, hash string) models.User {
		return models.User{
			ID:        uuid.New().String(),
			Name:      name,
			Email:     email,
			Password:  hash,
			Role:      role,
			CreatedAt: now,
			UpdatedAt: now,
		}
	}

	return []models.User{
		user("Site Administrator", AdminEmail, models.RoleAdmin, adminHash),
		user("Maya Chen", "maya.chen@campus.edu", models.RoleLeader, demoHash),
		user("Arjun Patel", "arjun.patel@campus.edu", models.RoleLeader, demoHash),
		user("Sofia Reyes", "sofia.reyes@campus.edu", models.RoleLeader, demoHash),
		user("Liam O'Connor", "liam.oconnor@campus.edu", models.RoleStudent, demoHash),
		user("Aisha Bello", "aisha.bello@campus.edu", models.RoleStudent, demoHash),
		user("Tom Novak", "tom.novak@campus.edu", models.RoleStudent, demoHash),
		user("Grace Kim", "grace.kim@campus.edu", models.RoleStudent, demoHash),
	}, nil
}

func sampleClubs(users []models.User) []models.Club {
	leaders := make([]models.User, 0, 3)
	for _, u := range users {
		if u.Role == models.RoleLeader {
			leaders = append(leaders, u)
		}
	}
	if len(leaders) == 0 {
		return nil
	}

	now := time.Now()
	club := func(name, description string, category models.ClubCategory, leader models.User, recruiting bool, tags ...string) models.Club {
		return models.Club{
			ID:           uuid.New().String(),
			Name:         name,
			Description:  description,
			Category:     category,
			ContactEmail: leader.Email,
			LeaderID:     leader.ID,
			LeaderName:   leader.Name,
			LeaderAvatar: leader.Avatar,
			Recruiting:   recruiting,
			Tags:         tags,
			Schedule:     "Weekly, see meetings",
			Location:     "Student Center",
			CreatedAt:    now,
			UpdatedAt:    now,
		}
	}

	return []models.Club{
		club("Robotics Society", "Build and battle robots, from line followers to combat bots.",
			models.CategoryTechnical, leaders[0], true, "robotics", "engineering"),
		club("Drama Club", "Stage productions each semester, all experience levels welcome.",
			models.CategoryArts, leaders[1%len(leaders)], true, "theatre", "performance"),
		club("Debate Union", "Competitive parliamentary debate and public speaking practice.",
			models.CategoryAcademic, leaders[2%len(leaders)], false, "debate", "speaking"),
		club("Trail Runners", "Weekend trail runs and campus 5k training groups.",
			models.CategorySports, leaders[0], true, "running", "outdoors"),
	}
}

func sampleMembers(clubs []models.Club, users []models.User) []models.ClubMember {
	var students []models.User
	for _, u := range users {
		if u.Role == models.RoleStudent {
			students = append(students, u)
		}
	}
	if len(clubs) == 0 || len(students) == 0 {
		return nil
	}

	now := time.Now()
	member := func(club models.Club, user models.User, status models.MemberStatus) models.ClubMember {
		return models.ClubMember{
			ID:        uuid.New().String(),
			ClubID:    club.ID,
			UserID:    user.ID,
			UserName:  user.Name,
			UserEmail: user.Email,
			Status:    status,
			JoinedAt:  now,
		}
	}

	members := []models.ClubMember{
		member(clubs[0], students[0], models.MemberActive),
		member(clubs[0], students[1%len(students)], models.MemberActive),
		member(clubs[0], students[2%len(students)], models.MemberPending),
		member(clubs[1%len(clubs)], students[0], models.MemberActive),
		member(clubs[1%len(clubs)], students[3%len(students)], models.MemberPending),
	}
	return members
}

func sampleAnnouncements(clubs []models.Club) []models.Announcement {
	if len(clubs) == 0 {
		return nil
	}

	now := time.Now()
	return []models.Announcement{
		{
			ID:        uuid.New().String(),
			ClubID:    clubs[0].ID,
			Title:     "Kickoff meeting this Friday",
			Content:   "First build session of the semester. New members welcome.",
			Priority:  models.PriorityHigh,
			CreatedAt: now.Add(-48 * time.Hour),
		},
		{
			ID:        uuid.New().String(),
			ClubID:    clubs[0].ID,
			Title:     "Parts order placed",
			Content:   "Motor controllers arrive next week.",
			Priority:  models.PriorityLow,
			CreatedAt: now.Add(-24 * time.Hour),
		},
		{
			ID:        uuid.New().String(),
			ClubID:    clubs[1%len(clubs)].ID,
			Title:     "Auditions announced",
			Content:   "Spring production auditions open to all students.",
			Priority:  models.PriorityMedium,
			CreatedAt: now.Add(-12 * time.Hour),
		},
	}
}

func sampleMeetings(clubs []models.Club) []models.MeetingSchedule {
	if len(clubs) == 0 {
		return nil
	}

	now := time.Now()
	return []models.MeetingSchedule{
		{
			ID:        uuid.New().String(),
			ClubID:    clubs[0].ID,
			Title:     "Weekly build night",
			Date:      now.AddDate(0, 0, 3).Format(models.DateLayout),
			Time:      "18:00",
			Location:  "Engineering Lab 2",
			Type:      models.TypeMeeting,
			CreatedAt: now,
		},
		{
			ID:           uuid.New().String(),
			ClubID:       clubs[1%len(clubs)].ID,
			Title:        "Spring auditions",
			Description:  "Prepare a two-minute monologue.",
			Date:         now.AddDate(0, 0, 10).Format(models.DateLayout),
			Time:         "17:30",
			Location:     "Auditorium",
			Type:         models.TypeAudition,
			HostingClub:  clubs[1%len(clubs)].Name,
			AuditionInfo: "Sign-up sheet at the door",
			CreatedAt:    now,
		},
		{
			ID:        uuid.New().String(),
			ClubID:    clubs[0].ID,
			Title:     "Intro to soldering workshop",
			Date:      now.AddDate(0, 0, 14).Format(models.DateLayout),
			Time:      "16:00",
			Location:  "Engineering Lab 2",
			Type:      models.TypeWorkshop,
			CreatedAt: now,
		},
	}
}
