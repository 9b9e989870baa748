package store

import (
	"errors"
	"log/slog"

	"mentorhub-chat/auth"
	"mentorhub-chat/models"
)

// Demo accounts with a well-known shared password. This is a
// development convenience for the demo deployment, not a security
// recommendation: real deployments must provision credentials out of
// band.
var demoUsers = []string{"remo", "juliet"}

const demoPassword = "1234"

// SeedUsers makes sure the demo accounts exist. Existing users are
// left untouched.
func SeedUsers(s Store) error {
	for _, username := range demoUsers {
		if _, err := s.FindUser(username); err == nil {
			continue
		} else if !errors.Is(err, ErrNotFound) {
			return err
		}

		hash, err := auth.HashPassword(demoPassword)
		if err != nil {
			return err
		}

		if _, err := s.CreateUser(username, hash); err != nil && !errors.Is(err, ErrConflict) {
			return err
		}
		slog.Info("demo user ready", "username", username)
	}
	return nil
}

// SeedDashboard installs the widget aggregate once, when none exists.
func SeedDashboard(s Store) error {
	if _, err := s.Dashboard(); err == nil {
		return nil
	} else if !errors.Is(err, ErrNotFound) {
		return err
	}

	return s.SaveDashboard(models.Dashboard{
		Summary: models.Summary{
			RunningScore: 65,
			RunningTotal: 100,
			MeterPercent: 45,
		},
		Activity: models.Activity{
			Points: []int{60, 70, 40, 65, 30, 55, 45, 50},
			Range:  "This Week",
		},
		Mentors: []models.Mentor{
			{
				Name:   "Curious George",
				Role:   "UI/UX Design",
				Avatar: "https://i.pravatar.cc/64?img=12",
				Tasks:  40,
				Rating: 4.7,
			},
			{
				Name:     "Abraham Lincoln",
				Role:     "3D Design",
				Avatar:   "https://i.pravatar.cc/64?img=31",
				Tasks:    32,
				Rating:   4.9,
				Followed: true,
			},
			{
				Name:   "Ada Lovelace",
				Role:   "Backend Engineer",
				Avatar: "https://i.pravatar.cc/64?img=45",
				Tasks:  28,
				Rating: 4.8,
			},
			{
				Name:     "Grace Hopper",
				Role:     "Computer Scientist",
				Avatar:   "https://i.pravatar.cc/64?img=7",
				Tasks:    50,
				Rating:   5.0,
				Followed: true,
			},
		},
		UpcomingTasks: []models.Task{
			{
				Title:    "Creating Mobile App Design",
				Role:     "UI/UX Design",
				Progress: 75,
				Image:    "https://images.unsplash.com/photo-1556157382-97eda2d62296?q=80&w=600&auto=format&fit=crop",
				Participants: []string{
					"https://i.pravatar.cc/28?img=21",
					"https://i.pravatar.cc/28?img=22",
					"https://i.pravatar.cc/28?img=23",
				},
				Type: models.TaskTypeUpcoming,
			},
			{
				Title:    "Creating Perfect Website",
				Role:     "Web Developer",
				Progress: 85,
				Image:    "https://images.unsplash.com/photo-1484417894907-623942c8ee29?q=80&w=600&auto=format&fit=crop",
				Participants: []string{
					"https://i.pravatar.cc/28?img=21",
					"https://i.pravatar.cc/28?img=24",
				},
				Type: models.TaskTypeUpcoming,
			},
			{
				Title:    "Implement Realtime Chat",
				Role:     "Full-stack",
				Progress: 60,
				Image:    "https://images.unsplash.com/photo-1518779578993-ec3579fee39f?q=80&w=800&auto=format&fit=crop",
				Participants: []string{
					"https://i.pravatar.cc/28?img=28",
					"https://i.pravatar.cc/28?img=29",
				},
				Type: models.TaskTypeUpcoming,
			},
		},
		TodayTask: &models.Task{
			Title:    "Creating Awesome Mobile Apps",
			Role:     "UI / UX Designer",
			Progress: 90,
			Duration: "1 Hour",
			Image:    "https://images.unsplash.com/photo-1558655146-9f40138edfeb?q=80&w=800&auto=format&fit=crop",
			Participants: []string{
				"https://i.pravatar.cc/28?img=11",
				"https://i.pravatar.cc/28?img=12",
				"https://i.pravatar.cc/28?img=13",
			},
			DetailItems: []string{
				"Understanding the tools in Figma",
				"Understand the basics of making designs",
				"Design a mobile application with figma",
			},
			Type: models.TaskTypeToday,
		},
		Calendar: models.Calendar{
			MonthLabel: "July 2022",
			Days:       []int{10, 11, 12, 13, 14, 15, 16},
			ActiveDay:  14,
		},
	})
}
