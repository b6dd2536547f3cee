// Package seed loads the demo session fixture: four users with the
// local viewer flagged, three groups with short message histories and
// the matching unread summaries.
package seed

import (
	"time"

	"chat-sim/internal/models"
	"chat-sim/internal/store"
)

const avatar = "/placeholder.svg?height=40&width=40"

// ActiveGroupID is the group selected at session start.
const ActiveGroupID = "group1"

// Apply bootstraps the store with the demo fixture, timestamped relative
// to now.
func Apply(st *store.Store, now time.Time) {
	users := Users()
	st.Bootstrap(users, Groups(now), Summaries(now), ActiveGroupID)
}

// Users returns the demo user fixture. User "1" is the local viewer.
func Users() []models.User {
	return []models.User{
		{
			ID:            "1",
			Name:          "You",
			Email:         "you@example.com",
			Phone:         "+1 (555) 123-4567",
			Avatar:        avatar,
			IsCurrentUser: true,
			IsAdmin:       true,
			Status:        "Available",
		},
		{
			ID:     "2",
			Name:   "Alex Johnson",
			Email:  "alex@example.com",
			Phone:  "+1 (555) 987-6543",
			Avatar: avatar,
		},
		{
			ID:     "3",
			Name:   "Sam Wilson",
			Email:  "sam@example.com",
			Phone:  "+1 (555) 456-7890",
			Avatar: avatar,
		},
		{
			ID:     "4",
			Name:   "Taylor Kim",
			Email:  "taylor@example.com",
			Phone:  "+1 (555) 234-5678",
			Avatar: avatar,
		},
	}
}

// Groups returns the demo groups with their seed message logs.
func Groups(now time.Time) []store.BootstrapGroup {
	return []store.BootstrapGroup{
		{
			Info: models.Group{
				ID:        "group1",
				Name:      "Project Team",
				CreatedAt: now.AddDate(0, 0, -7),
				AdminID:   "1",
				Members:   []string{"1", "2", "3", "4"},
			},
			Messages: []models.Message{
				{
					ID:        "1",
					Content:   "Hey everyone! How's it going?",
					CreatedAt: now.Add(-time.Hour),
					SenderID:  "2",
				},
				{
					ID:        "2",
					Content:   "Just finished that project we were working on!",
					CreatedAt: now.Add(-30 * time.Minute),
					SenderID:  "3",
				},
				{
					ID:        "3",
					Content:   "That's awesome! Can you share the details?",
					CreatedAt: now.Add(-15 * time.Minute),
					SenderID:  "4",
					Attachments: []models.Attachment{
						{
							ID:       "file-1",
							Name:     "project-report.pdf",
							MIMEType: "application/pdf",
							Size:     2500000,
							URL:      "#project-report.pdf",
						},
					},
				},
			},
		},
		{
			Info: models.Group{
				ID:        "group2",
				Name:      "Marketing Team",
				CreatedAt: now.AddDate(0, 0, -14),
				AdminID:   "2",
				Members:   []string{"1", "2", "4"},
			},
			Messages: []models.Message{
				{
					ID:        "1",
					Content:   "Let's discuss the new campaign tomorrow",
					CreatedAt: now.Add(-time.Hour),
					SenderID:  "2",
				},
				{
					ID:        "2",
					Content:   "I've prepared some mockups for the social media posts",
					CreatedAt: now.Add(-30 * time.Minute),
					SenderID:  "4",
				},
			},
		},
		{
			Info: models.Group{
				ID:        "group3",
				Name:      "Friends",
				CreatedAt: now.AddDate(0, 0, -30),
				AdminID:   "3",
				Members:   []string{"1", "2", "3", "4"},
			},
			Messages: []models.Message{
				{
					ID:        "1",
					Content:   "Movie night this weekend?",
					CreatedAt: now.Add(-24 * time.Hour),
					SenderID:  "3",
				},
				{
					ID:        "2",
					Content:   "I'm in! What are we watching?",
					CreatedAt: now.Add(-23 * time.Hour),
					SenderID:  "4",
				},
				{
					ID:        "3",
					Content:   "How about the new sci-fi movie?",
					CreatedAt: now.Add(-22 * time.Hour),
					SenderID:  "2",
				},
			},
		},
	}
}

// Summaries returns the unread cache fixture matching Groups.
func Summaries(now time.Time) []models.GroupSummary {
	return []models.GroupSummary{
		{
			ID:   "group1",
			Name: "Project Team",
			LastMessage: &models.LastMessage{
				Content:   "That's awesome! Can you share the details?",
				Timestamp: now.Add(-15 * time.Minute),
				Sender:    "Taylor",
			},
		},
		{
			ID:          "group2",
			Name:        "Marketing Team",
			UnreadCount: 3,
			LastMessage: &models.LastMessage{
				Content:   "I've prepared some mockups for the social media posts",
				Timestamp: now.Add(-30 * time.Minute),
				Sender:    "Taylor",
			},
		},
		{
			ID:          "group3",
			Name:        "Friends",
			UnreadCount: 2,
			LastMessage: &models.LastMessage{
				Content:   "How about the new sci-fi movie?",
				Timestamp: now.Add(-22 * time.Hour),
				Sender:    "Alex",
			},
		},
	}
}
