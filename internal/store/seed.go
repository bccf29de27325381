package store

import "time"

// Seed fixtures used when a kind has no durable state yet (first run, or
// the key was lost or corrupted).

// Bcrypt hash of "password", the demo credential both seed actors share.
const seedPasswordHash = "$2b$10$oF4Ru2U4ssVdbEMji81PaOAHJAFLPA66Ll61WLK8hjCltkuy4h78."

func SeedUsers() []User {
	return []User{
		{
			ID:           "u1",
			Name:         "Sarah Producer",
			Email:        "admin@validate.com",
			Role:         RoleAdmin,
			PasswordHash: seedPasswordHash,
			AvatarURL:    "https://picsum.photos/id/64/200/200",
			JobTitle:     "Executive Producer",
			Phone:        "555-0101",
		},
		{
			ID:             "u2",
			Name:           "Mike Client",
			Email:          "mike@sdc.com",
			Role:           RoleClient,
			PasswordHash:   seedPasswordHash,
			OrganizationID: "org1",
			AvatarURL:      "https://picsum.photos/id/91/200/200",
			JobTitle:       "Marketing Director",
			Phone:          "555-0202",
		},
	}
}

func SeedOrganizations() []Organization {
	return []Organization{
		{
			ID:                  "org1",
			Name:                "Silver Dollar City",
			PrimaryContactName:  "Mike Client",
			PrimaryContactEmail: "mike@sdc.com",
		},
		{
			ID:                  "org2",
			Name:                "Big Cedar Lodge",
			PrimaryContactName:  "Jenny Marketing",
			PrimaryContactEmail: "jenny@bigcedar.com",
		},
	}
}

func SeedProjects() []Project {
	return []Project{
		{
			ID:             "p1",
			OrganizationID: "org1",
			Name:           "Spring Brand Film",
			Description:    "A 60-second cinematic brand anthem showcasing the new park expansion and spring aesthetic.",
			Status:         ProjectPostProduction,
			StartDate:      "2023-03-01",
			DueDate:        "2023-05-15",
		},
		{
			ID:             "p2",
			OrganizationID: "org1",
			Name:           "Holiday Campaign",
			Description:    "Series of 15s spots for the Christmas festival.",
			Status:         ProjectPreProduction,
			StartDate:      "2023-06-01",
			DueDate:        "2023-10-01",
		},
	}
}

func SeedMilestones() []Milestone {
	return []Milestone{
		{ID: "m1", ProjectID: "p1", Title: "Concept Approval", DueDate: "2023-03-10", Status: MilestoneCompleted},
		{ID: "m2", ProjectID: "p1", Title: "Principal Photography", DueDate: "2023-04-01", Status: MilestoneCompleted},
		{ID: "m3", ProjectID: "p1", Title: "Rough Cut Delivery", DueDate: "2023-04-20", Status: MilestoneInProgress},
		{ID: "m4", ProjectID: "p1", Title: "Final Delivery", DueDate: "2023-05-15", Status: MilestoneNotStarted},
	}
}

func SeedMessages() []Message {
	return []Message{
		{
			ID:         "msg1",
			ProjectID:  "p1",
			SenderID:   "u1",
			SenderName: "Sarah Producer",
			Body:       "Hi Mike! Just uploaded the first look at the color grade. Let us know what you think.",
			CreatedAt:  time.Date(2023, 4, 18, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:         "msg2",
			ProjectID:  "p1",
			SenderID:   "u2",
			SenderName: "Mike Client",
			Body:       "Looks fantastic Sarah. The warmth in the golden hour shots is perfect.",
			CreatedAt:  time.Date(2023, 4, 18, 11, 30, 0, 0, time.UTC),
		},
		{
			ID:         "msg3",
			ProjectID:  "p1",
			SenderID:   "u1",
			SenderName: "Sarah Producer",
			IsInternal: true,
			Body:       "Note to editor: Fix the stabilizer warp in shot 4 before sending V2.",
			CreatedAt:  time.Date(2023, 4, 19, 9, 0, 0, 0, time.UTC),
		},
	}
}

func SeedFiles() []FileRecord {
	return []FileRecord{
		{
			ID:              "f1",
			ProjectID:       "p1",
			UploadedByID:    "u1",
			UploadedByName:  "Sarah Producer",
			FileName:        "Brand_Voiceover_Script_v3.pdf",
			FileType:        "pdf",
			FileSize:        "2.4 MB",
			IsClientVisible: true,
			CreatedAt:       time.Date(2023, 3, 15, 14, 0, 0, 0, time.UTC),
			URL:             "https://www.w3.org/WAI/ER/tests/xhtml/testfiles/resources/pdf/dummy.pdf",
		},
		{
			ID:              "f2",
			ProjectID:       "p1",
			UploadedByID:    "u2",
			UploadedByName:  "Mike Client",
			FileName:        "SDC_Logo_Reference.jpg",
			FileType:        "jpg",
			FileSize:        "1.5 MB",
			IsClientVisible: true,
			CreatedAt:       time.Date(2023, 3, 12, 9, 0, 0, 0, time.UTC),
			URL:             "https://picsum.photos/id/1018/1000/600",
		},
		{
			ID:             "f3",
			ProjectID:      "p1",
			UploadedByID:   "u1",
			UploadedByName: "Sarah Producer",
			FileName:       "Budget_Breakdown_Internal.csv",
			FileType:       "csv",
			FileSize:       "1 MB",
			CreatedAt:      time.Date(2023, 3, 1, 10, 0, 0, 0, time.UTC),
			URL:            "https://people.sc.fsu.edu/~jburkardt/data/csv/addresses.csv",
		},
		{
			ID:              "f4",
			ProjectID:       "p1",
			UploadedByID:    "u1",
			UploadedByName:  "Sarah Producer",
			FileName:        "Moodboard_v1.jpg",
			FileType:        "jpg",
			FileSize:        "3.2 MB",
			IsClientVisible: true,
			CreatedAt:       time.Date(2023, 3, 10, 11, 0, 0, 0, time.UTC),
			URL:             "https://picsum.photos/id/24/1000/800",
		},
	}
}

func SeedApprovals() []ApprovalItem {
	return []ApprovalItem{
		{
			ID:           "a1",
			ProjectID:    "p1",
			Title:        "Latest Cut - 60s Spot",
			Description:  "Addressing color and pacing notes. Updated music track included.",
			LinkToReview: "https://storage.googleapis.com/gtv-videos-bucket/sample/ForBiggerMeltdowns.mp4",
			Status:       ApprovalPending,
		},
	}
}
