package job

import "time"

// Seed returns the hand-maintained postings loaded at startup. These mirror
// notices published by the Rajasthan recruitment boards and keep the dashboard
// populated before the first sync cycle completes.
func Seed() []Posting {
	now := time.Now().Format(time.RFC3339)

	return []Posting{
		{
			ID:                 "rpsc-1",
			JobTitle:           "RPSC Rajasthan Administrative Services (RAS) 2025",
			Department:         "Rajasthan Public Service Commission",
			PostName:           "RAS / RTS",
			Qualification:      "Graduate",
			AgeLimit:           "21-40 Years",
			TotalPosts:         905,
			StartDate:          "2025-04-01",
			LastDate:           "2025-05-30",
			ApplyLink:          "https://rpsc.rajasthan.gov.in",
			NotificationPDFURL: "https://rpsc.rajasthan.gov.in",
			State:              "Rajasthan",
			Category:           "Administrative",
			Status:             StatusApproved,
			CreatedAt:          now,
			IsCenterLevel:      false,
			IsAuthenticBoard:   true,
			SourceName:         "RPSC Official",
			EligibilityDetails: "Authentic RPSC Recruitment for State Services.",
			HowToApplySteps:    []string{"Go to RPSC Website", "Apply via SSO ID"},
			ContentType:        ContentTypeJob,
		},
		{
			ID:                 "rssb-1",
			JobTitle:           "RSMSSB LDC / Junior Assistant Recruitment 2025",
			Department:         "Rajasthan Staff Selection Board",
			PostName:           "LDC",
			Qualification:      "12th + RS-CIT",
			AgeLimit:           "18-40 Years",
			TotalPosts:         4197,
			StartDate:          "2025-03-01",
			LastDate:           "2025-03-31",
			ApplyLink:          "https://rssb.rajasthan.gov.in",
			NotificationPDFURL: "https://rssb.rajasthan.gov.in",
			State:              "Rajasthan",
			Category:           "Clerical",
			Status:             StatusApproved,
			CreatedAt:          now,
			IsCenterLevel:      false,
			IsAuthenticBoard:   true,
			SourceName:         "RSMSSB Official",
			EligibilityDetails: "Direct recruitment for various departments in Rajasthan.",
			HowToApplySteps:    []string{"Login to SSO Portal", "Select Recruitment Stack 2"},
			ContentType:        ContentTypeJob,
		},
	}
}
