package persistence

// Built-in defaults used when a stored document is absent or unreadable.
// Programs and the profile mirror seed with real content; every other
// collection defaults to empty.

// SeedPrograms returns the starter wellness catalog.
func SeedPrograms() []Program {
	return []Program{
		{
			ID:           "p-mindfulness",
			Title:        "Mindfulness Basics",
			Short:        "Guided meditation for beginners",
			Long:         "An eight-session introduction to mindfulness meditation, breathing techniques, and grounding exercises for managing academic stress.",
			Category:     "Mental Health",
			Duration:     "8 weeks",
			Participants: 42,
		},
		{
			ID:           "p-stress-workshop",
			Title:        "Exam Stress Workshop",
			Short:        "Practical tools for exam season",
			Long:         "A drop-in workshop series covering time management, sleep hygiene, and cognitive techniques for test anxiety.",
			Category:     "Mental Health",
			Duration:     "4 weeks",
			Participants: 58,
		},
		{
			ID:           "p-morning-fitness",
			Title:        "Morning Fitness Club",
			Short:        "Early group workouts, all levels",
			Long:         "Coached morning sessions alternating strength, cardio, and mobility work. No equipment or experience required.",
			Category:     "Fitness",
			Duration:     "Ongoing",
			Participants: 87,
		},
		{
			ID:           "p-yoga",
			Title:        "Campus Yoga",
			Short:        "Weekly vinyasa and restorative classes",
			Long:         "Weekly yoga classes taught by certified instructors, with mats provided. Restorative sessions during exam weeks.",
			Category:     "Fitness",
			Duration:     "12 weeks",
			Participants: 64,
		},
		{
			ID:           "p-healthy-cooking",
			Title:        "Healthy Cooking on a Budget",
			Short:        "Hands-on nutrition and cooking",
			Long:         "Learn to plan, shop for, and cook balanced meals on a student budget. Includes grocery tours and batch-cooking labs.",
			Category:     "Nutrition",
			Duration:     "6 weeks",
			Participants: 31,
		},
		{
			ID:           "p-sleep-better",
			Title:        "Sleep Better Program",
			Short:        "Evidence-based sleep improvement",
			Long:         "A structured program applying CBT-I principles: sleep tracking, schedule adjustment, and wind-down routines.",
			Category:     "Mental Health",
			Duration:     "5 weeks",
			Participants: 23,
		},
	}
}

// SeedProfile returns the placeholder profile shown before anyone signs in.
func SeedProfile() Profile {
	return Profile{
		Name:          "Guest Student",
		Email:         "",
		StudentID:     "",
		Participation: []ParticipationEntry{},
	}
}
