package repository

import (
	"time"

	"github.com/edutrackr/edutrackr-api/internal/models"
)

// Demo dataset shared by the in-memory repositories. The portal ships with a
// single seeded class roster so every screen has data on first boot.

func seedRoster() []models.RosterStudent {
	return []models.RosterStudent{
		{ID: "1", Name: "Alex Johnson", Roll: "45"},
		{ID: "2", Name: "Sarah Smith", Roll: "46"},
		{ID: "3", Name: "Michael Brown", Roll: "47"},
		{ID: "4", Name: "Emily Davis", Roll: "48"},
	}
}

func seedTimetable() map[string][]models.ClassSession {
	return map[string][]models.ClassSession{
		"Mon": {
			{ID: "1", Subject: "Physics", Time: "09:00 AM", Duration: "1h", Room: "Room 301", Teacher: "Dr. Smith", Type: models.SessionLecture, Status: models.SessionCompleted},
			{ID: "2", Subject: "Calculus II", Time: "10:15 AM", Duration: "1.5h", Room: "Room 104", Teacher: "Prof. Johnson", Type: models.SessionLecture, Status: models.SessionLive},
			{ID: "3", Subject: "Computer Science", Time: "01:00 PM", Duration: "2h", Room: "Lab 2", Teacher: "Ms. Davis", Type: models.SessionLab, Status: models.SessionUpcoming},
		},
		"Tue": {
			{ID: "4", Subject: "English Lit", Time: "09:00 AM", Duration: "1h", Room: "Room 205", Teacher: "Mr. White", Type: models.SessionLecture, Status: models.SessionUpcoming},
			{ID: "5", Subject: "Physics", Time: "11:00 AM", Duration: "1h", Room: "Room 301", Teacher: "Dr. Smith", Type: models.SessionLecture, Status: models.SessionUpcoming},
		},
		"Wed": {
			{ID: "6", Subject: "Chemistry", Time: "10:00 AM", Duration: "1.5h", Room: "Lab 1", Teacher: "Mrs. Green", Type: models.SessionLab, Status: models.SessionUpcoming},
			{ID: "7", Subject: "History", Time: "02:00 PM", Duration: "1h", Room: "Room 402", Teacher: "Mr. Black", Type: models.SessionLecture, Status: models.SessionUpcoming},
		},
		"Thu": {
			{ID: "8", Subject: "Calculus II", Time: "09:00 AM", Duration: "1h", Room: "Room 104", Teacher: "Prof. Johnson", Type: models.SessionTutorial, Status: models.SessionUpcoming},
			{ID: "9", Subject: "Computer Science", Time: "10:30 AM", Duration: "1h", Room: "Room 201", Teacher: "Ms. Davis", Type: models.SessionLecture, Status: models.SessionUpcoming},
		},
		"Fri": {
			{ID: "10", Subject: "Physical Ed", Time: "08:00 AM", Duration: "1h", Room: "Field A", Teacher: "Coach T", Type: models.SessionLecture, Status: models.SessionUpcoming},
			{ID: "11", Subject: "Library", Time: "10:00 AM", Duration: "2h", Room: "Main Lib", Teacher: "-", Type: models.SessionTutorial, Status: models.SessionUpcoming},
		},
	}
}

func seedAssignments() []models.Assignment {
	return []models.Assignment{
		{ID: "1", Title: "Calculus Worksheet 4.2", Subject: "Math", Due: "Tomorrow", Completed: false},
		{ID: "2", Title: "React Project Proposal", Subject: "CS", Due: "In 2 days", Completed: false},
		{ID: "3", Title: "History Essay Draft", Subject: "History", Due: "Next Week", Completed: true},
	}
}

func seedNotices(now time.Time) []models.Notice {
	return []models.Notice{
		{ID: "1", Title: "Holiday Declaration", Content: "Campus remains closed on Friday for the regional holiday.", Active: true, CreatedAt: now.AddDate(0, 0, -4)},
		{ID: "2", Title: "Exam Schedule Released", Content: "The mid-term timetable is available at the examination office.", Active: true, CreatedAt: now.AddDate(0, 0, -6)},
	}
}

func seedLeaves() []models.LeaveRequest {
	return []models.LeaveRequest{
		{ID: "1", Student: "Sarah Smith", Reason: "Medical (Fever)", Days: "2 Days", Dates: "24-25 Oct", Status: models.LeavePending},
		{ID: "2", Student: "John Doe", Reason: "Family Function", Days: "1 Day", Dates: "28 Oct", Status: models.LeavePending},
		{ID: "3", Student: "Emily Davis", Reason: "Personal", Days: "3 Days", Dates: "1-3 Nov", Status: models.LeavePending},
	}
}

func seedMessages(now time.Time) []models.Message {
	return []models.Message{
		{ID: "1", Sender: "Teacher", Content: "Hello! Alex missed the first period today. Is everything okay?", Timestamp: now.Add(-10 * time.Minute), Mine: false},
		{ID: "2", Sender: "Me", Content: "Hi, yes, he had a dental appointment. He should be there by 10 AM.", Timestamp: now.Add(-8 * time.Minute), Mine: true},
	}
}

func seedPartners() []models.StudyPartner {
	return []models.StudyPartner{
		{ID: "1", Name: "Chloe Price", Age: 19, Subjects: []string{"Physics", "Calculus"}, Vibe: models.VibeNightOwl, Streak: 15, Avatar: avatarFor("Chloe Price"), Bio: "Focusing on finals. Let's maximize efficiency!"},
		{ID: "2", Name: "Max C.", Age: 20, Subjects: []string{"History", "Literature"}, Vibe: models.VibeMorningBird, Streak: 8, Avatar: avatarFor("Max C"), Bio: "Need a silent study buddy for essay writing"},
		{ID: "3", Name: "Liam D.", Age: 19, Subjects: []string{"Chemistry", "Biology"}, Vibe: models.VibeNightOwl, Streak: 22, Avatar: avatarFor("Liam D"), Bio: "Pomodoro technique only! 25/5 intervals."},
	}
}

func seedLeaderboard() []models.LeaderboardEntry {
	return []models.LeaderboardEntry{
		{ID: "1", Rank: 1, Name: "Chloe Price", Avatar: avatarFor("Chloe Price"), XP: 2450, Trend: models.TrendUp},
		{ID: "2", Rank: 2, Name: "Alex Johnson", Avatar: avatarFor("Alex Johnson"), XP: 2320, Trend: models.TrendSame},
		{ID: "3", Rank: 3, Name: "Liam D.", Avatar: avatarFor("Liam D"), XP: 2100, Trend: models.TrendDown},
		{ID: "4", Rank: 4, Name: "Sarah S.", Avatar: avatarFor("Sarah S"), XP: 1950, Trend: models.TrendUp},
	}
}

func seedBadges() []models.Badge {
	return []models.Badge{
		{ID: "1", Name: "Early Bird", Icon: "🌅", Description: "Complete a study session before 7 AM", Unlocked: true},
		{ID: "2", Name: "Quiz Master", Icon: "🧠", Description: "Score 100% on 3 consecutive quizzes", Unlocked: true},
		{ID: "3", Name: "7 Day Streak", Icon: "🔥", Description: "Study for 7 days in a row", Unlocked: true},
		{ID: "4", Name: "Night Owl", Icon: "🦉", Description: "Study past midnight", Unlocked: false},
		{ID: "5", Name: "Helper", Icon: "🤝", Description: "Share notes with 5 friends", Unlocked: false},
		{ID: "6", Name: "Marathon", Icon: "🏃", Description: "Study for 4 hours in one day", Unlocked: false},
	}
}

func seedAffirmations() []string {
	return []string{
		"You are doing your best, and that is enough.",
		"Small progress is still progress.",
		"Your potential to succeed is infinite.",
		"Take a deep breath. You got this.",
		"Focus on what you can control.",
	}
}

func avatarFor(name string) string {
	return models.AvatarURL(name)
}
