package models

// StudyPlanItem is one slot of a generated study schedule.
type StudyPlanItem struct {
	Time     string `json:"time"`
	Subject  string `json:"subject"`
	Topic    string `json:"topic"`
	Duration string `json:"duration"`
}

// Difficulty tiers for flashcards.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyMedium Difficulty = "MEDIUM"
	DifficultyHard   Difficulty = "HARD"
)

// Flashcard is a generated front/back study card.
type Flashcard struct {
	ID         string     `json:"id"`
	Front      string     `json:"front"`
	Back       string     `json:"back"`
	Difficulty Difficulty `json:"difficulty"`
}

// QuizQuestion is a generated multiple-choice question. CorrectAnswer is the
// index into Options.
type QuizQuestion struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
}

// StudyPlanRequest asks for a schedule covering the given subjects within the
// available hours.
type StudyPlanRequest struct {
	Subjects       []string `json:"subjects" validate:"required,min=1,dive,required"`
	HoursAvailable int      `json:"hours_available" validate:"required,min=1,max=16"`
}

// FlashcardRequest asks for a deck on a topic.
type FlashcardRequest struct {
	Topic string `json:"topic" validate:"required"`
	Count int    `json:"count" validate:"min=0,max=20"`
}

// QuizRequest asks for a quiz derived from source text.
type QuizRequest struct {
	Text string `json:"text" validate:"required"`
}

// TutorRequest asks the tutor a free-form question.
type TutorRequest struct {
	Question string `json:"question" validate:"required"`
	Subject  string `json:"subject"`
}

// Assignment is a student task with a due label.
type Assignment struct {
	ID        string `json:"id"`
	Subject   string `json:"subject"`
	Title     string `json:"title"`
	Due       string `json:"due"`
	Completed bool   `json:"completed"`
}

// SessionType classifies a timetable class session.
type SessionType string

const (
	SessionLecture  SessionType = "Lecture"
	SessionLab      SessionType = "Lab"
	SessionTutorial SessionType = "Tutorial"
)

// SessionStatus marks where a class session sits relative to now.
type SessionStatus string

const (
	SessionCompleted SessionStatus = "COMPLETED"
	SessionLive      SessionStatus = "LIVE"
	SessionUpcoming  SessionStatus = "UPCOMING"
)

// ClassSession is one timetable entry.
type ClassSession struct {
	ID       string        `json:"id"`
	Subject  string        `json:"subject"`
	Time     string        `json:"time"`
	Duration string        `json:"duration"`
	Room     string        `json:"room"`
	Teacher  string        `json:"teacher"`
	Type     SessionType   `json:"type"`
	Status   SessionStatus `json:"status"`
}

// TimerPresets describe the focus timer defaults and today's progress.
type TimerPresets struct {
	FocusSeconds     int    `json:"focus_seconds"`
	BreakSeconds     int    `json:"break_seconds"`
	DailyGoal        string `json:"daily_goal"`
	CompletedToday   string `json:"completed_today"`
	SessionsComplete int    `json:"sessions_complete"`
}
