package shared

const (
	UserID   = "user_id"
	UserRole = "user_role"

	RoleUser  = "user"
	RoleAdmin = "admin"

	ContentTypeArticle  = "Article"
	ContentTypeStory    = "Story"
	ContentTypeDialogue = "Dialogue"
	ContentTypeExercise = "Exercise"

	ActivityContentGenerated  = "content_generated"
	ActivityExerciseCompleted = "exercise_completed"
	ActivityLogin             = "login"
	ActivityProfileUpdate     = "profile_update"

	SafetyModeStandard = "standard"
	SafetyModeStrict   = "strict"

	BadgeFirstContent    = "First Content"
	BadgeContentExplorer = "Content Explorer"
	BadgeExerciseStarter = "Exercise Starter"
	BadgeStreak3         = "3-Day Streak"
	BadgeStreak7         = "7-Day Streak"
	BadgePoints100       = "100 Points"
	BadgeWeeklyGoal      = "Weekly Goal Achiever"
)
