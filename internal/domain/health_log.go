package domain

import "time"

type LogType string

const (
	LogTypeExercise LogType = "EXERCISE"
	LogTypeFood     LogType = "FOOD"
)

type ExerciseType string

const (
	ExerciseRunning ExerciseType = "Running"
	ExerciseGym     ExerciseType = "Gym"
	ExerciseSport   ExerciseType = "Sport"
	ExerciseYoga    ExerciseType = "Yoga"
	ExerciseNone    ExerciseType = "None"
)

func (t LogType) Label() string {
	switch t {
	case LogTypeExercise:
		return "Physical Exercise"
	case LogTypeFood:
		return "Food Intake"
	default:
		return string(t)
	}
}

type HealthLog struct {
	ID             int          `json:"id" db:"id"`
	UserID         int          `json:"user_id" db:"user_id"`
	Date           time.Time    `json:"date" db:"log_date"`
	LogType        LogType      `json:"log_type" db:"log_type"`
	SleepHours     float64      `json:"sleep_hours" db:"sleep_hours"`
	WaterIntake    float64      `json:"water_intake" db:"water_intake"`
	ExerciseType   ExerciseType `json:"exercise_type" db:"exercise_type"`
	CaloriesBurned int          `json:"calories_burned" db:"calories_burned"`
	CaloriesIntake int          `json:"calories_intake" db:"calories_intake"`
	ProteinG       float64      `json:"protein_g" db:"protein_g"`
	CarbsG         float64      `json:"carbs_g" db:"carbs_g"`
	FatsG          float64      `json:"fats_g" db:"fats_g"`
	HealthScore    int          `json:"health_score" db:"health_score"`
	Suggestion     string       `json:"suggestion" db:"suggestion"`
	CreatedAt      time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at" db:"updated_at"`
}

// ApplyScore stores a scorer result on the entry.
func (l *HealthLog) ApplyScore(result ScoreResult) {
	l.HealthScore = result.Score
	l.Suggestion = result.Suggestion
}

// DashboardStats are aggregates over all of a user's entries.
type DashboardStats struct {
	AvgSleep       float64 `db:"avg_sleep"`
	AvgHealthScore float64 `db:"avg_health_score"`
	TotalWorkouts  int     `db:"total_workouts"`
	TotalLogs      int     `db:"total_logs"`
}
