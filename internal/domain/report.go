package domain

import "time"

// HealthReport is everything a downloadable report shows.
type HealthReport struct {
	User        *User
	Profile     *Profile
	Logs        []*HealthLog
	GeneratedAt time.Time
}

// CaloriesFor returns the calorie figure relevant to the entry type.
func (l *HealthLog) CaloriesFor() int {
	if l.LogType == LogTypeExercise {
		return l.CaloriesBurned
	}
	return l.CaloriesIntake
}
