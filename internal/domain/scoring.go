package domain

import (
	"fmt"
	"strings"
)

const (
	BaseScore = 50
	MinScore  = 0
	MaxScore  = 100

	MinGoodSleepHours = 7.0
	MaxGoodSleepHours = 9.0
	LowSleepHours     = 5.0
	GoodSleepBonus    = 20
	LowSleepPenalty   = 10

	WaterTargetGlasses = 8.0
	WaterBonus         = 15

	WorkoutCaloriesThreshold    = 1200
	WorkoutBonus                = 15
	WeightLossCaloriesThreshold = 1300
	WeightLossBonus             = 10

	HighProteinGrams      = 70.0
	HighProteinBonus      = 10
	HeavyCalorieLimit     = 2200
	UnderweightCalorieMin = 1500
	CaloriePenalty        = 10
)

const (
	TipLowSleep        = "Your sleep is very low. Prioritize rest."
	TipDrinkWater      = "Drink more water (Target: 8 glasses)."
	TipGreatWorkout    = "Great workout!"
	TipWeightLoss      = "Excellent effort towards weight management!"
	TipMoreCalories    = "You need more calories to reach a healthy weight."
	DefaultSuggestion  = "Good routine. Keep it up!"
	highCalorieTipTmpl = "Calorie intake is high for your BMI status (%s)."
)

type ScoreResult struct {
	Score      int    `json:"health_score"`
	Suggestion string `json:"suggestion"`
}

// Score rates one entry against the owner's BMI status. Tips are collected
// in rule order and joined with a single space.
func Score(entry *HealthLog, status BMIStatus) ScoreResult {
	score := BaseScore
	var tips []string

	switch {
	case entry.SleepHours >= MinGoodSleepHours && entry.SleepHours <= MaxGoodSleepHours:
		score += GoodSleepBonus
	case entry.SleepHours < LowSleepHours:
		score -= LowSleepPenalty
		tips = append(tips, TipLowSleep)
	}

	if entry.WaterIntake >= WaterTargetGlasses {
		score += WaterBonus
	} else {
		tips = append(tips, TipDrinkWater)
	}

	switch entry.LogType {
	case LogTypeExercise:
		if entry.CaloriesBurned > WorkoutCaloriesThreshold {
			score += WorkoutBonus
			tips = append(tips, TipGreatWorkout)
		}
		if status.IsHeavy() && entry.CaloriesBurned > WeightLossCaloriesThreshold {
			score += WeightLossBonus
			tips = append(tips, TipWeightLoss)
		}
	case LogTypeFood:
		if entry.ProteinG > HighProteinGrams {
			score += HighProteinBonus
		}
		if status.IsHeavy() && entry.CaloriesIntake > HeavyCalorieLimit {
			score -= CaloriePenalty
			tips = append(tips, HighCalorieTip(status))
		} else if status == BMIStatusUnderweight && entry.CaloriesIntake < UnderweightCalorieMin {
			score -= CaloriePenalty
			tips = append(tips, TipMoreCalories)
		}
	}

	result := ScoreResult{Score: clampScore(score), Suggestion: DefaultSuggestion}
	if len(tips) > 0 {
		result.Suggestion = strings.Join(tips, " ")
	}
	return result
}

func HighCalorieTip(status BMIStatus) string {
	return fmt.Sprintf(highCalorieTipTmpl, status)
}

func clampScore(score int) int {
	if score < MinScore {
		return MinScore
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}
