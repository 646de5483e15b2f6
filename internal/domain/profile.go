package domain

import (
	"math"
	"time"
)

const (
	DefaultAge      = 25
	DefaultHeightCm = 170.0
	DefaultWeightKg = 70.0
)

type BMIStatus string

const (
	BMIStatusUnderweight BMIStatus = "Underweight"
	BMIStatusNormal      BMIStatus = "Normal"
	BMIStatusOverweight  BMIStatus = "Overweight"
	BMIStatusObese       BMIStatus = "Obese"
)

// BMI category thresholds. Values in [NormalUpperBMI, OverweightLowerBMI)
// are not covered by Normal or Overweight and classify as Obese.
const (
	UnderweightUpperBMI = 18.5
	NormalUpperBMI      = 24.9
	OverweightLowerBMI  = 25.0
	OverweightUpperBMI  = 29.9
)

type Profile struct {
	ID        int       `json:"id" db:"id"`
	UserID    int       `json:"user_id" db:"user_id"`
	Age       int       `json:"age" db:"age"`
	HeightCm  float64   `json:"height_cm" db:"height_cm"`
	WeightKg  float64   `json:"weight_kg" db:"weight_kg"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// NewDefaultProfile returns the profile every new account starts with.
func NewDefaultProfile(userID int) *Profile {
	return &Profile{
		UserID:   userID,
		Age:      DefaultAge,
		HeightCm: DefaultHeightCm,
		WeightKg: DefaultWeightKg,
	}
}

func (p *Profile) BMI() float64 {
	return ComputeBMI(p.HeightCm, p.WeightKg)
}

func (p *Profile) BMIStatus() BMIStatus {
	return StatusForBMI(p.BMI())
}

// ComputeBMI returns weight / height(m)^2 rounded to one decimal place,
// or 0 when the height is not positive.
func ComputeBMI(heightCm, weightKg float64) float64 {
	heightM := heightCm / 100
	if heightM <= 0 {
		return 0
	}
	bmi := weightKg / (heightM * heightM)
	return math.Round(bmi*10) / 10
}

func StatusForBMI(bmi float64) BMIStatus {
	switch {
	case bmi < UnderweightUpperBMI:
		return BMIStatusUnderweight
	case bmi >= UnderweightUpperBMI && bmi < NormalUpperBMI:
		return BMIStatusNormal
	case bmi >= OverweightLowerBMI && bmi < OverweightUpperBMI:
		return BMIStatusOverweight
	default:
		return BMIStatusObese
	}
}

// ResolveBMIStatus returns the owner's status, or Normal when the owner
// has no profile.
func ResolveBMIStatus(profile *Profile) BMIStatus {
	if profile == nil {
		return BMIStatusNormal
	}
	return profile.BMIStatus()
}

func (s BMIStatus) IsHeavy() bool {
	return s == BMIStatusOverweight || s == BMIStatusObese
}
