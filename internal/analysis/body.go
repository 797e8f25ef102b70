package analysis

import (
	"fmt"
	"math"
	"time"
)

// Sexes recognised by the sex-specific formulas. Anything other than SexMale
// uses the female constants.
const (
	SexMale   = "male"
	SexFemale = "female"
)

// MinTargetCalories is the floor applied to any weight-loss budget.
const MinTargetCalories = 1200

// maintenanceBand is the weight difference (kg) treated as "at goal".
const maintenanceBand = 0.5

// Age returns whole years between dob and now, counting a birthday only once
// its month and day have been reached.
func Age(dob, now time.Time) int {
	age := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	return age
}

// BMI returns weight (kg) over height (cm, converted to m) squared.
func BMI(weightKG, heightCM float64) float64 {
	m := heightCM / 100
	return weightKG / (m * m)
}

// BMICategory classifies a BMI using WHO-style breakpoints.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 16:
		return "Severe underweight"
	case bmi < 17:
		return "Moderate underweight"
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal weight"
	case bmi < 30:
		return "Overweight"
	case bmi < 35:
		return "Obese Class I"
	case bmi < 40:
		return "Obese Class II"
	default:
		return "Obese Class III"
	}
}

// BMR computes basal metabolic rate with the Mifflin-St Jeor equation.
func BMR(weightKG, heightCM float64, age int, sex string) float64 {
	base := 10*weightKG + 6.25*heightCM - 5*float64(age)
	if sex == SexMale {
		return base + 5
	}
	return base - 161
}

// TDEE scales BMR by an activity multiplier (typically 1.2-1.9).
func TDEE(bmr, activityLevel float64) float64 {
	return bmr * activityLevel
}

// Strategy is a daily calorie plan toward a target weight. Deficit is negative
// for a surplus; WeeklyChange is negative when losing.
type Strategy struct {
	TargetCalories float64 `json:"target_calories"`
	Name           string  `json:"strategy_name"`
	Info           string  `json:"deficit_info"`
	WeeklyChange   float64 `json:"weekly_weight_change"`
	Deficit        float64 `json:"deficit"`
}

// CalorieStrategy picks maintenance, a tiered deficit, or a lean-gain surplus.
// Deficits scale with the amount to lose (>20kg 750, >10kg 500, else 250) and
// the target never drops below MinTargetCalories; the deficit is recomputed
// from the floor when it clamps.
func CalorieStrategy(currentKG, targetKG, tdee float64) Strategy {
	diff := targetKG - currentKG

	switch {
	case math.Abs(diff) < maintenanceBand:
		return Strategy{
			TargetCalories: tdee,
			Name:           "Weight Maintenance",
			Info:           "Eating at maintenance to stay at current weight",
		}
	case diff < 0:
		toLose := -diff
		deficit, weekly, name := 250.0, 0.25, "Slow Weight Loss"
		if toLose > 20 {
			deficit, weekly, name = 750, 0.75, "Fast Weight Loss"
		} else if toLose > 10 {
			deficit, weekly, name = 500, 0.5, "Moderate Weight Loss"
		}
		target := math.Max(tdee-deficit, MinTargetCalories)
		actual := tdee - target
		return Strategy{
			TargetCalories: target,
			Name:           name,
			Info:           fmt.Sprintf("%.0f cal/day deficit • ~%gkg/week", actual, weekly),
			WeeklyChange:   -weekly,
			Deficit:        actual,
		}
	default:
		const surplus, weekly = 250.0, 0.25
		return Strategy{
			TargetCalories: tdee + surplus,
			Name:           "Lean Mass Gain",
			Info:           fmt.Sprintf("%.0f cal/day surplus • ~%gkg/week", surplus, weekly),
			WeeklyChange:   weekly,
			Deficit:        -surplus,
		}
	}
}

// Timeline is the projected time to reach a target weight.
type Timeline struct {
	Weeks    int    `json:"weeks"`
	Text     string `json:"timeline_text"`
	Progress string `json:"progress_text"`
}

// GoalTimeline projects weeks to goal as round(|diff| / |weekly rate|) and
// renders them as months (4 weeks each) plus remaining weeks.
func GoalTimeline(currentKG, targetKG, weeklyChange float64) Timeline {
	diff := math.Abs(targetKG - currentKG)
	if diff < maintenanceBand {
		return Timeline{Text: "At goal weight", Progress: "Maintain current weight"}
	}
	if weeklyChange == 0 {
		return Timeline{Text: "No change", Progress: "Currently at maintenance calories"}
	}

	weeks := int(math.Round(diff / math.Abs(weeklyChange)))
	months, rem := weeks/4, weeks%4

	var text string
	if months > 0 {
		text = fmt.Sprintf("%d month%s", months, plural(months))
		if rem > 0 {
			text += fmt.Sprintf(" %dw", rem)
		}
	} else {
		text = fmt.Sprintf("%d week%s", weeks, plural(weeks))
	}

	direction := "gain"
	if targetKG < currentKG {
		direction = "lose"
	}
	return Timeline{
		Weeks:    weeks,
		Text:     text,
		Progress: fmt.Sprintf("%.1fkg to %s", diff, direction),
	}
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

// WeightRange is a healthy weight band in kg.
type WeightRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// IdealWeightRange applies BMI 18.5-25 to a height, rounded to 0.1 kg.
func IdealWeightRange(heightCM float64) WeightRange {
	m := heightCM / 100
	return WeightRange{
		Min: math.Round(18.5*m*m*10) / 10,
		Max: math.Round(25*m*m*10) / 10,
	}
}

// EstimateBodyFat is a rough BMI-based body-fat percentage (Deurenberg).
func EstimateBodyFat(bmi float64, age int, sex string) float64 {
	est := 1.20*bmi + 0.23*float64(age)
	if sex == SexMale {
		return est - 16.2
	}
	return est - 5.4
}

/* ─── Profile bundle ─────────────────────────────────────────────────── */

// BodyProfile is the input needed for the full metrics bundle.
type BodyProfile struct {
	DateOfBirth   time.Time
	HeightCM      float64
	WeightKG      float64
	Sex           string
	ActivityLevel float64
	TargetWeight  float64
}

// Metrics is every body metric derivable from a complete profile.
type Metrics struct {
	Age              int         `json:"age"`
	BMI              float64     `json:"bmi"`
	BMICategory      string      `json:"bmi_category"`
	BMR              int         `json:"bmr"`
	TDEE             int         `json:"tdee"`
	Strategy         Strategy    `json:"strategy"`
	Timeline         Timeline    `json:"timeline"`
	IdealWeight      WeightRange `json:"ideal_weight"`
	EstimatedBodyFat float64     `json:"estimated_body_fat"`
}

// ComputeMetrics derives all body metrics from p. Returns ok=false when a
// required field is missing or the age is implausible (negative or over 130).
func ComputeMetrics(p BodyProfile, now time.Time) (Metrics, bool) {
	if p.DateOfBirth.IsZero() || p.HeightCM <= 0 || p.WeightKG <= 0 || p.ActivityLevel <= 0 {
		return Metrics{}, false
	}
	age := Age(p.DateOfBirth, now)
	if age < 0 || age > 130 {
		return Metrics{}, false
	}

	bmi := BMI(p.WeightKG, p.HeightCM)
	bmr := BMR(p.WeightKG, p.HeightCM, age, p.Sex)
	tdee := TDEE(bmr, p.ActivityLevel)

	target := p.TargetWeight
	if target <= 0 {
		target = p.WeightKG
	}
	strategy := CalorieStrategy(p.WeightKG, target, tdee)

	return Metrics{
		Age:              age,
		BMI:              math.Round(bmi*10) / 10,
		BMICategory:      BMICategory(bmi),
		BMR:              int(math.Round(bmr)),
		TDEE:             int(math.Round(tdee)),
		Strategy:         strategy,
		Timeline:         GoalTimeline(p.WeightKG, target, strategy.WeeklyChange),
		IdealWeight:      IdealWeightRange(p.HeightCM),
		EstimatedBodyFat: math.Round(EstimateBodyFat(bmi, age, p.Sex)*10) / 10,
	}, true
}
