package analysis

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Energy density of each macronutrient, kcal per gram.
const (
	KcalPerGramProtein = 4
	KcalPerGramCarbs   = 4
	KcalPerGramFat     = 9
)

// Meal slots, in the order a day is scored.
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSupper    = "supper"
)

// MealSlots lists the four loggable meals of a day in order.
var MealSlots = []string{MealBreakfast, MealLunch, MealDinner, MealSupper}

// Macros are the gram amounts of one meal.
type Macros struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fats    float64 `json:"fats"`
	Fiber   float64 `json:"fiber"`
}

// CaloriesFromMacros converts macro grams into kcal (4/4/9).
func CaloriesFromMacros(protein, carbs, fats float64) float64 {
	return protein*KcalPerGramProtein + carbs*KcalPerGramCarbs + fats*KcalPerGramFat
}

// macroBound is an inclusive ideal range. Percent bounds refer to share of the
// meal's calories; fiber bounds are grams.
type macroBound struct {
	Min, Max float64
}

func (b *macroBound) contains(v float64) bool { return v >= b.Min && v <= b.Max }

// MealIdeal describes the target macro split of one meal slot.
type MealIdeal struct {
	Name       string
	Guidelines string
	Protein    *macroBound
	Carbs      *macroBound
	Fats       *macroBound
	Fiber      *macroBound
}

// idealMeals is the fixed per-slot target table. A missing bound means the
// macro is not scored for that slot.
var idealMeals = map[string]MealIdeal{
	MealBreakfast: {
		Name:       "Breakfast",
		Guidelines: "Carbs, healthy fats & fiber",
		Carbs:      &macroBound{40, 60},
		Fats:       &macroBound{25, 40},
		Fiber:      &macroBound{5, 10},
		Protein:    &macroBound{15, 30},
	},
	MealLunch: {
		Name:       "Lunch",
		Guidelines: "30% protein, 70% carbs, 1 fruit",
		Protein:    &macroBound{25, 35},
		Carbs:      &macroBound{60, 75},
		Fiber:      &macroBound{5, 8},
	},
	MealDinner: {
		Name:       "Dinner",
		Guidelines: "50% protein, 50% carbs + treat",
		Protein:    &macroBound{45, 55},
		Carbs:      &macroBound{45, 55},
		Fats:       &macroBound{10, 20},
	},
	MealSupper: {
		Name:       "Supper",
		Guidelines: "100% protein",
		Protein:    &macroBound{80, 100},
		Carbs:      &macroBound{0, 10},
		Fats:       &macroBound{0, 20},
	},
}

// IdealMeal returns the target table entry for a meal slot.
func IdealMeal(mealType string) (MealIdeal, bool) {
	ideal, ok := idealMeals[mealType]
	return ideal, ok
}

// IsMealSlot reports whether name is one of the four loggable meals.
func IsMealSlot(name string) bool {
	_, ok := idealMeals[name]
	return ok
}

// MacroSplit is each macro's rounded share of a meal's calories.
type MacroSplit struct {
	ProteinPct int `json:"protein_pct"`
	CarbsPct   int `json:"carbs_pct"`
	FatsPct    int `json:"fats_pct"`
}

// MealAnalysis is the result of scoring one meal.
type MealAnalysis struct {
	Score    int        `json:"score"`
	Feedback string     `json:"feedback"`
	Calories float64    `json:"calories"`
	Macros   MacroSplit `json:"macros"`
}

// AnalyzeMeal scores a meal's macro split against the slot's ideal ranges.
// In-range macros earn full weight (protein/carbs 35, fats 20, fiber 10); low
// and high values earn partial credit. The total is capped at 100.
func AnalyzeMeal(mealType string, m Macros) MealAnalysis {
	total := CaloriesFromMacros(m.Protein, m.Carbs, m.Fats)
	if total == 0 {
		return MealAnalysis{Score: 0, Feedback: "No data entered"}
	}

	proteinPct := m.Protein * KcalPerGramProtein / total * 100
	carbsPct := m.Carbs * KcalPerGramCarbs / total * 100
	fatsPct := m.Fats * KcalPerGramFat / total * 100
	split := MacroSplit{
		ProteinPct: int(math.Round(proteinPct)),
		CarbsPct:   int(math.Round(carbsPct)),
		FatsPct:    int(math.Round(fatsPct)),
	}

	ideal, ok := idealMeals[mealType]
	if !ok {
		return MealAnalysis{Score: 50, Feedback: "Unknown meal type", Calories: total, Macros: split}
	}

	score := 0
	var notes []string

	if b := ideal.Protein; b != nil {
		s, note := scorePrimary("Protein", proteinPct, b)
		score += s
		notes = append(notes, note)
	}
	if b := ideal.Carbs; b != nil {
		s, note := scorePrimary("Carbs", carbsPct, b)
		score += s
		notes = append(notes, note)
	}
	if b := ideal.Fats; b != nil {
		if b.contains(fatsPct) {
			score += 20
			notes = append(notes, fmt.Sprintf("✓ Fats optimal (%d%%)", split.FatsPct))
		} else {
			score += 10
			dir := "high"
			if fatsPct < b.Min {
				dir = "low"
			}
			notes = append(notes, fmt.Sprintf("⚠ Fats %s (%d%%)", dir, split.FatsPct))
		}
	}
	if b := ideal.Fiber; b != nil {
		fiber := strconv.FormatFloat(m.Fiber, 'f', -1, 64)
		switch {
		case b.contains(m.Fiber):
			score += 10
			notes = append(notes, fmt.Sprintf("✓ Fiber good (%sg)", fiber))
		case m.Fiber < b.Min:
			score += 5
			notes = append(notes, fmt.Sprintf("⚠ Add more fiber (%sg vs %sg+)", fiber, fmtBound(b.Min)))
		}
	}

	return MealAnalysis{
		Score:    min(score, 100),
		Feedback: strings.Join(notes, " • "),
		Calories: total,
		Macros:   split,
	}
}

// scorePrimary scores protein or carbs: 35 in range, 15 low, 20 high.
func scorePrimary(label string, pct float64, b *macroBound) (int, string) {
	rounded := int(math.Round(pct))
	switch {
	case b.contains(pct):
		return 35, fmt.Sprintf("✓ %s optimal (%d%%)", label, rounded)
	case pct < b.Min:
		return 15, fmt.Sprintf("⚠ %s low (%d%% vs %s-%s%%)", label, rounded, fmtBound(b.Min), fmtBound(b.Max))
	default:
		return 20, fmt.Sprintf("⚠ %s high (%d%% vs %s-%s%%)", label, rounded, fmtBound(b.Min), fmtBound(b.Max))
	}
}

func fmtBound(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

// DayNutrition summarises all meals logged on one day.
type DayNutrition struct {
	Score       int                     `json:"score"`
	MealsLogged int                     `json:"meals_logged"`
	Feedback    string                  `json:"feedback"`
	Calories    float64                 `json:"calories"`
	Totals      Macros                  `json:"totals"`
	Meals       map[string]MealAnalysis `json:"meals"`
}

// AnalyzeDay scores each logged meal slot and averages over the slots present.
// Keys outside the four meal slots are ignored.
func AnalyzeDay(meals map[string]Macros) DayNutrition {
	day := DayNutrition{Meals: map[string]MealAnalysis{}}

	total := 0
	for _, slot := range MealSlots {
		m, ok := meals[slot]
		if !ok {
			continue
		}
		a := AnalyzeMeal(slot, m)
		day.Meals[slot] = a
		total += a.Score
		day.MealsLogged++
		day.Calories += CaloriesFromMacros(m.Protein, m.Carbs, m.Fats)
		day.Totals.Protein += m.Protein
		day.Totals.Carbs += m.Carbs
		day.Totals.Fats += m.Fats
		day.Totals.Fiber += m.Fiber
	}

	avg := 0.0
	if day.MealsLogged > 0 {
		avg = float64(total) / float64(day.MealsLogged)
	}
	day.Score = int(math.Round(avg))
	day.Feedback = dayFeedback(day.MealsLogged, avg)
	return day
}

func dayFeedback(logged int, avg float64) string {
	switch {
	case logged == len(MealSlots):
		if avg >= 80 {
			return "Excellent! All meals logged and well-balanced."
		}
		if avg >= 60 {
			return "Good day! Some meals could be better balanced."
		}
		return "All meals logged but check macro balance."
	case logged >= 2:
		return fmt.Sprintf("%d/4 meals logged. Try to complete all meals.", logged)
	case logged == 1:
		return "Only 1 meal logged. Log more meals for better tracking."
	default:
		return "No meals logged today."
	}
}
