package analysis

// Sleep scoring follows circadian timing: melatonin peaks roughly 21:00-23:00,
// the cortisol awakening response favours waking 06:00-06:30, and a full night
// is five 90-minute cycles (7.5-8h). All windows are closed at the stated edges.

// Sleep ratings derived from the average of the three dimension scores.
const (
	RatingGreat      = "great"
	RatingOptimal    = "optimal"
	RatingSuboptimal = "suboptimal"
)

// Score is a 0-100 score for one dimension with human-readable feedback.
type Score struct {
	Score    int    `json:"score"`
	Feedback string `json:"feedback"`
}

// DurationScore is the duration dimension, carrying the hours it was scored on.
type DurationScore struct {
	Score
	Hours float64 `json:"hours"`
}

// SleepBreakdown holds the per-dimension scores of a night.
type SleepBreakdown struct {
	Duration DurationScore `json:"duration"`
	Bedtime  Score         `json:"bedtime"`
	Wake     Score         `json:"wake"`
}

// SleepAnalysis is the full result of AnalyzeSleep.
type SleepAnalysis struct {
	Bedtime      string         `json:"bedtime"`
	WakeTime     string         `json:"wake_time"`
	DurationMins int            `json:"duration_mins"`
	Duration     string         `json:"duration"`
	AverageScore float64        `json:"average_score"`
	Rating       string         `json:"rating"`
	Breakdown    SleepBreakdown `json:"breakdown"`
}

// AnalyzeSleep scores a night from its bedtime and wake time ("HH:MM").
func AnalyzeSleep(bedtime, wakeTime string) (SleepAnalysis, error) {
	bed, err := TimeToMinutes(bedtime)
	if err != nil {
		return SleepAnalysis{}, err
	}
	wake, err := TimeToMinutes(wakeTime)
	if err != nil {
		return SleepAnalysis{}, err
	}
	durationMins, err := SleepDurationMinutes(bedtime, wakeTime)
	if err != nil {
		return SleepAnalysis{}, err
	}

	breakdown := SleepBreakdown{
		Duration: ScoreSleepDuration(durationMins),
		Bedtime:  ScoreBedtime(bed),
		Wake:     ScoreWakeTime(wake),
	}
	avg := float64(breakdown.Duration.Score.Score+breakdown.Bedtime.Score+breakdown.Wake.Score) / 3

	return SleepAnalysis{
		Bedtime:      bedtime,
		WakeTime:     wakeTime,
		DurationMins: durationMins,
		Duration:     FormatDuration(durationMins),
		AverageScore: avg,
		Rating:       SleepRating(avg),
		Breakdown:    breakdown,
	}, nil
}

// SleepRating maps an average dimension score to a rating.
func SleepRating(avg float64) string {
	switch {
	case avg >= 80:
		return RatingGreat
	case avg >= 60:
		return RatingOptimal
	default:
		return RatingSuboptimal
	}
}

// ScoreSleepDuration scores a night's length given in minutes.
func ScoreSleepDuration(durationMins int) DurationScore {
	hours := float64(durationMins) / 60
	return DurationScore{Score: ScoreSleepHours(hours), Hours: hours}
}

// ScoreSleepHours scores a night's length given in hours.
func ScoreSleepHours(hours float64) Score {
	switch {
	case hours >= 7.5 && hours <= 8:
		return Score{100, "Perfect! 7.5-8h aligns with 5 complete sleep cycles (90 min each)."}
	case (hours >= 7 && hours < 7.5) || (hours > 8 && hours <= 8.5):
		return Score{90, "Excellent duration. You're getting enough deep and REM sleep."}
	case (hours >= 6.5 && hours < 7) || (hours > 8.5 && hours <= 9):
		return Score{75, "Good duration, though closer to 7.5-8h optimizes sleep cycle completion."}
	case (hours >= 6 && hours < 6.5) || (hours > 9 && hours <= 9.5):
		return Score{60, "Acceptable, but you may miss out on optimal hormone synthesis cycles."}
	case hours >= 5 && hours < 6:
		return Score{40, "Too short. You're likely missing crucial REM sleep and recovery time."}
	case hours < 5:
		return Score{20, "Critically short. Chronic sleep debt affects cognition and immune function."}
	default:
		return Score{50, "Oversleeping can cause grogginess and disrupt your natural rhythm."}
	}
}

// ScoreBedtime scores minutes since midnight at which sleep started. Rows are
// checked in order, so every bedtime before 20:00, including 00:00-02:00,
// scores as early. Values past 1440 are accepted for callers that count
// post-midnight bedtimes upward.
func ScoreBedtime(mins int) Score {
	switch {
	case mins >= 1290 && mins <= 1350:
		return Score{100, "Perfect timing! Melatonin peaks and core body temp drops now."}
	case (mins >= 1260 && mins < 1290) || (mins > 1350 && mins <= 1380):
		return Score{90, "Excellent! You're aligning with your natural melatonin curve."}
	case (mins >= 1230 && mins < 1260) || (mins > 1380 && mins <= 1410):
		return Score{75, "Good timing, though melatonin synthesis is most active 21:00-23:00."}
	case (mins >= 1200 && mins < 1230) || (mins > 1410 && mins <= 1440):
		return Score{60, "Acceptable, but closer to 21:30-22:30 optimizes melatonin response."}
	case mins < 1200:
		return Score{50, "Too early. Melatonin hasn't peaked yet; you may struggle to fall asleep."}
	default:
		return Score{40, "Past midnight disrupts cortisol's natural rise pattern for morning alertness."}
	}
}

// ScoreWakeTime scores minutes since midnight at which the sleeper woke.
func ScoreWakeTime(mins int) Score {
	switch {
	case mins >= 360 && mins <= 390:
		return Score{100, "Perfect! Cortisol rises naturally now, priming alertness and energy."}
	case (mins >= 330 && mins < 360) || (mins > 390 && mins <= 420):
		return Score{90, "Excellent timing with your cortisol awakening response (CAR)."}
	case (mins >= 300 && mins < 330) || (mins > 420 && mins <= 450):
		return Score{75, "Good, though waking 06:00-06:30 better aligns with natural cortisol rise."}
	case (mins >= 270 && mins < 300) || (mins > 450 && mins <= 480):
		return Score{60, "Acceptable, but slightly off peak cortisol timing for sustained energy."}
	case mins < 270:
		return Score{40, "Very early. You're waking before body temp and cortisol start rising."}
	case mins > 480 && mins <= 540:
		return Score{50, "Late wake. Your cortisol peak has passed, which can cause morning sluggishness."}
	default:
		return Score{30, "Very late. This disrupts your circadian rhythm and can reduce evening melatonin."}
	}
}
