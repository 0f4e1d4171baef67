package insights

import (
	"fmt"
	"time"

	"pet-exercise-tracker/internal/domain/exercises"
	"pet-exercise-tracker/internal/domain/moods"
	"pet-exercise-tracker/internal/platform/civil"
)

// BuildCalendar arma una celda por día del mes. Entradas fuera del mes se ignoran.
func BuildCalendar(petID string, month time.Time, entries []exercises.Entry, moodEntries []moods.Entry) Calendar {
	start := civil.MonthStart(month)
	n := civil.DaysInMonth(start)

	days := make([]CalendarDay, n)
	for i := range days {
		days[i].Date = civil.AddDays(start, i)
	}

	seenTypes := make([]map[exercises.Type]struct{}, n)
	var totals Totals
	for _, e := range entries {
		i := civil.DaysBetween(start, e.Date)
		if i < 0 || i >= n {
			continue
		}
		d := &days[i]
		if d.Exercises == 0 {
			totals.ActiveDays++
		}
		d.Exercises++
		d.Minutes += e.DurationMinutes
		d.Calories += e.Calories

		if seenTypes[i] == nil {
			seenTypes[i] = map[exercises.Type]struct{}{}
		}
		seenTypes[i][e.Type] = struct{}{}

		totals.Exercises++
		totals.Minutes += e.DurationMinutes
		totals.Calories += e.Calories
	}

	for i := range days {
		if seenTypes[i] == nil {
			continue
		}
		for _, t := range exercises.AllTypes {
			if _, ok := seenTypes[i][t]; ok {
				days[i].Types = append(days[i].Types, t)
			}
		}
	}

	for _, m := range moodEntries {
		i := civil.DaysBetween(start, m.Date)
		if i < 0 || i >= n {
			continue
		}
		days[i].Mood = m.Mood
	}

	return Calendar{
		PetID:  petID,
		Month:  start,
		Days:   days,
		Totals: totals,
	}
}

// BuildStats agrega entries en [from, to] (inclusive). Incluye buckets vacíos.
func BuildStats(petID string, from, to time.Time, group Group, entries []exercises.Entry, moodEntries []moods.Entry) Stats {
	from, to = civil.Day(from), civil.Day(to)

	st := Stats{
		PetID: petID,
		From:  from,
		To:    to,
		Group: group,
	}

	st.Buckets = emptyBuckets(from, to, group)
	index := make(map[time.Time]int, len(st.Buckets))
	for i, b := range st.Buckets {
		index[b.Start] = i
	}

	byType := map[exercises.Type]*TypeBreakdown{}
	active := map[time.Time]struct{}{}

	for _, e := range entries {
		d := civil.Day(e.Date)
		if d.Before(from) || d.After(to) {
			continue
		}

		if i, ok := index[bucketStart(d, group)]; ok {
			b := &st.Buckets[i]
			b.Exercises++
			b.Minutes += e.DurationMinutes
			b.Calories += e.Calories
		}

		tb, ok := byType[e.Type]
		if !ok {
			tb = &TypeBreakdown{Type: e.Type}
			byType[e.Type] = tb
		}
		tb.Exercises++
		tb.Minutes += e.DurationMinutes
		tb.Calories += e.Calories

		st.Totals.Exercises++
		st.Totals.Minutes += e.DurationMinutes
		st.Totals.Calories += e.Calories
		active[d] = struct{}{}
	}
	st.Totals.ActiveDays = len(active)

	for _, t := range exercises.AllTypes {
		if tb, ok := byType[t]; ok {
			st.ByType = append(st.ByType, *tb)
		}
	}

	moodCounts := map[moods.Mood]int{}
	for _, m := range moodEntries {
		d := civil.Day(m.Date)
		if d.Before(from) || d.After(to) {
			continue
		}
		moodCounts[m.Mood]++
	}
	for _, m := range moods.AllMoods {
		if c := moodCounts[m]; c > 0 {
			st.Moods = append(st.Moods, MoodCount{Mood: m, Count: c})
		}
	}

	st.CurrentStreak, st.LongestStreak = streaks(from, to, active)
	if st.Totals.ActiveDays > 0 {
		st.AvgMinutesPerActiveDay = float64(st.Totals.Minutes) / float64(st.Totals.ActiveDays)
	}
	return st
}

// streaks recorre [from, to] una vez. current = racha que termina en to.
func streaks(from, to time.Time, active map[time.Time]struct{}) (current, longest int) {
	run := 0
	for d := from; !d.After(to); d = civil.AddDays(d, 1) {
		if _, ok := active[d]; ok {
			run++
			if run > longest {
				longest = run
			}
			continue
		}
		run = 0
	}
	return run, longest
}

func emptyBuckets(from, to time.Time, group Group) []Bucket {
	out := make([]Bucket, 0)
	for start := bucketStart(from, group); !start.After(to); start = nextBucket(start, group) {
		out = append(out, Bucket{Start: start, Label: bucketLabel(start, group)})
	}
	return out
}

func bucketStart(d time.Time, group Group) time.Time {
	switch group {
	case GroupWeek:
		return civil.WeekStart(d)
	case GroupMonth:
		return civil.MonthStart(d)
	default:
		return civil.Day(d)
	}
}

func nextBucket(start time.Time, group Group) time.Time {
	switch group {
	case GroupWeek:
		return civil.AddDays(start, 7)
	case GroupMonth:
		return start.AddDate(0, 1, 0)
	default:
		return civil.AddDays(start, 1)
	}
}

func bucketLabel(start time.Time, group Group) string {
	switch group {
	case GroupWeek:
		y, w := start.ISOWeek()
		return fmt.Sprintf("%d-W%02d", y, w)
	case GroupMonth:
		return start.Format(civil.MonthLayout)
	default:
		return civil.Format(start)
	}
}
