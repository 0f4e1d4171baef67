package reports

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"pet-exercise-tracker/internal/domain/exercises"
	"pet-exercise-tracker/internal/domain/insights"
	"pet-exercise-tracker/internal/domain/moods"
	"pet-exercise-tracker/internal/domain/pets"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleReport() Report {
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC)

	ex := []exercises.Entry{
		{ID: "e1", PetID: "pet-1", Date: from, DurationMinutes: 30, Calories: 150, Type: exercises.TypeWalk, Intensity: exercises.IntensityModerate, Location: "Park", Notes: "<b>muddy</b>"},
		{ID: "e2", PetID: "pet-1", Date: from.AddDate(0, 0, 2), DurationMinutes: 20, Calories: 160, Type: exercises.TypeRun, Intensity: exercises.IntensityHigh},
	}
	md := []moods.Entry{
		{PetID: "pet-1", Date: from, Mood: moods.MoodHappy, Note: "zoomies"},
	}

	return Report{
		Pet: pets.Pet{
			ID:           "pet-1",
			Name:         "Rex & Co",
			Age:          3,
			Weight:       21.5,
			HealthStatus: pets.HealthGood,
			Image:        "data:image/png;base64,iVBORw0KGgo=",
		},
		From:        from,
		To:          to,
		Exercises:   ex,
		Moods:       md,
		Stats:       insights.BuildStats("pet-1", from, to, insights.GroupDay, ex, md),
		GeneratedAt: time.Date(2025, 3, 8, 9, 30, 0, 0, time.UTC),
	}
}

func TestRenderHTML_PrintableView(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderHTML(&buf, sampleReport()))

	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)

	assert.Equal(t, "Rex & Co", doc.Find("#pet-name").Text())
	assert.Equal(t, "2025-03-01 to 2025-03-07", strings.TrimSpace(doc.Find("#report-range").Text()))
	assert.Equal(t, "2", doc.Find(`td[data-field="exercises"]`).Text())
	assert.Equal(t, "310", doc.Find(`td[data-field="calories"]`).Text())

	rows := doc.Find("#exercises tr.exercise")
	require.Equal(t, 2, rows.Length())
	first := rows.First().Find("td")
	assert.Equal(t, "walk", first.Eq(1).Text())
	assert.Equal(t, "<b>muddy</b>", first.Eq(6).Text(), "las notas se escapan")
	assert.Equal(t, "happy", first.Eq(7).Text())

	src, ok := doc.Find("img.pet-image").Attr("src")
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(src, "data:image/png;base64,"))

	assert.Equal(t, 1, doc.Find("#moods tr.mood").Length())
}

func TestRenderHTML_EmptyPeriod(t *testing.T) {
	rep := sampleReport()
	rep.Exercises = nil
	rep.Moods = nil

	var buf bytes.Buffer
	require.NoError(t, RenderHTML(&buf, rep))

	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	assert.Equal(t, 0, doc.Find("#exercises").Length())
	assert.Equal(t, 2, doc.Find("p.empty").Length())
}

func TestRenderCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderCSV(&buf, sampleReport()))

	recs, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, csvHeader, recs[0])
	assert.Equal(t, []string{"2025-03-01", "walk", "moderate", "30", "150", "Park", "<b>muddy</b>", "happy"}, recs[1])
	assert.Equal(t, "", recs[2][7])
}

func TestRenderXLSX_Sheets(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderXLSX(&buf, sampleReport()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{SheetSummary, SheetExercises, SheetMoods}, f.GetSheetList())

	rows, err := f.GetRows(SheetExercises)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "date", rows[0][0])
	assert.Equal(t, []string{"2025-03-03", "run", "high", "20", "160"}, rows[2][:5])

	moodRows, err := f.GetRows(SheetMoods)
	require.NoError(t, err)
	require.Len(t, moodRows, 2)
	assert.Equal(t, []string{"2025-03-01", "happy", "zoomies"}, moodRows[1])

	name, err := f.GetCellValue(SheetSummary, "B1")
	require.NoError(t, err)
	assert.Equal(t, "Rex & Co", name)
}

func TestRenderJSON_Document(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleReport(), FormatJSON))

	var doc Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "pet-1", doc.Pet.ID)
	assert.Equal(t, "2025-03-01", doc.From)
	assert.Len(t, doc.Exercises, 2)
	assert.Equal(t, 1, doc.Stats.Moods[moods.MoodHappy])
	assert.Len(t, doc.Stats.Buckets, 7)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	f, err = ParseFormat(" XLSX ")
	require.NoError(t, err)
	assert.Equal(t, FormatXLSX, f)
	assert.True(t, f.Attachment())

	_, err = ParseFormat("pdf")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "rex---co-2025-03-01_2025-03-07.csv", Filename(sampleReport(), FormatCSV))
}
