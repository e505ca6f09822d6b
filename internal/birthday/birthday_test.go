package birthday

import (
	"testing"
	"time"

	"github.com/theirongolddev/deeday/internal/model"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) model.Date {
	return model.NewDate(y, m, d)
}

func TestCompute_Today(t *testing.T) {
	info := Compute(date(1990, time.March, 15), date(2024, time.March, 15))

	assert.Equal(t, 0, info.DaysUntil)
	assert.Equal(t, 34, info.Age)
	assert.True(t, info.IsToday())
	assert.Equal(t, "🎉 Happy Birthday! Turning 34 today!", info.Message())
}

func TestCompute_LaterThisYear(t *testing.T) {
	info := Compute(date(1990, time.March, 20), date(2024, time.March, 15))

	assert.Equal(t, 5, info.DaysUntil)
	assert.Equal(t, 34, info.Age)
	assert.Equal(t, date(2024, time.March, 20), info.Next)
	assert.Equal(t, "5 day(s) away – turning 34", info.Message())
}

func TestCompute_AlreadyPassed(t *testing.T) {
	today := date(2024, time.March, 15)
	info := Compute(date(1990, time.January, 10), today)

	assert.Equal(t, today.DaysUntil(date(2025, time.January, 10)), info.DaysUntil)
	assert.Equal(t, 301, info.DaysUntil)
	assert.Equal(t, 35, info.Age)
	assert.Equal(t, date(2025, time.January, 10), info.Next)
}

func TestCompute_Tomorrow(t *testing.T) {
	info := Compute(date(2000, time.January, 1), date(2023, time.December, 31))

	assert.Equal(t, 1, info.DaysUntil)
	assert.Equal(t, 24, info.Age)
}

func TestCompute_YesterdayRollsAlmostAYear(t *testing.T) {
	info := Compute(date(2000, time.March, 14), date(2023, time.March, 15))

	assert.Equal(t, 365, info.DaysUntil)
	assert.Equal(t, 24, info.Age)
}

func TestCompute_LeapDayClampsToFeb28(t *testing.T) {
	leapling := date(2000, time.February, 29)

	// Non-leap year: celebrated on Feb 28.
	info := Compute(leapling, date(2023, time.February, 28))
	assert.True(t, info.IsToday())
	assert.Equal(t, 23, info.Age)

	info = Compute(leapling, date(2023, time.February, 20))
	assert.Equal(t, 8, info.DaysUntil)
	assert.Equal(t, date(2023, time.February, 28), info.Next)

	// Leap year: the real day.
	info = Compute(leapling, date(2024, time.February, 28))
	assert.Equal(t, 1, info.DaysUntil)
	assert.Equal(t, date(2024, time.February, 29), info.Next)

	// Passed in a non-leap year, next one is a leap year.
	info = Compute(leapling, date(2023, time.March, 1))
	assert.Equal(t, date(2024, time.February, 29), info.Next)
	assert.Equal(t, 24, info.Age)
}

func TestAnnotateSortWithin(t *testing.T) {
	today := date(2024, time.March, 15)
	members := []model.Member{
		{ID: "a", Name: "Ann", Birthdate: date(1990, time.January, 10)},
		{ID: "b", Name: "Bob", Birthdate: date(1985, time.March, 20)},
		{ID: "c", Name: "Cat", Birthdate: date(2010, time.March, 15)},
		{ID: "d", Name: "Dan", Birthdate: date(1999, time.March, 20)},
	}

	entries := Annotate(members, today)
	assert.Len(t, entries, 4)
	assert.Equal(t, "a", entries[0].Member.ID)

	SortByNext(entries)
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.Member.ID
	}
	assert.Equal(t, []string{"c", "b", "d", "a"}, ids)

	soon := Within(entries, 7)
	assert.Len(t, soon, 3)
}
