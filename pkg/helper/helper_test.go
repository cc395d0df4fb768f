package helper

import (
	"testing"
	"time"

	"github.com/savioruz/bookease/pkg/constant"
	"github.com/stretchr/testify/assert"
)

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "bookease:cache:slots", BuildCacheKey("slots"))
	assert.Equal(t, "bookease:cache:slots:2025-03-10", BuildCacheKey("slots", "2025-03-10"))
	assert.Equal(t, "bookease:cache:slots", BuildCacheKey("slots", ""))
}

func TestSlotsCacheKey(t *testing.T) {
	assert.Equal(t, "bookease:cache:slots:1:2025-03-10", SlotsCacheKey("1", "2025-03-10"))
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"09:00 AM", "10:00 AM"}, SplitList(" 09:00 AM, ,10:00 AM,"))
	assert.Empty(t, SplitList(""))
}

func TestIsKnownSlot(t *testing.T) {
	slots := []string{"09:00 AM", "10:00 AM"}

	assert.True(t, IsKnownSlot("10:00 AM", slots))
	assert.False(t, IsKnownSlot("10:30 AM", slots))
}

func TestIsBookingDateValid(t *testing.T) {
	AppTimezone = time.UTC
	defer func() { AppTimezone = nil }()

	today := NowInAppTimezone().Format(constant.DateFormat)
	yesterday := NowInAppTimezone().AddDate(0, 0, -1).Format(constant.DateFormat)
	nextWeek := NowInAppTimezone().AddDate(0, 0, 7).Format(constant.DateFormat)

	t.Run("success: today", func(t *testing.T) {
		ok, err := IsBookingDateValid(today)
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("success: future", func(t *testing.T) {
		ok, err := IsBookingDateValid(nextWeek)
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("error: past", func(t *testing.T) {
		ok, err := IsBookingDateValid(yesterday)
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("error: malformed", func(t *testing.T) {
		_, err := IsBookingDateValid("10/03/2025")
		assert.Error(t, err)
	})
}
