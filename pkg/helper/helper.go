package helper

import (
	"fmt"
	"strings"
	"time"

	"github.com/savioruz/bookease/pkg/constant"
)

// BuildCacheKey builds a cache key based on the provided key and optional postfix
func BuildCacheKey(key string, postfix ...string) string {
	if len(postfix) > 0 && postfix[0] != "" {
		return fmt.Sprintf("%s:cache:%s:%s", constant.CacheParentKey, key, postfix[0])
	}

	return fmt.Sprintf("%s:cache:%s", constant.CacheParentKey, key)
}

// SlotsCacheKey is the cache key holding the booked labels of one service day.
func SlotsCacheKey(serviceID, date string) string {
	return BuildCacheKey(constant.CacheSlotsKey, serviceID+":"+date)
}

// SplitList splits a comma separated env value, dropping blanks.
func SplitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))

	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}

// IsKnownSlot reports whether label is one of the bookable time labels.
func IsKnownSlot(label string, slots []string) bool {
	for _, s := range slots {
		if s == label {
			return true
		}
	}

	return false
}

// IsBookingDateValid checks the date parses and is today or later in the app timezone.
func IsBookingDateValid(bookingDate string) (bool, error) {
	date, err := time.ParseInLocation(constant.DateFormat, bookingDate, appLocation())
	if err != nil {
		return false, err
	}

	now := NowInAppTimezone()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, appLocation())

	return !date.Before(today), nil
}

func appLocation() *time.Location {
	if AppTimezone != nil {
		return AppTimezone
	}

	return time.UTC
}
