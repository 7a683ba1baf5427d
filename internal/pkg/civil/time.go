package civil

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidTime = errors.New("invalid time: expected HH:MM or HH:MM:SS")

const secondsPerDay = 24 * 60 * 60

// Time is a wall-clock time of day with second precision.
type Time struct {
	secs int
}

func ParseTime(s string) (Time, error) {
	for _, layout := range []string{"15:04", "15:04:05"} {
		if len(s) != len(layout) {
			continue
		}
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		return Time{secs: t.Hour()*3600 + t.Minute()*60 + t.Second()}, nil
	}
	return Time{}, ErrInvalidTime
}

func NewTime(hour, minute, second int) (Time, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		return Time{}, ErrInvalidTime
	}
	return Time{secs: hour*3600 + minute*60 + second}, nil
}

func MustParseTime(s string) Time {
	t, err := ParseTime(s)
	if err != nil {
		panic(err)
	}
	return t
}

// TimeFromMicroseconds accepts the microseconds-since-midnight representation
// PostgreSQL uses for TIME. Sub-second precision is dropped.
func TimeFromMicroseconds(us int64) Time {
	secs := int(us / int64(time.Second/time.Microsecond))
	return Time{secs: secs % secondsPerDay}
}

func (t Time) Microseconds() int64 {
	return int64(t.secs) * int64(time.Second/time.Microsecond)
}

func (t Time) Hour() int   { return t.secs / 3600 }
func (t Time) Minute() int { return (t.secs % 3600) / 60 }
func (t Time) Second() int { return t.secs % 60 }

func (t Time) Before(u Time) bool { return t.secs < u.secs }
func (t Time) After(u Time) bool  { return t.secs > u.secs }

func (t Time) Compare(u Time) int {
	switch {
	case t.secs < u.secs:
		return -1
	case t.secs > u.secs:
		return 1
	default:
		return 0
	}
}

// String renders HH:MM, adding :SS only when seconds are set.
func (t Time) String() string {
	if t.Second() == 0 {
		return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
	}
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
}
