package runner

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Week bounds for an NFL regular season.
const (
	MinWeek = 1
	MaxWeek = 18
)

// WeekRange is a validated inclusive range of weeks to scrape.
type WeekRange struct {
	Start int
	End   int
}

// ParseWeekRange validates raw start and end week inputs. Both must be
// integers in [MinWeek, MaxWeek] and end must not precede start. The error
// text is the exact message shown to the user.
func ParseWeekRange(start, end string) (WeekRange, error) {
	startWeek, err := parseWeek(start, "Start")
	if err != nil {
		return WeekRange{}, err
	}

	endWeek, err := parseWeek(end, "End")
	if err != nil {
		return WeekRange{}, err
	}

	if endWeek < startWeek {
		return WeekRange{}, errors.New("End week must be greater than or equal to start week.")
	}

	return WeekRange{Start: startWeek, End: endWeek}, nil
}

func parseWeek(raw, label string) (int, error) {
	week, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%s week must be a number between %d and %d.", label, MinWeek, MaxWeek)
	}
	if week < MinWeek || week > MaxWeek {
		return 0, fmt.Errorf("%s week must be between %d and %d.", label, MinWeek, MaxWeek)
	}
	return week, nil
}
