package planner

import "fmt"

// Config defines planning parameters loaded from configuration.
type Config struct {
	// DailyCapacityMinutes is the work budget available on each scheduled day.
	DailyCapacityMinutes int `json:"daily_capacity_minutes" yaml:"daily_capacity_minutes"`
	// DayStartHour is the local hour at which the daily work window opens.
	DayStartHour int `json:"day_start_hour" yaml:"day_start_hour"`
	// MaxWeekdays bounds how many candidate weekdays are offered to the placer.
	MaxWeekdays int `json:"max_weekdays" yaml:"max_weekdays"`
	// LookaheadDays bounds how many calendar days are examined for weekdays.
	LookaheadDays int `json:"lookahead_days" yaml:"lookahead_days"`
}

// SetDefaults applies the standard 4pm-9pm service window over a
// 60-weekday horizon.
func (c *Config) SetDefaults() {
	if c.DailyCapacityMinutes == 0 {
		c.DailyCapacityMinutes = 300
	}
	if c.DayStartHour == 0 {
		c.DayStartHour = 16
	}
	if c.MaxWeekdays == 0 {
		c.MaxWeekdays = 60
	}
	if c.LookaheadDays == 0 {
		c.LookaheadDays = 90
	}
}

// Validate checks that the window parameters are usable.
func (c Config) Validate() error {
	if c.DailyCapacityMinutes <= 0 {
		return fmt.Errorf("daily_capacity_minutes must be positive")
	}
	if c.DayStartHour < 0 || c.DayStartHour > 23 {
		return fmt.Errorf("day_start_hour must be between 0 and 23")
	}
	if c.MaxWeekdays <= 0 {
		return fmt.Errorf("max_weekdays must be positive")
	}
	if c.LookaheadDays <= 0 {
		return fmt.Errorf("lookahead_days must be positive")
	}
	return nil
}
