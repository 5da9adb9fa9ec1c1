package booking

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Schedule is the startup configuration seeding the catalog: the dates a
// class runs on and the time slots offered on each of those dates.
type Schedule struct {
	Dates []string `yaml:"dates"`
	Slots []Slot   `yaml:"slots"`
}

// DefaultSchedule returns the compiled-in schedule used when no schedule
// file is given: the four Thursdays of May 2023, two evening classes each.
func DefaultSchedule() Schedule {
	return Schedule{
		Dates: []string{"2023-05-04", "2023-05-11", "2023-05-18", "2023-05-25"},
		Slots: []Slot{
			{Name: "Stretch", Time: "7:30pm-8:30pm"},
			{Name: "Hatha", Time: "8:30pm-9:30pm"},
		},
	}
}

// LoadSchedule reads a schedule from a YAML file. A .env file in the
// working directory is loaded first (if present) and environment variable
// references in the YAML are expanded before unmarshalling.
func LoadSchedule(path string) (Schedule, error) {
	// Missing .env is fine; the file is optional.
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return Schedule{}, fmt.Errorf("read schedule: %w", err)
	}

	expanded := []byte(os.ExpandEnv(string(data)))

	var s Schedule
	if err := yaml.Unmarshal(expanded, &s); err != nil {
		return Schedule{}, fmt.Errorf("parse schedule: %w", err)
	}

	if len(s.Dates) == 0 {
		return Schedule{}, fmt.Errorf("schedule %s lists no dates", path)
	}
	if len(s.Slots) == 0 {
		return Schedule{}, fmt.Errorf("schedule %s lists no slots", path)
	}
	return s, nil
}
