package main

import (
	"flag"
	"fmt"
	"os"

	"class-booking/booking"
)

// check_schedule validates a schedule YAML file before it is handed to the
// booking shell: it loads the file, expands it into the full session
// catalog, and verifies every time range parses.
func main() {
	path := flag.String("file", "schedule.yaml", "schedule YAML file to check")
	flag.Parse()

	schedule, err := booking.LoadSchedule(*path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading schedule: %v\n", err)
		os.Exit(1)
	}

	sessions := booking.BuildCatalog(schedule.Dates, schedule.Slots)

	badTimes := 0
	for _, s := range sessions {
		if _, err := booking.ParseStart(s.Date, s.Time); err != nil {
			fmt.Fprintf(os.Stderr, "Bad time range on %s %s: %q\n", s.Date, s.Name, s.Time)
			badTimes++
		}
	}

	fmt.Printf("Schedule %s: %d dates x %d slots = %d sessions\n",
		*path, len(schedule.Dates), len(schedule.Slots), len(sessions))

	for _, group := range booking.GroupByDate(booking.SortedByDateTime(sessions)) {
		fmt.Printf("\n%s\n", group.Date)
		for _, s := range group.Sessions {
			fmt.Printf("  [%d] %s - %s\n", s.ID, s.Name, s.Time)
		}
	}

	if badTimes > 0 {
		fmt.Fprintf(os.Stderr, "\n%d session(s) have unparseable time ranges\n", badTimes)
		os.Exit(1)
	}
}
