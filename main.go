package main

import (
	"fmt"
	"os"

	"class-booking/booking"

	"github.com/spf13/cobra"
)

var scheduleFile string

func loadSchedule() (booking.Schedule, error) {
	if scheduleFile == "" {
		return booking.DefaultSchedule(), nil
	}
	return booking.LoadSchedule(scheduleFile)
}

func newManager() (*booking.Manager, error) {
	schedule, err := loadSchedule()
	if err != nil {
		return nil, err
	}
	// Bookings are held in memory only and discarded on exit.
	return booking.NewManager(schedule, booking.MemoryDSN)
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "classbook",
		Short: "Interactive class booking shell",
		Long: `classbook lists a fixed schedule of class sessions and lets you book
a seat by name, cancel bookings, and review who is booked into each class.
Bookings last only for the lifetime of the shell.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, err := newManager()
			if err != nil {
				return err
			}
			defer mgr.Close()
			runShell(mgr)
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&scheduleFile, "schedule", "", "path to a schedule YAML file (default: built-in schedule)")

	scheduleCmd := &cobra.Command{
		Use:   "schedule",
		Short: "Print the class schedule and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, err := newManager()
			if err != nil {
				return err
			}
			defer mgr.Close()
			printSchedule(os.Stdout, mgr)
			return nil
		},
	}
	rootCmd.AddCommand(scheduleCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
