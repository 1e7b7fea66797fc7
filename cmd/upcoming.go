package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"soloapp/models"
)

func newUpcomingCommand() *cobra.Command {
	var asCustomer bool

	cmd := &cobra.Command{
		Use:   "upcoming",
		Short: "List upcoming appointments",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := apiClient()

			var err error
			var appointments []models.Appointment
			if asCustomer {
				appointments, err = client.CustomerAppointments(cmd.Context())
			} else {
				appointments, err = client.UpcomingAppointments(cmd.Context())
			}
			if err != nil {
				return err
			}
			if len(appointments) == 0 {
				fmt.Println("No upcoming appointments")
				return nil
			}
			for _, apt := range appointments {
				status := apt.Status
				if status == "" {
					status = models.StatusScheduled
				}
				fmt.Printf("#%d\t%s %s\t%s\t%s\t%s\n",
					apt.ID, apt.Date, apt.StartKey(), apt.Customer, apt.Service, status)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asCustomer, "customer", false, "list your own bookings instead of your schedule")
	return cmd
}
