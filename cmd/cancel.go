package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newCancelCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <appointment-id>",
		Short: "Cancel an appointment, freeing its slot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid appointment id %q", args[0])
			}

			updated, err := apiClient().CancelAppointment(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Printf("Appointment #%d cancelled (%s %s)\n", updated.ID, updated.Date, updated.StartKey())
			return nil
		},
	}
}
