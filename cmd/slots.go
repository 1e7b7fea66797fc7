package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"soloapp/config"
	"soloapp/services/availability"
	"soloapp/utils"
)

func newSlotsCommand() *cobra.Command {
	var dateStr string

	cmd := &cobra.Command{
		Use:   "slots <professional-id>",
		Short: "List bookable time slots for a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid professional id %q", args[0])
			}
			date, err := utils.ParseDate(dateStr)
			if err != nil {
				return err
			}

			client := apiClient()
			professional, err := client.GetProfessional(cmd.Context(), id)
			if err != nil {
				return err
			}

			svc := availability.NewService(client)
			svc.SlotDuration = time.Duration(config.AppConfig.SlotDurationMin) * time.Minute

			res, err := svc.AvailableSlots(cmd.Context(), id, date, professional.WorkingHours)
			if err != nil {
				return err
			}
			if res.Degraded {
				fmt.Println("warning: existing bookings could not be fetched; some listed times may already be taken")
			}
			if len(res.Slots) == 0 {
				fmt.Println("no available time today")
				return nil
			}
			for _, slot := range res.Slots {
				fmt.Printf("%s\t(%s)\n", slot.Label, slot.Time24)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dateStr, "date", "d", "", "calendar date, yyyy-MM-dd (required)")
	cmd.MarkFlagRequired("date")
	return cmd
}
