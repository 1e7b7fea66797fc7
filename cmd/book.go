package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"soloapp/config"
	"soloapp/models"
	"soloapp/services/availability"
	"soloapp/services/booking"
	"soloapp/utils"
)

func newBookCommand() *cobra.Command {
	var (
		dateStr      string
		timeStr      string
		service      string
		name         string
		phone        string
		notes        string
		contactName  string
		contactEmail string
		contactPhone string
	)

	cmd := &cobra.Command{
		Use:   "book <professional-id>",
		Short: "Book an appointment slot",
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

			ctx := cmd.Context()
			client := apiClient()
			professional, err := client.GetProfessional(ctx, id)
			if err != nil {
				return err
			}

			svc := availability.NewService(client)
			svc.SlotDuration = time.Duration(config.AppConfig.SlotDurationMin) * time.Minute
			flow := booking.NewFlow(svc, client, booking.NewMemoryStore(config.SessionTTL()))

			authenticated := config.AppConfig.APIToken != "" || flagToken != ""
			session, err := flow.Start(ctx, professional, authenticated)
			if err != nil {
				return err
			}

			session, err = flow.SelectDate(ctx, session.SessionID, date)
			if err != nil {
				return err
			}
			if session.Degraded {
				fmt.Println("warning: existing bookings could not be fetched; the chosen time may already be taken")
			}
			if len(session.Slots) == 0 {
				return fmt.Errorf("no available time on %s", dateStr)
			}

			if _, err = flow.SelectSlot(ctx, session.SessionID, timeStr); err != nil {
				return err
			}

			form := models.BookingForm{
				Service:           service,
				Name:              name,
				NotificationPhone: phone,
				Notes:             notes,
				Contact: models.ContactInfo{
					Name:  contactName,
					Email: contactEmail,
					Phone: contactPhone,
				},
			}
			session, err = flow.Confirm(ctx, session.SessionID, form)
			if err != nil {
				var conflict *booking.ConflictError
				if errors.As(err, &conflict) {
					fmt.Println(conflict.Error())
					fmt.Println("Currently available times:")
					for _, slot := range session.Slots {
						fmt.Printf("  %s\t(%s)\n", slot.Label, slot.Time24)
					}
				}
				return err
			}

			fmt.Printf("Appointment booked: #%d on %s at %s\n",
				session.AppointmentID, session.Date, session.SelectedSlot.Label)
			fmt.Println("You will receive a message with more details on the number provided shortly.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&dateStr, "date", "d", "", "calendar date, yyyy-MM-dd (required)")
	cmd.Flags().StringVarP(&timeStr, "time", "t", "", "slot start, HH:mm (required)")
	cmd.Flags().StringVarP(&service, "service", "s", "", "service name (required)")
	cmd.Flags().StringVarP(&name, "name", "n", "", "your name (required)")
	cmd.Flags().StringVarP(&phone, "phone", "p", "", "phone number for notifications (required)")
	cmd.Flags().StringVar(&notes, "notes", "", "additional details")
	cmd.Flags().StringVar(&contactName, "contact-name", "", "guest contact name")
	cmd.Flags().StringVar(&contactEmail, "contact-email", "", "guest contact email")
	cmd.Flags().StringVar(&contactPhone, "contact-phone", "", "guest contact phone")
	cmd.MarkFlagRequired("date")
	cmd.MarkFlagRequired("time")
	return cmd
}
