package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newHoursCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "hours <professional-id>",
		Short: "Show a professional's weekly working hours",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid professional id %q", args[0])
			}

			entries, err := apiClient().GetWorkingHours(cmd.Context(), id)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("No working hours configured")
				return nil
			}
			for _, wh := range entries {
				if wh.IsSelected {
					fmt.Printf("%-10s %s - %s\n", wh.Day, wh.StartTime, wh.EndTime)
				} else {
					fmt.Printf("%-10s closed\n", wh.Day)
				}
			}
			return nil
		},
	}
}
