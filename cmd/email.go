package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var emailWindow string
var emailDryRun bool

var emailCmd = &cobra.Command{
	Use:   "email <address>",
	Short: "Emails a listening report",
	Long:  `Sends the top artists and top tracks for the chosen window to the given address.`,
	Args:  cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if viper.GetString("from") == "" {
			return fmt.Errorf("required flag(s) \"from\" not set")
		}
		if !emailDryRun && viper.GetString("sendgrid_api_key") == "" {
			return fmt.Errorf("required flag(s) \"sendgrid_api_key\" not set")
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		err := sendEmailReport(args[0], emailWindow, emailDryRun)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(emailCmd)

	emailCmd.Flags().StringVarP(&emailWindow, "window", "w", "medium", "ranking window: short, medium, or long")
	emailCmd.Flags().BoolVar(&emailDryRun, "dry-run", false, "print the report instead of sending it")
}

func sendEmailReport(toAddress, window string, dryRun bool) error {
	snap, err := buildSnapshot()
	if err != nil {
		return err
	}

	label, err := windowLabel(window)
	if err != nil {
		return err
	}

	var body strings.Builder
	body.WriteString(topArtistsReport(snap, window, 25))
	body.WriteString("\n")
	body.WriteString(topTracksReport(snap, window, 25))

	subject := fmt.Sprintf("Listening report, %s", label)
	if dryRun {
		fmt.Printf("Would send %q to %s:\n\n%s", subject, toAddress, body.String())
		return nil
	}

	from := mail.NewEmail("playstats", viper.GetString("from"))
	to := mail.NewEmail(toAddress, toAddress)
	message := mail.NewSingleEmail(from, subject, to, body.String(), body.String())
	client := sendgrid.NewSendClient(viper.GetString("sendgrid_api_key"))
	if _, err := client.Send(message); err != nil {
		return fmt.Errorf("sendEmail: %w", err)
	}

	fmt.Printf("Sent report to %s\n", toAddress)
	return nil
}
