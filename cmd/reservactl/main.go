// reservactl is a small operator CLI for the reservation platform API:
// listing doctors, inspecting slots, booking and cancelling appointments,
// and submitting ratings.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/medreserve/medreserve-go/internal/booking"
	"github.com/medreserve/medreserve-go/internal/config"
	"github.com/medreserve/medreserve-go/internal/dashboard"
	"github.com/medreserve/medreserve-go/internal/observability/metrics"
	"github.com/medreserve/medreserve-go/internal/rating"
	"github.com/medreserve/medreserve-go/internal/reserve"
	"github.com/medreserve/medreserve-go/pkg/logging"
)

const usage = `usage: reservactl <command> [flags]

commands:
  doctors                     list active doctors with ratings
  slots    -doctor <id> [-date YYYY-MM-DD]
                              show a doctor's slots for a day
  book     -doctor <id> -patient <id> -slot <id> -reason <text> [-notes <text>] [-date YYYY-MM-DD]
                              book an appointment
  cancel   -appointment <id> [-reason <text>]
                              cancel an appointment
  next     -patient <id>      show a patient's next appointment
  rate     -doctor <id> -stars <1-5> [-comment <text>]
                              create or update a rating
`

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	logger := logging.NewWithWriter(cfg.LogLevel, os.Stderr)

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, cfg.RequestTimeout)
	defer cancel()

	client, err := newClient(cfg, logger)
	if err != nil {
		logger.Error("client init failed", "error", err)
		os.Exit(1)
	}

	if err := run(ctx, os.Args[1], os.Args[2:], cfg, logger, client); err != nil {
		logger.Error("command failed", "command", os.Args[1], "error", err)
		os.Exit(1)
	}
}

func newClient(cfg *config.Config, logger *logging.Logger) (*reserve.Client, error) {
	var tokens reserve.TokenSource
	switch {
	case cfg.APIToken != "":
		tokens = reserve.StaticToken(cfg.APIToken)
	case cfg.APIEmail != "":
		loginClient, err := reserve.New(reserve.Config{
			BaseURL: cfg.APIBaseURL,
			Timeout: cfg.RequestTimeout,
			Logger:  logger,
		})
		if err != nil {
			return nil, err
		}
		tokens = reserve.NewCredentialsSource(loginClient, cfg.APIEmail, cfg.APIPassword)
	}

	return reserve.New(reserve.Config{
		BaseURL:   cfg.APIBaseURL,
		Tokens:    tokens,
		Timeout:   cfg.RequestTimeout,
		Logger:    logger,
		Metrics:   metrics.NewClientMetrics(prometheus.NewRegistry()),
		UserAgent: cfg.UserAgent,
	})
}

func run(ctx context.Context, command string, args []string, cfg *config.Config, logger *logging.Logger, client *reserve.Client) error {
	switch command {
	case "doctors":
		return runDoctors(ctx, cfg, logger, client)
	case "slots":
		return runSlots(ctx, args, client)
	case "book":
		return runBook(ctx, args, logger, client)
	case "cancel":
		return runCancel(ctx, args, client)
	case "next":
		return runNext(ctx, args, client)
	case "rate":
		return runRate(ctx, args, client)
	case "help", "-h", "--help":
		fmt.Fprint(os.Stderr, usage)
		return nil
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func runDoctors(ctx context.Context, cfg *config.Config, logger *logging.Logger, client *reserve.Client) error {
	lister := dashboard.NewDoctorLister(client, logger, cfg.EnrichConcurrency)
	doctors, err := lister.List(ctx)
	if err != nil {
		return err
	}
	for _, d := range doctors {
		fmt.Printf("%-5d %-30s %-20s %.1f (%d ratings)\n",
			d.ID, d.FullName, d.Specialization, d.AverageRating, d.TotalRatings)
	}
	return nil
}

func runSlots(ctx context.Context, args []string, client *reserve.Client) error {
	fs := flag.NewFlagSet("slots", flag.ExitOnError)
	doctorID := fs.Int64("doctor", 0, "doctor id")
	date := fs.String("date", time.Now().Format("2006-01-02"), "day to show")
	_ = fs.Parse(args)
	if *doctorID == 0 {
		return fmt.Errorf("slots: -doctor is required")
	}
	day, err := time.Parse("2006-01-02", *date)
	if err != nil {
		return fmt.Errorf("slots: invalid -date: %w", err)
	}

	slots, err := client.ScheduleWithStatus(ctx, *doctorID, day, day.AddDate(0, 0, 1))
	if err != nil {
		return err
	}
	for _, slot := range slots {
		marker := " "
		if booking.Selectable(slot) {
			marker = "*"
		}
		fmt.Printf("%s %-6d %s - %s  %s\n", marker, slot.ID,
			slot.StartTime.Format("15:04"), slot.EndTime.Format("15:04"), slot.Status)
	}
	return nil
}

func runBook(ctx context.Context, args []string, logger *logging.Logger, client *reserve.Client) error {
	fs := flag.NewFlagSet("book", flag.ExitOnError)
	doctorID := fs.Int64("doctor", 0, "doctor id")
	patientID := fs.Int64("patient", 0, "patient id")
	slotID := fs.Int64("slot", 0, "slot id from the slots command")
	reason := fs.String("reason", "", "visit reason")
	notes := fs.String("notes", "", "additional notes")
	date := fs.String("date", time.Now().Format("2006-01-02"), "day the slot is on")
	_ = fs.Parse(args)
	if *doctorID == 0 || *patientID == 0 || *slotID == 0 || *reason == "" {
		return fmt.Errorf("book: -doctor, -patient, -slot, and -reason are required")
	}
	day, err := time.Parse("2006-01-02", *date)
	if err != nil {
		return fmt.Errorf("book: invalid -date: %w", err)
	}

	flow := booking.NewFlow(client, logger, *doctorID, *patientID)
	if err := flow.LoadSlots(ctx, day); err != nil {
		return err
	}
	if err := flow.SelectSlot(*slotID); err != nil {
		return err
	}
	appt, err := flow.Book(ctx, *reason, *notes)
	if err != nil {
		return err
	}
	fmt.Printf("booked appointment %d at %s (%s)\n",
		appt.ID, appt.AppointmentTime.Format("2006-01-02 15:04"), appt.Status.Display())
	return nil
}

func runCancel(ctx context.Context, args []string, client *reserve.Client) error {
	fs := flag.NewFlagSet("cancel", flag.ExitOnError)
	appointmentID := fs.Int64("appointment", 0, "appointment id")
	reason := fs.String("reason", "", "cancellation reason")
	_ = fs.Parse(args)
	if *appointmentID == 0 {
		return fmt.Errorf("cancel: -appointment is required")
	}
	if err := client.CancelAppointment(ctx, *appointmentID, *reason); err != nil {
		return err
	}
	fmt.Printf("cancelled appointment %d\n", *appointmentID)
	return nil
}

func runNext(ctx context.Context, args []string, client *reserve.Client) error {
	fs := flag.NewFlagSet("next", flag.ExitOnError)
	patientID := fs.Int64("patient", 0, "patient id")
	_ = fs.Parse(args)
	if *patientID == 0 {
		return fmt.Errorf("next: -patient is required")
	}
	appt, err := client.NextPatientAppointment(ctx, *patientID)
	if err != nil {
		return err
	}
	if appt == nil {
		fmt.Println("no upcoming appointment")
		return nil
	}
	fmt.Printf("appointment %d with %s at %s (%s)\n",
		appt.ID, appt.DoctorName, appt.AppointmentTime.Format("2006-01-02 15:04"), appt.Status.Display())
	return nil
}

func runRate(ctx context.Context, args []string, client *reserve.Client) error {
	fs := flag.NewFlagSet("rate", flag.ExitOnError)
	doctorID := fs.Int64("doctor", 0, "doctor id")
	stars := fs.Int("stars", 0, "rating value, 1 to 5")
	comment := fs.String("comment", "", "rating comment")
	_ = fs.Parse(args)
	if *doctorID == 0 {
		return fmt.Errorf("rate: -doctor is required")
	}
	submitted, err := rating.NewSubmitter(client).Submit(ctx, *doctorID, *stars, *comment)
	if err != nil {
		return err
	}
	fmt.Printf("rated doctor %d: %d stars\n", submitted.DoctorID, submitted.Rating)
	return nil
}
