package CronJobs

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/DigesSuvagiya/meditrack-backend/FirebaseMessaging"
	"github.com/DigesSuvagiya/meditrack-backend/Models"
)

// AppointmentReminder sweeps for upcoming appointments and notifies the
// patient's registered devices.
type AppointmentReminder struct {
	Appointments Models.AppointmentStore
	DeviceTokens Models.DeviceTokenStore
}

func NewAppointmentReminder(appointments Models.AppointmentStore, deviceTokens Models.DeviceTokenStore) *AppointmentReminder {
	return &AppointmentReminder{
		Appointments: appointments,
		DeviceTokens: deviceTokens,
	}
}

func (ar *AppointmentReminder) StartReminderCron() *gocron.Scheduler {
	scheduler := gocron.NewScheduler(time.Local)

	scheduler.Every(15).Minutes().Do(func() {
		log.Println("Running appointment reminder check...")
		if err := ar.SendAppointmentReminders(); err != nil {
			log.Printf("Error sending appointment reminders: %v", err)
		}
	})

	scheduler.StartAsync()
	log.Println("Appointment reminder cron job started")

	return scheduler
}

// SendAppointmentReminders notifies patients with appointments roughly
// three hours out. The window overlaps the 15-minute sweep interval so an
// appointment is not missed between runs.
func (ar *AppointmentReminder) SendAppointmentReminders() error {
	now := time.Now()
	startWindow := now.Add(2*time.Hour + 53*time.Minute)
	endWindow := now.Add(3*time.Hour + 7*time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	appointments, err := ar.Appointments.FindScheduledBetween(ctx,
		startWindow.Format(time.RFC3339), endWindow.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to query upcoming appointments: %w", err)
	}

	for _, appointment := range appointments {
		tokens, err := ar.DeviceTokens.FindByUser(ctx, appointment.PatientID)
		if err != nil {
			log.Printf("Failed to fetch device tokens for patient %s: %v", appointment.PatientID, err)
			continue
		}
		if len(tokens) == 0 {
			continue
		}

		body := fmt.Sprintf(
			"Reminder: You have an appointment with %s today at %s (in 3 hours). "+
				"Please arrive 10 minutes early. If you need to reschedule, please contact us.",
			appointment.DoctorName,
			formatAppointmentTime(appointment.Date),
		)

		request := Models.NotificationRequest{
			Tokens: tokens,
			Title:  "Appointment Reminder",
			Body:   body,
		}
		if err := FirebaseMessaging.SendMessage(request); err != nil {
			log.Printf("Failed to send reminder to patient %s: %v", appointment.PatientName, err)
			continue
		}

		log.Printf("Reminder sent to %s for appointment at %s", appointment.PatientName, appointment.Date)
	}

	return nil
}

func formatAppointmentTime(date string) string {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04", "2006-01-02"} {
		if t, err := time.Parse(layout, date); err == nil {
			return t.Format("3:04 PM")
		}
	}
	return date
}
