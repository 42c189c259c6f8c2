// services/reminder_service.go
package services

import (
	"log"
	"os"
	"strings"
	"time"

	"barberpro-backend/models"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

const birthdayMessage = "Hi [ClientName], the whole barbershop crew wishes you a very happy birthday! Come by this month for a special discount on your next cut."

// ReminderService sends birthday greetings to clients over Twilio.
type ReminderService struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewReminderService(db *gorm.DB) *ReminderService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &ReminderService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

// Enabled reports whether Twilio credentials are configured. Without them
// the scheduler is not started and the feature is silently off.
func (s *ReminderService) Enabled() bool {
	return os.Getenv("TWILIO_ACCOUNT_SID") != "" && os.Getenv("TWILIO_AUTH_TOKEN") != ""
}

// StartScheduler sends birthday reminders every day at 9 AM.
func (s *ReminderService) StartScheduler() {
	c := cron.New()

	c.AddFunc("0 9 * * *", func() {
		s.SendBirthdayReminders(time.Now())
	})

	c.Start()
	log.Println("Reminder scheduler started")
}

// SendBirthdayReminders messages every client whose birthday falls on the
// given day and appends a reminder log row per attempt.
func (s *ReminderService) SendBirthdayReminders(day time.Time) {
	log.Println("Starting birthday reminder processing...")

	clients, err := s.getBirthdayClients(day)
	if err != nil {
		log.Printf("Failed to fetch birthday clients: %v", err)
		return
	}

	for _, client := range clients {
		s.sendReminder(client)
	}

	log.Println("Birthday reminder processing completed")
}

func (s *ReminderService) getBirthdayClients(day time.Time) ([]models.Client, error) {
	var clients []models.Client
	// birth_date is stored as a timestamp; match month and day only
	err := s.db.Where("birth_date IS NOT NULL AND strftime('%m-%d', birth_date) = ?",
		day.Format("01-02")).Find(&clients).Error
	return clients, err
}

func (s *ReminderService) sendReminder(client models.Client) {
	message := strings.ReplaceAll(birthdayMessage, "[ClientName]", client.Name)

	// WhatsApp for E.164 phones, plain SMS otherwise
	channel := "sms"
	to := client.Phone
	if strings.HasPrefix(client.Phone, "+") {
		to = "whatsapp:" + client.Phone
		channel = "whatsapp"
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetBody(message)

	if channel == "whatsapp" {
		params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
	} else {
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	}

	resp, err := s.client.Api.CreateMessage(params)
	status := "sent"
	errorMsg := ""

	if err != nil {
		log.Printf("Failed to send message to %s: %v", client.Phone, err)
		status = "failed"
		errorMsg = err.Error()
	} else if resp.Sid != nil {
		log.Printf("Message sent to %s, SID: %s", client.Phone, *resp.Sid)
	} else {
		log.Printf("Message sent to %s, but no SID returned", client.Phone)
	}

	reminderLog := models.ReminderLog{
		ClientID:     client.ID,
		Message:      message,
		Status:       status,
		ErrorMessage: errorMsg,
		Channel:      channel,
		SentAt:       time.Now(),
	}

	if err := s.db.Create(&reminderLog).Error; err != nil {
		log.Printf("Failed to log reminder for client %s: %v", client.ID, err)
	}
}
