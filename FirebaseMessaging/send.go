package FirebaseMessaging

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"

	"github.com/DigesSuvagiya/meditrack-backend/Models"
)

var (
	app             *firebase.App
	messagingClient *messaging.Client
)

func Setup() {
	serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
	if serviceAccountPath == "" {
		log.Println("FIREBASE_SERVICE_ACCOUNT_PATH not set, push notifications disabled")
		return
	}

	ctx := context.Background()
	var err error

	opt := option.WithCredentialsFile(serviceAccountPath)
	app, err = firebase.NewApp(ctx, nil, opt)
	if err != nil {
		log.Printf("Failed to initialize Firebase app: %v", err)
		return
	}

	messagingClient, err = app.Messaging(ctx)
	if err != nil {
		log.Printf("Failed to initialize Firebase messaging client: %v", err)
		return
	}

	log.Println("Firebase messaging client initialized successfully")
}

func SendMessage(req Models.NotificationRequest) error {
	if messagingClient == nil {
		return errors.New("messaging client not initialized")
	}
	if len(req.Tokens) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	notification := &messaging.Notification{
		Title: req.Title,
		Body:  req.Body,
	}
	android := &messaging.AndroidConfig{
		Priority: "high",
		Notification: &messaging.AndroidNotification{
			Sound:    "default",
			Priority: messaging.PriorityHigh,
		},
	}
	apns := &messaging.APNSConfig{
		Headers: map[string]string{
			"apns-priority": "10",
		},
		Payload: &messaging.APNSPayload{
			Aps: &messaging.Aps{
				Alert: &messaging.ApsAlert{
					Title: req.Title,
					Body:  req.Body,
				},
				Sound: "default",
			},
		},
	}

	if len(req.Tokens) == 1 {
		message := &messaging.Message{
			Token:        req.Tokens[0],
			Notification: notification,
			Android:      android,
			APNS:         apns,
		}
		if _, err := messagingClient.Send(ctx, message); err != nil {
			log.Printf("Error sending message: %v", err)
			return err
		}
		return nil
	}

	multicast := &messaging.MulticastMessage{
		Tokens:       req.Tokens,
		Notification: notification,
		Android:      android,
		APNS:         apns,
	}
	if _, err := messagingClient.SendEachForMulticast(ctx, multicast); err != nil {
		log.Printf("Error sending multicast message: %v", err)
		return err
	}
	return nil
}
