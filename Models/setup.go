package Models

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

var DB *mongo.Database

// Store singletons used by the controllers. Tests swap these for fakes.
var (
	Users         UserStore
	Appointments  AppointmentStore
	PatientChecks PatientCheckStore
	DeviceTokens  DeviceTokenStore
)

func ConnectDatabase() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "meditrack"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatal("MongoDB connection error:", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatal("MongoDB ping error:", err)
	}

	log.Println("Connected to MongoDB")
	DB = client.Database(dbName)

	ensureIndexes(ctx)

	Users = &mongoUserStore{col: DB.Collection("users")}
	Appointments = &mongoAppointmentStore{col: DB.Collection("appointments")}
	PatientChecks = &mongoPatientCheckStore{col: DB.Collection("patient_checks")}
	DeviceTokens = &mongoDeviceTokenStore{col: DB.Collection("device_tokens")}
}

func ensureIndexes(ctx context.Context) {
	users := DB.Collection("users")
	checks := DB.Collection("patient_checks")
	tokens := DB.Collection("device_tokens")

	_, err := users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "doctor.lic_no", Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true),
		},
	})
	if err != nil {
		log.Println("Failed to create user indexes:", err)
	}

	if _, err := checks.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "patient_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		log.Println("Failed to create patient_checks index:", err)
	}

	if _, err := tokens.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "value", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		log.Println("Failed to create device_tokens index:", err)
	}
}
