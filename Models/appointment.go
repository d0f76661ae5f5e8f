package Models

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	AppointmentScheduled = "scheduled"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
)

// Appointment keeps the doctor and patient names denormalized for display;
// the ids are not checked against the users collection.
type Appointment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	DoctorID      string             `bson:"doctor_id" json:"doctorId"`
	PatientID     string             `bson:"patient_id" json:"patientId"`
	DoctorName    string             `bson:"doctor_name" json:"doctorName"`
	PatientName   string             `bson:"patient_name" json:"patientName"`
	PatientMobile string             `bson:"patient_mobile" json:"patientMobile"`
	Date          string             `bson:"date" json:"date"`
	Status        string             `bson:"status" json:"status"`
	CreatedAt     time.Time          `bson:"created_at" json:"createdAt"`
}

func ValidAppointmentStatus(status string) bool {
	switch status {
	case AppointmentScheduled, AppointmentCompleted, AppointmentCancelled:
		return true
	}
	return false
}

type AppointmentStore interface {
	Create(ctx context.Context, appointment *Appointment) error
	FindByPatient(ctx context.Context, patientID string) ([]Appointment, error)
	FindByDoctor(ctx context.Context, doctorID string) ([]Appointment, error)
	UpdateStatus(ctx context.Context, id, status string) (*Appointment, error)
	Delete(ctx context.Context, id string) error
	FindScheduledBetween(ctx context.Context, from, to string) ([]Appointment, error)
}

type mongoAppointmentStore struct {
	col *mongo.Collection
}

func (s *mongoAppointmentStore) Create(ctx context.Context, appointment *Appointment) error {
	if appointment.ID.IsZero() {
		appointment.ID = primitive.NewObjectID()
	}
	appointment.CreatedAt = time.Now()
	_, err := s.col.InsertOne(ctx, appointment)
	return err
}

func (s *mongoAppointmentStore) FindByPatient(ctx context.Context, patientID string) ([]Appointment, error) {
	return s.find(ctx, bson.M{"patient_id": patientID})
}

func (s *mongoAppointmentStore) FindByDoctor(ctx context.Context, doctorID string) ([]Appointment, error) {
	return s.find(ctx, bson.M{"doctor_id": doctorID})
}

func (s *mongoAppointmentStore) find(ctx context.Context, filter bson.M) ([]Appointment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := s.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	appointments := []Appointment{}
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

func (s *mongoAppointmentStore) UpdateStatus(ctx context.Context, id, status string) (*Appointment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var appointment Appointment
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err = s.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"status": status}}, opts).Decode(&appointment)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (s *mongoAppointmentStore) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	result, err := s.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// FindScheduledBetween feeds the reminder sweep. Dates are stored as the
// client sent them, so the window bounds use the same string format.
func (s *mongoAppointmentStore) FindScheduledBetween(ctx context.Context, from, to string) ([]Appointment, error) {
	return s.find(ctx, bson.M{
		"status": AppointmentScheduled,
		"date":   bson.M{"$gte": from, "$lte": to},
	})
}
