package Models

import (
	"context"
	"math/rand"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PatientCheck is one clinical visit record. It is deliberately separate
// from the patient's User account; the only link back is the shared
// phone/email.
type PatientCheck struct {
	ID                     primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	PatientID              int                `bson:"patient_id" json:"patientId"`
	DoctorID               string             `bson:"doctor_id" json:"doctorId"`
	DoctorName             string             `bson:"doctor_name" json:"doctorName"`
	Fullname               string             `bson:"fullname" json:"fullname"`
	DOB                    string             `bson:"dob" json:"dob"`
	Gender                 string             `bson:"gender" json:"gender"`
	Phone                  string             `bson:"phone" json:"phone"`
	Email                  string             `bson:"email" json:"email"`
	Address                string             `bson:"address,omitempty" json:"address,omitempty"`
	EmergencyContactName   string             `bson:"emergency_contact_name,omitempty" json:"emergencyContactName,omitempty"`
	EmergencyContactNumber string             `bson:"emergency_contact_number,omitempty" json:"emergencyContactNumber,omitempty"`
	MedicalHistory         string             `bson:"medical_history,omitempty" json:"medicalHistory,omitempty"`
	Allergies              string             `bson:"allergies,omitempty" json:"allergies,omitempty"`
	CurrentMedications     string             `bson:"current_medications,omitempty" json:"currentMedications,omitempty"`
	ChronicConditions      string             `bson:"chronic_conditions,omitempty" json:"chronicConditions,omitempty"`
	VisitDate              string             `bson:"visit_date" json:"visitDate"`
	DoctorNotes            string             `bson:"doctor_notes,omitempty" json:"doctorNotes,omitempty"`
	VitalSigns             VitalSigns         `bson:"vital_signs" json:"vitalSigns"`
	Diagnosis              string             `bson:"diagnosis,omitempty" json:"diagnosis,omitempty"`
	TreatmentPlan          string             `bson:"treatment_plan,omitempty" json:"treatmentPlan,omitempty"`
	FollowUpAppointment    string             `bson:"follow_up_appointment,omitempty" json:"followUpAppointment,omitempty"`
	CreatedAt              time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt              time.Time          `bson:"updated_at" json:"updatedAt"`
}

type VitalSigns struct {
	BloodPressure string  `bson:"blood_pressure,omitempty" json:"bloodPressure,omitempty"`
	HeartRate     float64 `bson:"heart_rate,omitempty" json:"heartRate,omitempty"`
	Temperature   float64 `bson:"temperature,omitempty" json:"temperature,omitempty"`
	Weight        float64 `bson:"weight,omitempty" json:"weight,omitempty"`
	Height        float64 `bson:"height,omitempty" json:"height,omitempty"`
}

// HealthSummary is the denormalized clinical view returned per visit when
// looking up a patient's history by phone.
type HealthSummary struct {
	Fullname               string     `json:"fullname"`
	DOB                    string     `json:"dob"`
	Gender                 string     `json:"gender"`
	MedicalHistory         string     `json:"medicalHistory,omitempty"`
	Allergies              string     `json:"allergies,omitempty"`
	CurrentMedications     string     `json:"currentMedications,omitempty"`
	ChronicConditions      string     `json:"chronicConditions,omitempty"`
	LastVisitDate          string     `json:"lastVisitDate"`
	EmergencyContactName   string     `json:"emergencyContactName,omitempty"`
	EmergencyContactNumber string     `json:"emergencyContactNumber,omitempty"`
	DoctorName             string     `json:"doctorName"`
	PatientID              int        `json:"patientId"`
	Diagnosis              string     `json:"diagnosis,omitempty"`
	FollowUp               string     `json:"followUp,omitempty"`
	VitalSigns             VitalSigns `json:"vitalSigns"`
}

func (check *PatientCheck) ToHealthSummary() HealthSummary {
	return HealthSummary{
		Fullname:               check.Fullname,
		DOB:                    check.DOB,
		Gender:                 check.Gender,
		MedicalHistory:         check.MedicalHistory,
		Allergies:              check.Allergies,
		CurrentMedications:     check.CurrentMedications,
		ChronicConditions:      check.ChronicConditions,
		LastVisitDate:          check.VisitDate,
		EmergencyContactName:   check.EmergencyContactName,
		EmergencyContactNumber: check.EmergencyContactNumber,
		DoctorName:             check.DoctorName,
		PatientID:              check.PatientID,
		Diagnosis:              check.Diagnosis,
		FollowUp:               check.FollowUpAppointment,
		VitalSigns:             check.VitalSigns,
	}
}

// GeneratePatientID draws a 5-digit id. Uniqueness is enforced by the index;
// callers retry on ErrDuplicate.
func GeneratePatientID() int {
	return 10000 + rand.Intn(90000)
}

type PatientCheckStore interface {
	Create(ctx context.Context, check *PatientCheck) error
	FindByID(ctx context.Context, id string) (*PatientCheck, error)
	FindByDoctor(ctx context.Context, doctorID string) ([]PatientCheck, error)
	FindByPhone(ctx context.Context, phone string) ([]PatientCheck, error)
	Delete(ctx context.Context, id string) error
}

type mongoPatientCheckStore struct {
	col *mongo.Collection
}

func (s *mongoPatientCheckStore) Create(ctx context.Context, check *PatientCheck) error {
	if check.ID.IsZero() {
		check.ID = primitive.NewObjectID()
	}
	now := time.Now()
	check.CreatedAt = now
	check.UpdatedAt = now
	_, err := s.col.InsertOne(ctx, check)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}

func (s *mongoPatientCheckStore) FindByID(ctx context.Context, id string) (*PatientCheck, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var check PatientCheck
	err = s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&check)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &check, nil
}

func (s *mongoPatientCheckStore) FindByDoctor(ctx context.Context, doctorID string) ([]PatientCheck, error) {
	return s.find(ctx, bson.M{"doctor_id": doctorID})
}

func (s *mongoPatientCheckStore) FindByPhone(ctx context.Context, phone string) ([]PatientCheck, error) {
	return s.find(ctx, bson.M{"phone": phone})
}

func (s *mongoPatientCheckStore) find(ctx context.Context, filter bson.M) ([]PatientCheck, error) {
	opts := options.Find().SetSort(bson.D{{Key: "visit_date", Value: 1}})
	cursor, err := s.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	checks := []PatientCheck{}
	if err := cursor.All(ctx, &checks); err != nil {
		return nil, err
	}
	return checks, nil
}

func (s *mongoPatientCheckStore) Delete(ctx context.Context, id string) error {
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
