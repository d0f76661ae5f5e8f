package Models

import (
	"context"
	"regexp"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// User is the shared identity envelope for both roles. Role-specific fields
// live in the Doctor/Patient sub-documents, only one of which is set.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Fullname  string             `bson:"fullname" json:"fullname"`
	Email     string             `bson:"email" json:"email"`
	Phone     string             `bson:"phone" json:"phone"`
	Password  string             `bson:"password" json:"-"`
	Role      string             `bson:"role" json:"role"`
	Doctor    *DoctorProfile     `bson:"doctor,omitempty" json:"doctor,omitempty"`
	Patient   *PatientProfile    `bson:"patient,omitempty" json:"patient,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}

type DoctorProfile struct {
	LicenseNo                string   `bson:"lic_no" json:"lic_no"`
	Spec                     string   `bson:"spec" json:"spec"`
	Experience               int      `bson:"experience" json:"experience"`
	Bio                      string   `bson:"bio" json:"bio"`
	ProfilePhoto             string   `bson:"profile_photo,omitempty" json:"profilePhoto,omitempty"`
	HospitalName             string   `bson:"hospital_name,omitempty" json:"hospitalName,omitempty"`
	HospitalAddress          string   `bson:"hospital_address,omitempty" json:"hospitalAddress,omitempty"`
	ConsultationFees         float64  `bson:"consultation_fees,omitempty" json:"consultationFees,omitempty"`
	OfficeHours              string   `bson:"office_hours,omitempty" json:"officeHours,omitempty"`
	AdditionalQualifications []string `bson:"additional_qualifications,omitempty" json:"additionalQualifications,omitempty"`
}

type PatientProfile struct {
	DOB                    string `bson:"dob" json:"dob"`
	Gender                 string `bson:"gender" json:"gender"`
	BloodGroup             string `bson:"blood_group" json:"bloodGroup"`
	Address                string `bson:"address" json:"address"`
	EmergencyContactName   string `bson:"emergency_contact_name" json:"emergencyContactName"`
	EmergencyContactNumber string `bson:"emergency_contact_number" json:"emergencyContactNumber"`
}

// DoctorSummary is the trimmed projection returned by the directory search.
type DoctorSummary struct {
	ID               primitive.ObjectID `json:"_id"`
	Fullname         string             `json:"fullname"`
	Spec             string             `json:"spec"`
	Experience       int                `json:"experience"`
	Bio              string             `json:"bio"`
	ProfilePhoto     string             `json:"profilePhoto,omitempty"`
	HospitalName     string             `json:"hospitalName,omitempty"`
	ConsultationFees float64            `json:"consultationFees,omitempty"`
}

// DoctorProfileUpdate carries the patchable doctor subset. Nil fields are
// left untouched.
type DoctorProfileUpdate struct {
	ProfilePhoto             *string   `json:"profilePhoto"`
	HospitalName             *string   `json:"hospitalName"`
	HospitalAddress          *string   `json:"hospitalAddress"`
	ConsultationFees         *float64  `json:"consultationFees"`
	OfficeHours              *string   `json:"officeHours"`
	AdditionalQualifications *[]string `json:"additionalQualifications"`
	Bio                      *string   `json:"bio"`
}

type UserStore interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByEmailAndRole(ctx context.Context, email, role string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	FindByPhone(ctx context.Context, phone string) (*User, error)
	UpdateDoctorProfile(ctx context.Context, id string, update DoctorProfileUpdate) (*User, error)
	SearchDoctors(ctx context.Context, term, specialization string, limit int64) ([]DoctorSummary, error)
}

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func VerifyPassword(password, hashedPassword string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// NormalizeEmail mirrors the lowercase+trim the schema applied on write.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type mongoUserStore struct {
	col *mongo.Collection
}

func (s *mongoUserStore) Create(ctx context.Context, user *User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	_, err := s.col.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}

func (s *mongoUserStore) FindByEmail(ctx context.Context, email string) (*User, error) {
	return s.findOne(ctx, bson.M{"email": email})
}

func (s *mongoUserStore) FindByEmailAndRole(ctx context.Context, email, role string) (*User, error) {
	return s.findOne(ctx, bson.M{"email": email, "role": role})
}

func (s *mongoUserStore) FindByID(ctx context.Context, id string) (*User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	return s.findOne(ctx, bson.M{"_id": oid})
}

func (s *mongoUserStore) FindByPhone(ctx context.Context, phone string) (*User, error) {
	return s.findOne(ctx, bson.M{"phone": phone})
}

func (s *mongoUserStore) findOne(ctx context.Context, filter bson.M) (*User, error) {
	var user User
	err := s.col.FindOne(ctx, filter).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *mongoUserStore) UpdateDoctorProfile(ctx context.Context, id string, update DoctorProfileUpdate) (*User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	set := bson.M{"updated_at": time.Now()}
	if update.ProfilePhoto != nil {
		set["doctor.profile_photo"] = *update.ProfilePhoto
	}
	if update.HospitalName != nil {
		set["doctor.hospital_name"] = *update.HospitalName
	}
	if update.HospitalAddress != nil {
		set["doctor.hospital_address"] = *update.HospitalAddress
	}
	if update.ConsultationFees != nil {
		set["doctor.consultation_fees"] = *update.ConsultationFees
	}
	if update.OfficeHours != nil {
		set["doctor.office_hours"] = *update.OfficeHours
	}
	if update.AdditionalQualifications != nil {
		set["doctor.additional_qualifications"] = *update.AdditionalQualifications
	}
	if update.Bio != nil {
		set["doctor.bio"] = *update.Bio
	}

	var user User
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err = s.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *mongoUserStore) SearchDoctors(ctx context.Context, term, specialization string, limit int64) ([]DoctorSummary, error) {
	filter := bson.M{"role": "doctor"}
	if term != "" {
		filter["fullname"] = primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
	}
	if specialization != "" {
		filter["doctor.spec"] = primitive.Regex{Pattern: regexp.QuoteMeta(specialization), Options: "i"}
	}

	cursor, err := s.col.Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}

	summaries := make([]DoctorSummary, 0, len(users))
	for _, user := range users {
		summaries = append(summaries, user.ToDoctorSummary())
	}
	return summaries, nil
}

func (user *User) ToDoctorSummary() DoctorSummary {
	summary := DoctorSummary{
		ID:       user.ID,
		Fullname: user.Fullname,
	}
	if user.Doctor != nil {
		summary.Spec = user.Doctor.Spec
		summary.Experience = user.Doctor.Experience
		summary.Bio = user.Doctor.Bio
		summary.ProfilePhoto = user.Doctor.ProfilePhoto
		summary.HospitalName = user.Doctor.HospitalName
		summary.ConsultationFees = user.Doctor.ConsultationFees
	}
	return summary
}
