package Controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/DigesSuvagiya/meditrack-backend/Models"
	"github.com/DigesSuvagiya/meditrack-backend/Routes"
)

var (
	_ Models.UserStore         = (*fakeUserStore)(nil)
	_ Models.AppointmentStore  = (*fakeAppointmentStore)(nil)
	_ Models.PatientCheckStore = (*fakePatientCheckStore)(nil)
	_ Models.DeviceTokenStore  = (*fakeDeviceTokenStore)(nil)
)

type fakeUserStore struct {
	users []Models.User
}

func (s *fakeUserStore) Create(_ context.Context, user *Models.User) error {
	for _, existing := range s.users {
		if existing.Email == user.Email {
			return Models.ErrDuplicate
		}
		if user.Doctor != nil && existing.Doctor != nil && existing.Doctor.LicenseNo == user.Doctor.LicenseNo {
			return Models.ErrDuplicate
		}
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	s.users = append(s.users, *user)
	return nil
}

func (s *fakeUserStore) FindByEmail(_ context.Context, email string) (*Models.User, error) {
	for i := range s.users {
		if s.users[i].Email == email {
			user := s.users[i]
			return &user, nil
		}
	}
	return nil, Models.ErrNotFound
}

func (s *fakeUserStore) FindByEmailAndRole(_ context.Context, email, role string) (*Models.User, error) {
	for i := range s.users {
		if s.users[i].Email == email && s.users[i].Role == role {
			user := s.users[i]
			return &user, nil
		}
	}
	return nil, Models.ErrNotFound
}

func (s *fakeUserStore) FindByID(_ context.Context, id string) (*Models.User, error) {
	for i := range s.users {
		if s.users[i].ID.Hex() == id {
			user := s.users[i]
			return &user, nil
		}
	}
	return nil, Models.ErrNotFound
}

func (s *fakeUserStore) FindByPhone(_ context.Context, phone string) (*Models.User, error) {
	for i := range s.users {
		if s.users[i].Phone == phone {
			user := s.users[i]
			return &user, nil
		}
	}
	return nil, Models.ErrNotFound
}

func (s *fakeUserStore) UpdateDoctorProfile(_ context.Context, id string, update Models.DoctorProfileUpdate) (*Models.User, error) {
	for i := range s.users {
		if s.users[i].ID.Hex() != id {
			continue
		}
		if s.users[i].Doctor == nil {
			s.users[i].Doctor = &Models.DoctorProfile{}
		}
		doctor := s.users[i].Doctor
		if update.ProfilePhoto != nil {
			doctor.ProfilePhoto = *update.ProfilePhoto
		}
		if update.HospitalName != nil {
			doctor.HospitalName = *update.HospitalName
		}
		if update.HospitalAddress != nil {
			doctor.HospitalAddress = *update.HospitalAddress
		}
		if update.ConsultationFees != nil {
			doctor.ConsultationFees = *update.ConsultationFees
		}
		if update.OfficeHours != nil {
			doctor.OfficeHours = *update.OfficeHours
		}
		if update.AdditionalQualifications != nil {
			doctor.AdditionalQualifications = *update.AdditionalQualifications
		}
		if update.Bio != nil {
			doctor.Bio = *update.Bio
		}
		s.users[i].UpdatedAt = time.Now()
		user := s.users[i]
		return &user, nil
	}
	return nil, Models.ErrNotFound
}

func (s *fakeUserStore) SearchDoctors(_ context.Context, term, specialization string, limit int64) ([]Models.DoctorSummary, error) {
	summaries := []Models.DoctorSummary{}
	for i := range s.users {
		user := s.users[i]
		if user.Role != "doctor" {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(user.Fullname), strings.ToLower(term)) {
			continue
		}
		if specialization != "" {
			if user.Doctor == nil || !strings.Contains(strings.ToLower(user.Doctor.Spec), strings.ToLower(specialization)) {
				continue
			}
		}
		summaries = append(summaries, user.ToDoctorSummary())
		if int64(len(summaries)) >= limit {
			break
		}
	}
	return summaries, nil
}

type fakeAppointmentStore struct {
	appointments []Models.Appointment
}

func (s *fakeAppointmentStore) Create(_ context.Context, appointment *Models.Appointment) error {
	if appointment.ID.IsZero() {
		appointment.ID = primitive.NewObjectID()
	}
	appointment.CreatedAt = time.Now()
	s.appointments = append(s.appointments, *appointment)
	return nil
}

func (s *fakeAppointmentStore) FindByPatient(_ context.Context, patientID string) ([]Models.Appointment, error) {
	return s.filter(func(a Models.Appointment) bool { return a.PatientID == patientID }), nil
}

func (s *fakeAppointmentStore) FindByDoctor(_ context.Context, doctorID string) ([]Models.Appointment, error) {
	return s.filter(func(a Models.Appointment) bool { return a.DoctorID == doctorID }), nil
}

func (s *fakeAppointmentStore) filter(keep func(Models.Appointment) bool) []Models.Appointment {
	matched := []Models.Appointment{}
	for _, appointment := range s.appointments {
		if keep(appointment) {
			matched = append(matched, appointment)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Date < matched[j].Date })
	return matched
}

func (s *fakeAppointmentStore) UpdateStatus(_ context.Context, id, status string) (*Models.Appointment, error) {
	for i := range s.appointments {
		if s.appointments[i].ID.Hex() == id {
			s.appointments[i].Status = status
			appointment := s.appointments[i]
			return &appointment, nil
		}
	}
	return nil, Models.ErrNotFound
}

func (s *fakeAppointmentStore) Delete(_ context.Context, id string) error {
	for i := range s.appointments {
		if s.appointments[i].ID.Hex() == id {
			s.appointments = append(s.appointments[:i], s.appointments[i+1:]...)
			return nil
		}
	}
	return Models.ErrNotFound
}

func (s *fakeAppointmentStore) FindScheduledBetween(_ context.Context, from, to string) ([]Models.Appointment, error) {
	return s.filter(func(a Models.Appointment) bool {
		return a.Status == Models.AppointmentScheduled && a.Date >= from && a.Date <= to
	}), nil
}

type fakePatientCheckStore struct {
	checks []Models.PatientCheck
	// forceDuplicates makes the next N inserts fail as unique-index
	// conflicts, to exercise the id-collision retry.
	forceDuplicates int
}

func (s *fakePatientCheckStore) Create(_ context.Context, check *Models.PatientCheck) error {
	if s.forceDuplicates > 0 {
		s.forceDuplicates--
		return Models.ErrDuplicate
	}
	for _, existing := range s.checks {
		if existing.PatientID == check.PatientID {
			return Models.ErrDuplicate
		}
	}
	if check.ID.IsZero() {
		check.ID = primitive.NewObjectID()
	}
	now := time.Now()
	check.CreatedAt = now
	check.UpdatedAt = now
	s.checks = append(s.checks, *check)
	return nil
}

func (s *fakePatientCheckStore) FindByID(_ context.Context, id string) (*Models.PatientCheck, error) {
	for i := range s.checks {
		if s.checks[i].ID.Hex() == id {
			check := s.checks[i]
			return &check, nil
		}
	}
	return nil, Models.ErrNotFound
}

func (s *fakePatientCheckStore) FindByDoctor(_ context.Context, doctorID string) ([]Models.PatientCheck, error) {
	matched := []Models.PatientCheck{}
	for _, check := range s.checks {
		if check.DoctorID == doctorID {
			matched = append(matched, check)
		}
	}
	return matched, nil
}

func (s *fakePatientCheckStore) FindByPhone(_ context.Context, phone string) ([]Models.PatientCheck, error) {
	matched := []Models.PatientCheck{}
	for _, check := range s.checks {
		if check.Phone == phone {
			matched = append(matched, check)
		}
	}
	return matched, nil
}

func (s *fakePatientCheckStore) Delete(_ context.Context, id string) error {
	for i := range s.checks {
		if s.checks[i].ID.Hex() == id {
			s.checks = append(s.checks[:i], s.checks[i+1:]...)
			return nil
		}
	}
	return Models.ErrNotFound
}

type fakeDeviceTokenStore struct {
	tokens map[string]string // token value -> user id
}

func (s *fakeDeviceTokenStore) Save(_ context.Context, token *Models.DeviceToken) error {
	if s.tokens == nil {
		s.tokens = map[string]string{}
	}
	s.tokens[token.Value] = token.UserID
	return nil
}

func (s *fakeDeviceTokenStore) FindByUser(_ context.Context, userID string) ([]string, error) {
	values := []string{}
	for value, owner := range s.tokens {
		if owner == userID {
			values = append(values, value)
		}
	}
	return values, nil
}

func setupStores() (*fakeUserStore, *fakeAppointmentStore, *fakePatientCheckStore, *fakeDeviceTokenStore) {
	users := &fakeUserStore{}
	appointments := &fakeAppointmentStore{}
	checks := &fakePatientCheckStore{}
	tokens := &fakeDeviceTokenStore{}
	Models.Users = users
	Models.Appointments = appointments
	Models.PatientChecks = checks
	Models.DeviceTokens = tokens
	return users, appointments, checks, tokens
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	Routes.ConfigRoutes(router)
	return router
}

func performRequest(router *gin.Engine, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(recorder *httptest.ResponseRecorder, out interface{}) error {
	return json.Unmarshal(recorder.Body.Bytes(), out)
}
