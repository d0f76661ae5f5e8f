package Controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/DigesSuvagiya/meditrack-backend/Models"
)

func seedDoctor(store *fakeUserStore, fullname, spec string) {
	store.users = append(store.users, Models.User{
		ID:       primitive.NewObjectID(),
		Fullname: fullname,
		Email:    fmt.Sprintf("%d@clinic.com", len(store.users)),
		Role:     "doctor",
		Doctor: &Models.DoctorProfile{
			LicenseNo:  fmt.Sprintf("MCI%d", len(store.users)),
			Spec:       spec,
			Experience: 5,
			Bio:        "bio",
		},
	})
}

func TestSearchDoctorsByTerm(t *testing.T) {
	users, _, _, _ := setupStores()
	router := newTestRouter()

	seedDoctor(users, "Dr. Anil Sharma", "Cardiology")
	seedDoctor(users, "Dr. Priya Sharma", "Dermatology")
	seedDoctor(users, "Dr. Ravi Verma", "Orthopedics")
	users.users = append(users.users, Models.User{
		ID:       primitive.NewObjectID(),
		Fullname: "Sharma Patient",
		Email:    "patient@clinic.com",
		Role:     "patient",
	})

	recorder := performRequest(router, http.MethodGet, "/api/auth/doctors/search?term=sharma", nil, nil)
	assert.Equal(t, http.StatusOK, recorder.Code)

	var doctors []Models.DoctorSummary
	assert.NoError(t, decodeBody(recorder, &doctors))
	assert.Len(t, doctors, 2)
	for _, doctor := range doctors {
		assert.Contains(t, doctor.Fullname, "Sharma")
	}
}

func TestSearchDoctorsBySpecialization(t *testing.T) {
	users, _, _, _ := setupStores()
	router := newTestRouter()

	seedDoctor(users, "Dr. Anil Sharma", "Cardiology")
	seedDoctor(users, "Dr. Ravi Verma", "Orthopedics")

	recorder := performRequest(router, http.MethodGet, "/api/auth/doctors/search?specialization=CARDIO", nil, nil)
	assert.Equal(t, http.StatusOK, recorder.Code)

	var doctors []Models.DoctorSummary
	assert.NoError(t, decodeBody(recorder, &doctors))
	assert.Len(t, doctors, 1)
	assert.Equal(t, "Cardiology", doctors[0].Spec)
}

func TestSearchDoctorsCappedAtTen(t *testing.T) {
	users, _, _, _ := setupStores()
	router := newTestRouter()

	for i := 0; i < 14; i++ {
		seedDoctor(users, fmt.Sprintf("Dr. Sharma %d", i), "General")
	}

	recorder := performRequest(router, http.MethodGet, "/api/auth/doctors/search", nil, nil)
	assert.Equal(t, http.StatusOK, recorder.Code)

	var doctors []Models.DoctorSummary
	assert.NoError(t, decodeBody(recorder, &doctors))
	assert.Len(t, doctors, 10)
}
