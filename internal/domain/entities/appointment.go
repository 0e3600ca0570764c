package entities

import (
	"time"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// AppointmentRequest is the booking form submitted by the mobile app.
type AppointmentRequest struct {
	DoctorID        string `json:"doctor_id" validate:"notblank"`
	PatientName     string `json:"patient_name" validate:"notblank"`
	PatientPhone    string `json:"patient_phone"`
	ABHAID          string `json:"abha_id" validate:"abha_id"`
	AppointmentType string `json:"appointment_type" validate:"notblank"`
	Date            string `json:"date" validate:"notblank"`
	TimeSlot        string `json:"time_slot" validate:"notblank"`
	Symptoms        string `json:"symptoms"`
}

// Appointment is a confirmed booking.
type Appointment struct {
	ID              string            `json:"id"`
	DoctorID        string            `json:"doctor_id"`
	DoctorName      string            `json:"doctor_name"`
	PatientName     string            `json:"patient_name"`
	PatientPhone    string            `json:"patient_phone,omitempty"`
	ABHAID          string            `json:"abha_id,omitempty"`
	AppointmentType string            `json:"appointment_type"`
	Fee             string            `json:"fee"`
	ScheduledFor    time.Time         `json:"scheduled_for"`
	TimeSlot        string            `json:"time_slot"`
	Symptoms        string            `json:"symptoms,omitempty"`
	Status          AppointmentStatus `json:"status"`
	CreatedAt       time.Time         `json:"created_at"`
}
