// Package profile assembles normalized driver profiles from extraction
// results and scores them for hiring risk.
package profile

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Profile status values.
const (
	StatusPending  = "pending"
	StatusReviewed = "reviewed"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// ValidStatus reports whether s is one of the recognized profile statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusReviewed, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// PersonalInfo groups the applicant's identity and contact fields.
type PersonalInfo struct {
	FullName              string `json:"full_name,omitempty"`
	Email                 string `json:"email,omitempty"`
	Phone                 string `json:"phone,omitempty"`
	Address               string `json:"address,omitempty"`
	DateOfBirth           string `json:"date_of_birth,omitempty"`
	SocialSecurity        string `json:"social_security,omitempty"`
	EmergencyContactName  string `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone string `json:"emergency_contact_phone,omitempty"`
}

// LicenseInfo groups commercial driver license fields.
type LicenseInfo struct {
	LicenseNumber     string `json:"license_number,omitempty"`
	LicenseClass      string `json:"license_class,omitempty"`
	LicenseState      string `json:"license_state,omitempty"`
	LicenseExpiration string `json:"license_expiration,omitempty"`
	Endorsements      string `json:"endorsements,omitempty"`
	MedicalCardExpiry string `json:"medical_card_expiry,omitempty"`
}

// EmploymentRecord is one prior position or unemployment gap.
type EmploymentRecord struct {
	EmployerName     string `json:"employer_name,omitempty"`
	Position         string `json:"position,omitempty"`
	StartDate        string `json:"start_date,omitempty"`
	EndDate          string `json:"end_date,omitempty"`
	ReasonForLeaving string `json:"reason_for_leaving,omitempty"`
	EmploymentType   string `json:"employment_type,omitempty"`
	CurrentEmployer  bool   `json:"current_employer,omitempty"`
	Terminated       bool   `json:"terminated,omitempty"`
}

// EmploymentHistory is the applicant's work background.
type EmploymentHistory struct {
	YearsExperience         string             `json:"years_experience,omitempty"`
	CurrentEmploymentStatus string             `json:"current_employment_status,omitempty"`
	PreviousPositions       []EmploymentRecord `json:"previous_positions"`
}

// AccidentRecord is one reported vehicle accident.
type AccidentRecord struct {
	Type              string `json:"type,omitempty"`
	Date              string `json:"date,omitempty"`
	City              string `json:"city,omitempty"`
	State             string `json:"state,omitempty"`
	CommercialVehicle bool   `json:"commercial_vehicle,omitempty"`
	DOTRecordable     bool   `json:"dot_recordable,omitempty"`
	AtFault           bool   `json:"at_fault,omitempty"`
	Description       string `json:"description,omitempty"`
}

// SafetyRecord groups the free-text safety and compliance answers. These are
// the fields the risk scorer scans.
type SafetyRecord struct {
	CriminalRecordStatus string           `json:"criminal_record_status,omitempty"`
	AccidentHistory      string           `json:"accident_history,omitempty"`
	Accidents            []AccidentRecord `json:"accidents"`
	TrafficViolations    string           `json:"traffic_violations,omitempty"`
	DrugTestResults      string           `json:"drug_test_results,omitempty"`
	LicenseSuspensions   string           `json:"license_suspensions,omitempty"`
}

// Education groups trucking-school fields.
type Education struct {
	TruckingSchool   string `json:"trucking_school,omitempty"`
	GraduationStatus string `json:"graduation_status,omitempty"`
	TrainingHours    string `json:"training_hours,omitempty"`
	GPA              string `json:"gpa,omitempty"`
}

// ComplianceInfo groups FCRA and disclosure acknowledgments.
type ComplianceInfo struct {
	FCRAAuthorization      string `json:"fcra_authorization,omitempty"`
	BackgroundCheckConsent string `json:"background_check_consent,omitempty"`
	PSPDisclosure          string `json:"psp_disclosure,omitempty"`
	ClearinghouseConsent   string `json:"clearinghouse_consent,omitempty"`
}

// RiskAssessment is the derived hiring-risk summary.
type RiskAssessment struct {
	Level          string   `json:"level"`
	Score          int      `json:"score"`
	Color          string   `json:"color"`
	Factors        []string `json:"factors"`
	Recommendation string   `json:"recommendation"`
}

// Metadata describes how the profile was produced.
type Metadata struct {
	Filename             string  `json:"filename,omitempty"`
	ConfidenceScore      float64 `json:"confidence_score"`
	TotalFieldsExtracted int     `json:"total_fields_extracted"`
	ProcessedAt          string  `json:"processed_at,omitempty"`
	APIVersion           string  `json:"api_version,omitempty"`
}

// Profile is the normalized, nested view of one parsed application. IDs are
// minted at creation and never reused.
type Profile struct {
	DriverID  string `json:"driver_id"`
	ProfileID string `json:"profile_id"`

	Personal   PersonalInfo      `json:"personal"`
	License    LicenseInfo       `json:"license"`
	Employment EmploymentHistory `json:"employment"`
	Safety     SafetyRecord      `json:"safety"`
	Education  Education         `json:"education"`
	Compliance ComplianceInfo    `json:"compliance"`

	Risk     RiskAssessment `json:"risk_assessment"`
	Metadata Metadata       `json:"metadata"`

	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// newIdentifiers mints the internal and display id pair.
func newIdentifiers() (driverID, profileID string) {
	driverID = uuid.New().String()
	profileID = "DRV-" + strings.ToUpper(driverID[:8])
	return driverID, profileID
}

// NewProfile returns an empty profile with minted identifiers, pending status,
// and current timestamps.
func NewProfile() *Profile {
	driverID, profileID := newIdentifiers()
	now := time.Now().UTC()
	return &Profile{
		DriverID:  driverID,
		ProfileID: profileID,
		Employment: EmploymentHistory{
			PreviousPositions: []EmploymentRecord{},
		},
		Safety: SafetyRecord{
			Accidents: []AccidentRecord{},
		},
		Risk: RiskAssessment{
			Level:   RiskUnknown,
			Color:   "gray",
			Factors: []string{},
		},
		Status:    StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
