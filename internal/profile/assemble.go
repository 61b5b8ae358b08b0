package profile

import (
	"strings"
	"time"

	"github.com/drivelinehq/driver-profile-api/internal/parser"
)

// APIVersion is recorded in every assembled profile's metadata.
const APIVersion = "2.0"

// Assemble builds a complete Profile from an extraction result, minting fresh
// identifiers and running the risk assessment over the safety answers.
func Assemble(result *parser.ExtractionResult) *Profile {
	p := NewProfile()

	p.Personal = PersonalInfo{
		FullName:              str(result, "full_name"),
		Email:                 str(result, "email"),
		Phone:                 firstStr(result, "primary_phone", "cell_phone"),
		Address:               joinNonEmpty(", ", str(result, "current_address"), str(result, "city_state_zip")),
		DateOfBirth:           str(result, "date_of_birth"),
		SocialSecurity:        str(result, "ssn"),
		EmergencyContactName:  str(result, "emergency_contact_name"),
		EmergencyContactPhone: str(result, "emergency_contact_phone"),
	}

	p.License = LicenseInfo{
		LicenseNumber:     str(result, "license_number"),
		LicenseClass:      str(result, "license_class"),
		LicenseState:      str(result, "licensing_authority"),
		LicenseExpiration: str(result, "license_expiration_date"),
		Endorsements:      endorsementSummary(result),
		MedicalCardExpiry: str(result, "dot_medical_card_expiration"),
	}

	p.Employment = EmploymentHistory{
		YearsExperience:         firstStr(result, "tractor_semi_trailer_experience", "straight_truck_experience"),
		CurrentEmploymentStatus: employmentStatus(result),
		PreviousPositions:       employmentRecords(result.EmploymentHistory),
	}

	p.Safety = SafetyRecord{
		CriminalRecordStatus: joinNonEmpty("; ", str(result, "crime_details"), str(result, "felony_details")),
		AccidentHistory:      str(result, "accident_description"),
		Accidents:            accidentRecords(result.AccidentHistory),
		TrafficViolations:    str(result, "violation_details"),
		DrugTestResults:      str(result, "drug_test_details"),
		LicenseSuspensions:   str(result, "suspension_details"),
	}

	p.Education = Education{
		TruckingSchool:   str(result, "trucking_school_name"),
		GraduationStatus: boolLabel(result, "school_graduated", "graduated", "did not graduate"),
		TrainingHours:    str(result, "school_hours"),
		GPA:              str(result, "school_gpa"),
	}

	p.Compliance = ComplianceInfo{
		FCRAAuthorization:      boolLabel(result, "fcra_authorization", "authorized", "declined"),
		BackgroundCheckConsent: boolLabel(result, "investigative_consumer_report", "consented", "declined"),
		PSPDisclosure:          boolLabel(result, "psp_disclosure_authorization", "authorized", "declined"),
		ClearinghouseConsent:   boolLabel(result, "clearinghouse_release", "consented", "declined"),
	}

	p.Risk = AssessRisk(p.Safety)

	p.Metadata = Metadata{
		Filename:             result.Metadata.SourceFile,
		ConfidenceScore:      result.Confidence,
		TotalFieldsExtracted: result.Metadata.FieldsExtracted,
		ProcessedAt:          time.Now().UTC().Format(time.RFC3339),
		APIVersion:           APIVersion,
	}

	return p
}

// str returns the field's value rendered as a string, or "" when absent.
func str(result *parser.ExtractionResult, name string) string {
	return result.FieldString(name)
}

// boolLabel renders a boolean answer as a human-readable label, "" when the
// field is absent or not boolean so the pruned document drops it.
func boolLabel(result *parser.ExtractionResult, name, whenTrue, whenFalse string) string {
	v := result.Field(name)
	if v.Kind != parser.KindBool {
		return ""
	}
	if v.Bool {
		return whenTrue
	}
	return whenFalse
}

func firstStr(result *parser.ExtractionResult, names ...string) string {
	for _, name := range names {
		if s := str(result, name); s != "" {
			return s
		}
	}
	return ""
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

var endorsementNames = map[string]string{
	"tanker_endorsement":          "Tanker",
	"hazmat_endorsement":          "Hazmat",
	"x_endorsement":               "X",
	"doubles_triples_endorsement": "Doubles/Triples",
	"other_endorsement":           "Other",
}

func endorsementSummary(result *parser.ExtractionResult) string {
	var held []string
	for _, name := range []string{
		"tanker_endorsement", "hazmat_endorsement",
		"x_endorsement", "doubles_triples_endorsement",
		"other_endorsement",
	} {
		if v := result.Field(name); v.Kind == parser.KindBool && v.Bool {
			held = append(held, endorsementNames[name])
		}
	}
	return strings.Join(held, ", ")
}

func employmentStatus(result *parser.ExtractionResult) string {
	v := result.Field("currently_employed")
	if v.Kind != parser.KindBool {
		return ""
	}
	if v.Bool {
		return "employed"
	}
	return "unemployed"
}

func employmentRecords(groups []parser.GroupRecord) []EmploymentRecord {
	records := make([]EmploymentRecord, 0, len(groups))
	for _, g := range groups {
		records = append(records, EmploymentRecord{
			EmployerName:     groupStr(g, "company_name"),
			Position:         groupStr(g, "position_held"),
			StartDate:        groupStr(g, "start_date"),
			EndDate:          groupStr(g, "end_date"),
			ReasonForLeaving: groupStr(g, "reason_for_leaving"),
			EmploymentType:   groupStr(g, "employment_type"),
			CurrentEmployer:  groupBool(g, "current_employer"),
			Terminated:       groupBool(g, "terminated"),
		})
	}
	return records
}

func accidentRecords(groups []parser.GroupRecord) []AccidentRecord {
	records := make([]AccidentRecord, 0, len(groups))
	for _, g := range groups {
		records = append(records, AccidentRecord{
			Type:              groupStr(g, "type"),
			Date:              groupStr(g, "date"),
			City:              groupStr(g, "city"),
			State:             groupStr(g, "state"),
			CommercialVehicle: groupBool(g, "commercial_vehicle"),
			DOTRecordable:     groupBool(g, "dot_recordable"),
			AtFault:           groupBool(g, "at_fault"),
			Description:       groupStr(g, "description"),
		})
	}
	return records
}

func groupStr(g parser.GroupRecord, name string) string {
	if v, ok := g[name]; ok {
		return v.AsString()
	}
	return ""
}

func groupBool(g parser.GroupRecord, name string) bool {
	if v, ok := g[name]; ok {
		return v.Kind == parser.KindBool && v.Bool
	}
	return false
}
