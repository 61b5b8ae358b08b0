package catalog

// The driver-application field table. Sections mirror the Tenstreet form
// layout, pages 1-30. Pattern order matters: the resolver takes the first
// match, so the label-anchored pattern for the known template comes first and
// looser fallbacks follow.

func personalFields() []FieldDefinition {
	return []FieldDefinition{
		{Name: "referral_code", Type: FieldTypeText, Section: "personal", Patterns: []string{
			`Referral Code[:\s]*([^\n\r]+)`,
			`Referral[:\s]*([^\n\r]+)`,
		}},
		{Name: "full_name", Type: FieldTypeText, Section: "personal", Required: true, Patterns: []string{
			`Name\s+([A-Za-z\s\.]+?)(?:\n|$)`,
			`Full Name[:\s]*([^\n\r]+)`,
		}},
		{Name: "current_address", Type: FieldTypeAddress, Section: "personal", Patterns: []string{
			`Current Address\s+([^\n\r]+)`,
			`Address[:\s]*([^\n\r]+)`,
		}},
		{Name: "city_state_zip", Type: FieldTypeText, Section: "personal", Patterns: []string{
			`City, State/Province Zip/Postal\s+([^\n\r]+)`,
			`City[:\s]*([^\n\r]+)`,
		}},
		{Name: "country", Type: FieldTypeText, Section: "personal", Patterns: []string{
			`Country\s+([^\n\r]+)`,
		}},
		{Name: "residence_duration", Type: FieldTypeText, Section: "personal", Patterns: []string{
			`Residence\s+([^\n\r]+)`,
			`3 years or longer[^\n]*(Yes|No)`,
		}},
		{Name: "ssn", Type: FieldTypeIdentity, Section: "personal", Patterns: []string{
			`SSN/SIN\s+(\d{3}-\d{2}-\d{4})`,
			`SSN[:\s]*(\d{3}-\d{2}-\d{4})`,
		}},
		{Name: "date_of_birth", Type: FieldTypeDate, Section: "personal", Patterns: []string{
			`Date of Birth\s+(\d{1,2}-\d{1,2}-\d{4})`,
			`DOB[:\s]*(\d{1,2}[-/]\d{1,2}[-/]\d{4})`,
		}},
		{Name: "primary_phone", Type: FieldTypePhone, Section: "personal", Patterns: []string{
			`Primary Phone\s+(\d{3}-\d{3}-\d{4})`,
			`Phone[:\s]*(\d{3}[-\s]\d{3}[-\s]\d{4})`,
		}},
		{Name: "cell_phone", Type: FieldTypePhone, Section: "personal", Patterns: []string{
			`Cell Phone\s+(\d{3}-\d{3}-\d{4})`,
			`Cell[:\s]*(\d{3}[-\s]\d{3}[-\s]\d{4})`,
		}},
		{Name: "email", Type: FieldTypeEmail, Section: "personal", Patterns: []string{
			`Email\s+([a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,})`,
			`E-mail[:\s]*([a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,})`,
		}},
		{Name: "emergency_contact_name", Type: FieldTypeText, Section: "personal", Patterns: []string{
			`Emergency contact name[:\s]*([^\n\r]+)`,
			`Emergency Contact[:\s]*([^\n\r]+)`,
		}},
		{Name: "emergency_contact_phone", Type: FieldTypePhone, Section: "personal", Patterns: []string{
			`Emergency contact phone number[:\s]*(\d{3}[\s-]\d{3}[\s-]\d{4})`,
			`Emergency.*phone[:\s]*(\d{3}[\s-]\d{3}[\s-]\d{4})`,
		}},
	}
}

func companyFields() []FieldDefinition {
	return []FieldDefinition{
		{Name: "position_applying_for", Type: FieldTypeText, Section: "company", Patterns: []string{
			`What position are you applying for\?\s*([^\n\r]+)`,
			`Position[:\s]*([^\n\r]+)`,
		}},
		{Name: "location_applying_for", Type: FieldTypeText, Section: "company", Patterns: []string{
			`What location are you applying for\?\s*([^\n\r]+)`,
			`Location[:\s]*([^\n\r]+)`,
		}},
		{Name: "legally_eligible_employment", Type: FieldTypeBoolean, Section: "company", Patterns: []string{
			`Are you legally eligible for employment in the United States\?\s*(Yes|No)`,
			`legally eligible.*?\s*(Yes|No)`,
		}},
		{Name: "currently_employed", Type: FieldTypeBoolean, Section: "company", Patterns: []string{
			`Are you currently employed\?\s*(Yes|No)`,
			`currently employed.*?\s*(Yes|No)`,
		}},
		{Name: "last_employment_end_date", Type: FieldTypeDate, Section: "company", Patterns: []string{
			`What date did your last employment end\?\s*(\d{1,2}[-/]\d{1,2}[-/]\d{4})`,
			`last employment end.*?(\d{1,2}[-/]\d{1,2}[-/]\d{4})`,
		}},
		{Name: "read_write_speak_english", Type: FieldTypeBoolean, Section: "company", Patterns: []string{
			`Do you read, write, and speak English\?\s*(Yes|No)`,
			`speak English.*?\s*(Yes|No)`,
		}},
		{Name: "worked_for_company_before", Type: FieldTypeBoolean, Section: "company", Patterns: []string{
			`Have you ever worked for this company before\?\s*(Yes|No)`,
			`worked for this company.*?\s*(Yes|No)`,
		}},
		{Name: "has_twic_card", Type: FieldTypeBoolean, Section: "company", Patterns: []string{
			`Do you have a current TWIC card\?\s*(Yes|No)`,
			`TWIC card.*?\s*(Yes|No)`,
		}},
		{Name: "twic_expiration_date", Type: FieldTypeDate, Section: "company", Patterns: []string{
			`TWIC.*?Expiration date[:\s]*(\d{1,2}-\d{1,2}-\d{4})`,
			`TWIC.*?expires[:\s]*(\d{1,2}[-/]\d{1,2}[-/]\d{4})`,
		}},
		{Name: "known_by_other_name", Type: FieldTypeBoolean, Section: "company", Patterns: []string{
			`Have you ever been known by any other name\?\s*(Yes|No)`,
			`other name.*?\s*(Yes|No)`,
		}},
		{Name: "other_name", Type: FieldTypeText, Section: "company", Patterns: []string{
			`Enter name[:\s]*([^\n\r]+)`,
			`other name[:\s]*([^\n\r]+)`,
		}},
		{Name: "how_heard_about_us", Type: FieldTypeText, Section: "company", Patterns: []string{
			`How did you hear about us\?\s*([^\n\r]+)`,
			`hear about us.*?\s*([^\n\r]+)`,
		}},
		{Name: "referral_driver_name", Type: FieldTypeText, Section: "company", Patterns: []string{
			`Driver Referral.*?enter the driver's name\s*([^\n\r]+)`,
			`driver's name[:\s]*([^\n\r]+)`,
		}},
	}
}

func experienceFields() []FieldDefinition {
	return []FieldDefinition{
		{Name: "straight_truck_experience", Type: FieldTypeText, Section: "experience", Patterns: []string{
			`Straight Truck\s+([^\n\r]+)`,
			`Straight.*?(\d+[-+\s]*years?|None)`,
		}},
		{Name: "tractor_semi_trailer_experience", Type: FieldTypeText, Section: "experience", Patterns: []string{
			`Tractor and Semi-Trailer\s+([^\n\r]+)`,
			`Semi-Trailer.*?(\d+[-+\s]*years?|None)`,
		}},
		{Name: "tractor_two_trailers_experience", Type: FieldTypeText, Section: "experience", Patterns: []string{
			`Tractor - Two Trailers\s+([^\n\r]+)`,
			`Two Trailers.*?(\d+[-+\s]*years?|None)`,
		}},
		{Name: "other_experience", Type: FieldTypeText, Section: "experience", Patterns: []string{
			`Other\s+([^\n\r]+)`,
			`Other.*?experience[:\s]*([^\n\r]+)`,
		}},
	}
}

func licenseFields() []FieldDefinition {
	return []FieldDefinition{
		{Name: "license_number", Type: FieldTypeText, Section: "license", Required: true, Patterns: []string{
			`License Number\s+([A-Za-z0-9]+)`,
			`License #[:\s]*([A-Za-z0-9]+)`,
		}},
		{Name: "licensing_authority", Type: FieldTypeText, Section: "license", Patterns: []string{
			`Licensing Authority\s+([A-Z]{2})`,
			`State[:\s]*([A-Z]{2})`,
		}},
		{Name: "license_country", Type: FieldTypeText, Section: "license", Patterns: []string{
			`Country\s+(US|United States|CA|Canada)`,
			`License.*?Country[:\s]*([^\n\r]+)`,
		}},
		{Name: "license_class", Type: FieldTypeText, Section: "license", Patterns: []string{
			`License Class\s+([^\n\r]+)`,
			`Class[:\s]*([^\n\r]+)`,
		}},
		{Name: "license_expiration_date", Type: FieldTypeDate, Section: "license", Patterns: []string{
			`License Expiration Date\s+(\d{1,2}-\d{1,2}-\d{4})`,
			`Expires[:\s]*(\d{1,2}[-/]\d{1,2}[-/]\d{4})`,
		}},
		{Name: "dot_medical_card_expiration", Type: FieldTypeDate, Section: "license", Patterns: []string{
			`DOT Medical Card Expiration Date\s+(\d{1,2}-\d{1,2}-\d{4})`,
			`Medical.*?expir.*?(\d{1,2}[-/]\d{1,2}[-/]\d{4})`,
		}},
		{Name: "current_license", Type: FieldTypeBoolean, Section: "license", Patterns: []string{
			`Current License\s+(Yes|No)`,
			`current.*?license.*?(Yes|No)`,
		}},
		{Name: "has_cdl", Type: FieldTypeBoolean, Section: "license", Patterns: []string{
			`Commercial Driver License\s+(Yes|No)`,
			`CDL.*?(Yes|No)`,
		}},
	}
}

func endorsementFields() []FieldDefinition {
	return []FieldDefinition{
		{Name: "tanker_endorsement", Type: FieldTypeBoolean, Section: "endorsements", Patterns: []string{
			`Tanker Endorsement\s+(Yes|No)`,
			`Tanker.*?(Yes|No)`,
		}},
		{Name: "hazmat_endorsement", Type: FieldTypeBoolean, Section: "endorsements", Patterns: []string{
			`HAZMAT Endorsement\s+(Yes|No)`,
			`HAZMAT.*?(Yes|No)`,
		}},
		{Name: "x_endorsement", Type: FieldTypeBoolean, Section: "endorsements", Patterns: []string{
			`X Endorsement\s+(Yes|No)`,
			`X.*?Endorsement.*?(Yes|No)`,
		}},
		{Name: "doubles_triples_endorsement", Type: FieldTypeBoolean, Section: "endorsements", Patterns: []string{
			`Doubles Triples Endorsement\s+(Yes|No)`,
			`Doubles.*?Triples.*?(Yes|No)`,
		}},
		{Name: "other_endorsement", Type: FieldTypeBoolean, Section: "endorsements", Patterns: []string{
			`Other Endorsement\s+(Yes|No)`,
			`Other.*?Endorsement.*?(Yes|No)`,
		}},
	}
}

func educationFields() []FieldDefinition {
	return []FieldDefinition{
		{Name: "trucking_school_name", Type: FieldTypeText, Section: "education", Patterns: []string{
			`School\s+([^\n\r]+)`,
			`trucking.*?school[:\s]*([^\n\r]+)`,
		}},
		{Name: "school_address", Type: FieldTypeAddress, Section: "education", Patterns: []string{
			`School.*?Address[:\s]*([^\n\r]+)`,
			`school.*?location[:\s]*([^\n\r]+)`,
		}},
		{Name: "school_city_state", Type: FieldTypeText, Section: "education", Patterns: []string{
			`School.*?City, State/Province[:\s]*([^\n\r]+)`,
			`school.*?city[:\s]*([^\n\r]+)`,
		}},
		{Name: "school_phone", Type: FieldTypePhone, Section: "education", Patterns: []string{
			`School.*?Phone[:\s]*(\d{3}[-\s]\d{3}[-\s]\d{4})`,
			`school.*?phone[:\s]*(\d{3}[-\s]\d{3}[-\s]\d{4})`,
		}},
		{Name: "school_graduated", Type: FieldTypeBoolean, Section: "education", Patterns: []string{
			`Did you graduate\?\s*(Yes|No)`,
			`graduate.*?(Yes|No)`,
		}},
		{Name: "school_gpa", Type: FieldTypeNumber, Section: "education", Patterns: []string{
			`GPA\s+(\d+\.?\d*)`,
			`grade.*?(\d+\.?\d*)`,
		}},
		{Name: "school_hours", Type: FieldTypeNumber, Section: "education", Patterns: []string{
			`Hours of Instruction\s+(\d+)`,
			`instruction.*?hours[:\s]*(\d+)`,
		}},
	}
}

func complianceFields() []FieldDefinition {
	return []FieldDefinition{
		{Name: "currently_disqualified", Type: FieldTypeBoolean, Section: "compliance", Patterns: []string{
			`are you currently disqualified.*?\s*(Yes|No)`,
			`disqualified.*?(Yes|No)`,
		}},
		{Name: "license_suspended_revoked", Type: FieldTypeBoolean, Section: "compliance", Patterns: []string{
			`license.*?suspended or revoked.*?\s*(Yes|No)`,
			`suspended.*?revoked.*?(Yes|No)`,
		}},
		{Name: "suspension_details", Type: FieldTypeText, Section: "compliance", Patterns: []string{
			`suspension.*?detail.*?([^\n\r]+)`,
			`revocation.*?detail.*?([^\n\r]+)`,
		}},
		{Name: "denied_license", Type: FieldTypeBoolean, Section: "compliance", Patterns: []string{
			`denied a license.*?\s*(Yes|No)`,
			`denied.*?license.*?(Yes|No)`,
		}},
		{Name: "denial_details", Type: FieldTypeText, Section: "compliance", Patterns: []string{
			`denial.*?detail.*?([^\n\r]+)`,
			`denied.*?detail.*?([^\n\r]+)`,
		}},
		{Name: "failed_drug_test", Type: FieldTypeBoolean, Section: "compliance", Patterns: []string{
			`tested positive.*?refused to test.*?\s*(Yes|No)`,
			`drug.*?test.*?(Yes|No)`,
		}},
		{Name: "drug_test_details", Type: FieldTypeText, Section: "compliance", Patterns: []string{
			`drug.*?test.*?detail.*?([^\n\r]+)`,
			`positive.*?detail.*?([^\n\r]+)`,
		}},
		{Name: "last_positive_date", Type: FieldTypeDate, Section: "compliance", Patterns: []string{
			`Date of last positive.*?(\d{1,2}-\d{1,2}-\d{4})`,
			`last positive.*?(\d{1,2}[-/]\d{1,2}[-/]\d{4})`,
		}},
		{Name: "convicted_serious_offenses", Type: FieldTypeBoolean, Section: "compliance", Patterns: []string{
			`convicted of any of the following offenses.*?\s*(Yes|No)`,
			`serious.*?offenses.*?(Yes|No)`,
		}},
	}
}

func accidentFields() []FieldDefinition {
	return []FieldDefinition{
		{Name: "accidents_last_5_years", Type: FieldTypeBoolean, Section: "accidents", Patterns: []string{
			`involved in any accidents.*?last 5 years.*?\s*(Yes|No)`,
			`accidents.*?5 years.*?(Yes|No)`,
		}},
		{Name: "accident_type", Type: FieldTypeText, Section: "accidents", Patterns: []string{
			`Type of Accident.*?([^\n\r]+)`,
			`accident.*?type[:\s]*([^\n\r]+)`,
		}},
		{Name: "accident_date", Type: FieldTypeDate, Section: "accidents", Patterns: []string{
			`Date of Accident.*?(\d{1,2}-\d{4})`,
			`accident.*?date[:\s]*(\d{1,2}[-/]\d{4})`,
		}},
		{Name: "hazmat_accident", Type: FieldTypeBoolean, Section: "accidents", Patterns: []string{
			`Hazmat Accident.*?\s*(Yes|No)`,
			`hazmat.*?accident.*?(Yes|No)`,
		}},
		{Name: "vehicle_towed", Type: FieldTypeBoolean, Section: "accidents", Patterns: []string{
			`any vehicle towed away\?\s*(Yes|No)`,
			`towed.*?(Yes|No)`,
		}},
		{Name: "accident_city", Type: FieldTypeText, Section: "accidents", Patterns: []string{
			`City\s+([^\n\r]+)`,
			`accident.*?city[:\s]*([^\n\r]+)`,
		}},
		{Name: "accident_state", Type: FieldTypeText, Section: "accidents", Patterns: []string{
			`State/Province\s+([A-Z]{2})`,
			`accident.*?state[:\s]*([A-Z]{2})`,
		}},
		{Name: "commercial_vehicle_accident", Type: FieldTypeBoolean, Section: "accidents", Patterns: []string{
			`Were you in a commercial vehicle\?\s*(Yes|No)`,
			`commercial vehicle.*?(Yes|No)`,
		}},
		{Name: "dot_recordable_accident", Type: FieldTypeBoolean, Section: "accidents", Patterns: []string{
			`Department of Transportation recordable accident\?\s*(Yes|No)`,
			`DOT.*?recordable.*?(Yes|No)`,
		}},
		{Name: "at_fault", Type: FieldTypeBoolean, Section: "accidents", Patterns: []string{
			`Were you at fault\?\s*(Yes|No)`,
			`at fault.*?(Yes|No)`,
		}},
		{Name: "ticketed", Type: FieldTypeBoolean, Section: "accidents", Patterns: []string{
			`Were you ticketed\?\s*(Yes|No)`,
			`ticketed.*?(Yes|No)`,
		}},
		{Name: "accident_description", Type: FieldTypeText, Section: "accidents", Patterns: []string{
			`Description\s+([^\n\r]+(?:\n[^\n\r]+)*)`,
			`accident.*?description[:\s]*([^\n\r]+)`,
		}},
	}
}

func trafficFields() []FieldDefinition {
	return []FieldDefinition{
		{Name: "moving_violations_3_years", Type: FieldTypeBoolean, Section: "traffic", Patterns: []string{
			`moving violations.*?past 3 years.*?\s*(Yes|No)`,
			`traffic.*?violations.*?(Yes|No)`,
		}},
		{Name: "violation_details", Type: FieldTypeText, Section: "traffic", Patterns: []string{
			`violations.*?detail.*?([^\n\r]+)`,
			`traffic.*?detail.*?([^\n\r]+)`,
		}},
	}
}

func criminalFields() []FieldDefinition {
	return []FieldDefinition{
		{Name: "convicted_of_crime", Type: FieldTypeBoolean, Section: "criminal", Patterns: []string{
			`Have you ever been convicted of a crime\?\s*(Yes|No)`,
			`convicted.*?crime.*?(Yes|No)`,
		}},
		{Name: "crime_details", Type: FieldTypeText, Section: "criminal", Patterns: []string{
			`convicted.*?Comment\s+([^\n\r]+)`,
			`crime.*?comment[:\s]*([^\n\r]+)`,
		}},
		{Name: "deferred_prosecutions", Type: FieldTypeBoolean, Section: "criminal", Patterns: []string{
			`Do you have any deferred prosecutions\?\s*(Yes|No)`,
			`deferred.*?prosecutions.*?(Yes|No)`,
		}},
		{Name: "charges_pending", Type: FieldTypeBoolean, Section: "criminal", Patterns: []string{
			`Do you have criminal charges pending\?\s*(Yes|No)`,
			`charges.*?pending.*?(Yes|No)`,
		}},
		{Name: "felony_conviction", Type: FieldTypeBoolean, Section: "criminal", Patterns: []string{
			`pled.*?guilty.*?convicted.*?felony\?\s*(Yes|No)`,
			`felony.*?(Yes|No)`,
		}},
		{Name: "felony_details", Type: FieldTypeText, Section: "criminal", Patterns: []string{
			`felony.*?Comment\s+([^\n\r]+)`,
			`felony.*?comment[:\s]*([^\n\r]+)`,
		}},
		{Name: "minister_permit", Type: FieldTypeBoolean, Section: "criminal", Patterns: []string{
			`minister's permit.*?Canada\?\s*(Yes|No)`,
			`minister.*?permit.*?(Yes|No)`,
		}},
		{Name: "misdemeanor_5_years", Type: FieldTypeBoolean, Section: "criminal", Patterns: []string{
			`within the last five years.*?misdemeanor\?\s*(Yes|No)`,
			`misdemeanor.*?5 years.*?(Yes|No)`,
		}},
	}
}

func signatureFields() []FieldDefinition {
	return []FieldDefinition{
		{Name: "signature_full_name", Type: FieldTypeText, Section: "signature", Patterns: []string{
			`Full Name\s+([^\n\r]+)`,
			`signature.*?name[:\s]*([^\n\r]+)`,
		}},
		{Name: "ip_address", Type: FieldTypeText, Section: "signature", Patterns: []string{
			`IP Address\s+([0-9.]+)`,
			`IP[:\s]*([0-9.]+)`,
		}},
		{Name: "signature_date_time", Type: FieldTypeText, Section: "signature", Patterns: []string{
			`Signature Date/Time\s+([^\n\r]+)`,
			`signature.*?date[:\s]*([^\n\r]+)`,
		}},
	}
}

func fcraFields() []FieldDefinition {
	return []FieldDefinition{
		{Name: "fcra_summary_acknowledgment", Type: FieldTypeBoolean, Section: "fcra", Patterns: []string{
			`FCRA Summary of Rights Acknowledgment.*?\s*(Yes|No)`,
			`FCRA.*?acknowledgment.*?(Yes|No)`,
		}},
		{Name: "psp_disclosure_authorization", Type: FieldTypeBoolean, Section: "fcra", Patterns: []string{
			`PSP Disclosure and Authorization.*?\s*(Yes|No)`,
			`PSP.*?authorization.*?(Yes|No)`,
		}},
		{Name: "fcra_disclosure", Type: FieldTypeBoolean, Section: "fcra", Patterns: []string{
			`FCRA Disclosure.*?\s*(Yes|No)`,
			`FCRA.*?disclosure.*?(Yes|No)`,
		}},
		{Name: "fcra_authorization", Type: FieldTypeBoolean, Section: "fcra", Patterns: []string{
			`FCRA Authorization.*?\s*(Yes|No)`,
			`FCRA.*?authorization.*?(Yes|No)`,
		}},
		{Name: "employment_verification_acknowledgment", Type: FieldTypeBoolean, Section: "fcra", Patterns: []string{
			`Employment Verification Acknowledgment.*?\s*(Yes|No)`,
			`employment.*?verification.*?(Yes|No)`,
		}},
		{Name: "clearinghouse_release", Type: FieldTypeBoolean, Section: "fcra", Patterns: []string{
			`Clearinghouse Release.*?\s*(Yes|No)`,
			`clearinghouse.*?(Yes|No)`,
		}},
		{Name: "investigative_consumer_report", Type: FieldTypeBoolean, Section: "fcra", Patterns: []string{
			`INVESTIGATIVE CONSUMER REPORT.*?\s*(Yes|No)`,
			`investigative.*?report.*?(Yes|No)`,
		}},
	}
}

// DefaultFields returns the full built-in field table in section order.
func DefaultFields() []FieldDefinition {
	var defs []FieldDefinition
	defs = append(defs, personalFields()...)
	defs = append(defs, companyFields()...)
	defs = append(defs, experienceFields()...)
	defs = append(defs, licenseFields()...)
	defs = append(defs, endorsementFields()...)
	defs = append(defs, educationFields()...)
	defs = append(defs, complianceFields()...)
	defs = append(defs, accidentFields()...)
	defs = append(defs, trafficFields()...)
	defs = append(defs, criminalFields()...)
	defs = append(defs, signatureFields()...)
	defs = append(defs, fcraFields()...)
	return defs
}
