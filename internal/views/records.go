package views

import "strings"

// RecordCategory groups medical record types for filtering and iconography.
type RecordCategory string

const (
	CategoryConsultation RecordCategory = "consultation"
	CategoryTest         RecordCategory = "test"
	CategoryProcedure    RecordCategory = "procedure"
	CategoryCheckup      RecordCategory = "checkup"
	CategoryEmergency    RecordCategory = "emergency"
	CategoryFollowUp     RecordCategory = "followup"
	CategoryPrescription RecordCategory = "prescription"
)

// recordCategories maps backend record types to display categories. Lookup is
// the single source of truth for every surface that buckets records.
var recordCategories = map[string]RecordCategory{
	"CONSULTATION": CategoryConsultation,
	"LAB_TEST":     CategoryTest,
	"TEST_RESULT":  CategoryTest,
	"IMAGING":      CategoryTest,
	"SURGERY":      CategoryProcedure,
	"PROCEDURE":    CategoryProcedure,
	"VACCINATION":  CategoryProcedure,
	"CHECKUP":      CategoryCheckup,
	"EMERGENCY":    CategoryEmergency,
	"FOLLOW_UP":    CategoryFollowUp,
	"PRESCRIPTION": CategoryPrescription,
}

// CategoryForRecordType buckets a backend record type. Unknown or empty types
// fall back to consultation.
func CategoryForRecordType(recordType string) RecordCategory {
	if category, ok := recordCategories[strings.ToUpper(strings.TrimSpace(recordType))]; ok {
		return category
	}
	return CategoryConsultation
}
