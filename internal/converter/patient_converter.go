package converter

import (
	"sepsis-screening-server/internal/delivery/dto"
	"sepsis-screening-server/internal/domain/entity"
)

// PatientToUserInfo converts a Patient entity to the session payload the
// login response carries.
func PatientToUserInfo(patient *entity.Patient) dto.UserInfo {
	return dto.UserInfo{
		ID:   patient.PatientID,
		Name: patient.FullName,
		Role: "patient",
	}
}
