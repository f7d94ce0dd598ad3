package converter

import (
	"sepsis-screening-server/internal/delivery/dto"
	"sepsis-screening-server/internal/domain/entity"
)

// AllowedHospitalToLoginResponse converts an allow-list entry to the
// hospital login response. The administrative record, when present,
// supplies the location.
func AllowedHospitalToLoginResponse(hospital *entity.AllowedHospital, detail *entity.Hospital) *dto.HospitalLoginResponse {
	if hospital == nil {
		return nil
	}

	resp := &dto.HospitalLoginResponse{
		Message:    "Login successful",
		HospitalID: hospital.HospitalID,
		Name:       hospital.Name,
	}
	if detail != nil {
		resp.Location = detail.Location
		if detail.Name != "" {
			resp.Name = detail.Name
		}
	}
	return resp
}
