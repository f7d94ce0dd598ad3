package dto

// Request DTOs

type PersonalRegisterRequest struct {
	FullName    string `json:"fullName" validate:"required,min=2"`
	PhoneNumber string `json:"phoneNumber" validate:"required,min=7,max=20"`
	Password    string `json:"password" validate:"omitempty,min=4"`
}

type PersonalLoginRequest struct {
	PatientID string `json:"patientId" validate:"required"`
	Password  string `json:"password" validate:"required"`
}

type PatientReportRequest struct {
	PatientID  string `json:"patientId" validate:"required"`
	RespRate   int    `json:"respRate" validate:"required,gt=0"`
	SysBP      int    `json:"sysBp" validate:"required,gt=0"`
	GCS        int    `json:"gcs" validate:"required,gte=3,lte=15"`
	QsofaScore *int   `json:"qsofaScore" validate:"required,gte=0,lte=3"`
	RiskStatus string `json:"riskStatus" validate:"required"`
}

// Response DTOs

type PersonalRegisterResponse struct {
	Message   string `json:"message"`
	PatientID string `json:"patientId"`
	Password  string `json:"password"`
}

type UserInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

type LoginResponse struct {
	Message string   `json:"message"`
	User    UserInfo `json:"user"`
}
