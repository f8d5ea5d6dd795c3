package http

import (
	"time"

	"jobboard/internal/core/domain/model/account"
	"jobboard/internal/core/domain/model/company"
	"jobboard/internal/core/domain/model/engagement"
	"jobboard/internal/core/domain/model/jobseeker"
	"jobboard/internal/core/domain/model/vacancy"
)

// Error is the uniform body returned for failed requests.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthResponse struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Token    string `json:"token"`
}

type BiographyPayload struct {
	PreviousWorkplace string `json:"previousWorkplace"`
	PreviousPosition  string `json:"previousPosition"`
	QuitReason        string `json:"quitReason"`
	FamilyConditions  string `json:"familyConditions"`
	LivingConditions  string `json:"livingConditions"`
	Preferences       string `json:"preferences"`
	SelfDescription   string `json:"selfDescription"`
}

type JobseekerPayload struct {
	Profession string           `json:"profession"`
	Experience float64          `json:"experience"`
	Education  string           `json:"education"`
	Location   string           `json:"location"`
	IsEmployed bool             `json:"isEmployed"`
	Biography  BiographyPayload `json:"biography"`
}

type JobseekerResponse struct {
	ID           string           `json:"id"`
	AppUserID    string           `json:"appUserId"`
	Profession   string           `json:"profession"`
	Experience   float64          `json:"experience"`
	Education    string           `json:"education"`
	Location     string           `json:"location"`
	IsEmployed   bool             `json:"isEmployed"`
	Biography    BiographyPayload `json:"biography"`
	RegisterDate time.Time        `json:"registerDate"`
}

type CompanyPayload struct {
	SelfDescription string `json:"selfDescription"`
	Location        string `json:"location"`
}

type CompanyResponse struct {
	ID              string    `json:"id"`
	AppUserID       string    `json:"appUserId"`
	SelfDescription string    `json:"selfDescription"`
	Location        string    `json:"location"`
	RegisterDate    time.Time `json:"registerDate"`
}

type VacancyPayload struct {
	CompanyID            string  `json:"companyId"`
	Title                string  `json:"title"`
	Description          string  `json:"description"`
	CandidateDescription string  `json:"candidateDescription"`
	Position             string  `json:"position"`
	SalaryMin            float64 `json:"salaryMin"`
	SalaryMax            float64 `json:"salaryMax"`
	WorkMode             string  `json:"workMode"`
	LivingConditions     string  `json:"livingConditions"`
}

type VacancyResponse struct {
	ID                   string    `json:"id"`
	CompanyID            string    `json:"companyId"`
	Title                string    `json:"title"`
	Description          string    `json:"description"`
	CandidateDescription string    `json:"candidateDescription"`
	Position             string    `json:"position"`
	SalaryMin            float64   `json:"salaryMin"`
	SalaryMax            float64   `json:"salaryMax"`
	WorkMode             string    `json:"workMode"`
	LivingConditions     string    `json:"livingConditions"`
	PublishDate          time.Time `json:"publishDate"`
}

type ApplicationRequest struct {
	VacancyID   string `json:"vacancyId"`
	JobseekerID string `json:"jobseekerId"`
}

type ApplicationStatusRequest struct {
	Status          string `json:"status"`
	CompanyResponse string `json:"companyResponse"`
}

type ApplicationResponse struct {
	ID              string    `json:"id"`
	VacancyID       string    `json:"vacancyId"`
	JobseekerID     string    `json:"jobseekerId"`
	Status          string    `json:"status"`
	CompanyResponse string    `json:"companyResponse"`
	CreationDate    time.Time `json:"creationDate"`
}

type OfferRequest struct {
	VacancyID      string `json:"vacancyId"`
	JobseekerID    string `json:"jobseekerId"`
	CompanyMessage string `json:"companyMessage"`
}

type OfferReactionRequest struct {
	Status            string `json:"status"`
	JobseekerResponse string `json:"jobseekerResponse"`
}

type OfferResponse struct {
	ID                string    `json:"id"`
	VacancyID         string    `json:"vacancyId"`
	JobseekerID       string    `json:"jobseekerId"`
	Status            string    `json:"status"`
	CompanyMessage    string    `json:"companyMessage"`
	JobseekerResponse string    `json:"jobseekerResponse"`
	CreationDate      time.Time `json:"creationDate"`
}

type BulkVacancyPayload struct {
	Title                string  `json:"title"`
	Description          string  `json:"description"`
	CandidateDescription string  `json:"candidateDescription"`
	Position             string  `json:"position"`
	SalaryMin            float64 `json:"salaryMin"`
	SalaryMax            float64 `json:"salaryMax"`
	WorkMode             string  `json:"workMode"`
	LivingConditions     string  `json:"livingConditions"`
}

type BulkCompanyPayload struct {
	Username        string               `json:"username"`
	Email           string               `json:"email"`
	Phone           string               `json:"phone"`
	Password        string               `json:"password"`
	SelfDescription string               `json:"selfDescription"`
	Location        string               `json:"location"`
	Vacancies       []BulkVacancyPayload `json:"vacancies"`
}

type BulkJobseekerPayload struct {
	Username string           `json:"username"`
	Email    string           `json:"email"`
	Phone    string           `json:"phone"`
	Password string           `json:"password"`
	Profile  JobseekerPayload `json:"profile"`
}

type ReindexResponse struct {
	Jobseekers int `json:"jobseekers"`
	Vacancies  int `json:"vacancies"`
}

type ClearIndexResponse struct {
	Jobseekers int64 `json:"jobseekers"`
	Vacancies  int64 `json:"vacancies"`
}

func toBiographyPayload(b jobseeker.Biography) BiographyPayload {
	return BiographyPayload{
		PreviousWorkplace: b.PreviousWorkplace,
		PreviousPosition:  b.PreviousPosition,
		QuitReason:        b.QuitReason,
		FamilyConditions:  b.FamilyConditions,
		LivingConditions:  b.LivingConditions,
		Preferences:       b.Preferences,
		SelfDescription:   b.SelfDescription,
	}
}

func toBiography(p BiographyPayload) jobseeker.Biography {
	return jobseeker.Biography{
		PreviousWorkplace: p.PreviousWorkplace,
		PreviousPosition:  p.PreviousPosition,
		QuitReason:        p.QuitReason,
		FamilyConditions:  p.FamilyConditions,
		LivingConditions:  p.LivingConditions,
		Preferences:       p.Preferences,
		SelfDescription:   p.SelfDescription,
	}
}

func toJobseekerResponse(js *jobseeker.Jobseeker) JobseekerResponse {
	return JobseekerResponse{
		ID:           js.ID().String(),
		AppUserID:    js.AppUserID().String(),
		Profession:   js.Profession(),
		Experience:   js.Experience(),
		Education:    js.Education().String(),
		Location:     js.Location(),
		IsEmployed:   js.IsEmployed(),
		Biography:    toBiographyPayload(js.Biography()),
		RegisterDate: js.RegisterDate(),
	}
}

func toJobseekerResponses(jobseekers []*jobseeker.Jobseeker) []JobseekerResponse {
	response := make([]JobseekerResponse, len(jobseekers))
	for i, js := range jobseekers {
		response[i] = toJobseekerResponse(js)
	}
	return response
}

func toCompanyResponse(c *company.Company) CompanyResponse {
	return CompanyResponse{
		ID:              c.ID().String(),
		AppUserID:       c.AppUserID().String(),
		SelfDescription: c.SelfDescription(),
		Location:        c.Location(),
		RegisterDate:    c.RegisterDate(),
	}
}

func toVacancyResponse(v *vacancy.Vacancy) VacancyResponse {
	return VacancyResponse{
		ID:                   v.ID().String(),
		CompanyID:            v.CompanyID().String(),
		Title:                v.Title(),
		Description:          v.Description(),
		CandidateDescription: v.CandidateDescription(),
		Position:             v.Position(),
		SalaryMin:            v.SalaryMin(),
		SalaryMax:            v.SalaryMax(),
		WorkMode:             v.WorkMode().String(),
		LivingConditions:     v.LivingConditions(),
		PublishDate:          v.PublishDate(),
	}
}

func toVacancyResponses(vacancies []*vacancy.Vacancy) []VacancyResponse {
	response := make([]VacancyResponse, len(vacancies))
	for i, v := range vacancies {
		response[i] = toVacancyResponse(v)
	}
	return response
}

func toApplicationResponse(a *engagement.JobApplication) ApplicationResponse {
	return ApplicationResponse{
		ID:              a.ID().String(),
		VacancyID:       a.VacancyID().String(),
		JobseekerID:     a.JobseekerID().String(),
		Status:          string(a.Status()),
		CompanyResponse: a.CompanyResponse(),
		CreationDate:    a.CreationDate(),
	}
}

func toOfferResponse(o *engagement.Offer) OfferResponse {
	return OfferResponse{
		ID:                o.ID().String(),
		VacancyID:         o.VacancyID().String(),
		JobseekerID:       o.JobseekerID().String(),
		Status:            string(o.Status()),
		CompanyMessage:    o.CompanyMessage(),
		JobseekerResponse: o.JobseekerResponse(),
		CreationDate:      o.CreationDate(),
	}
}

func toAuthResponse(user *account.AppUser, tokenString string) AuthResponse {
	return AuthResponse{
		UserID:   user.ID().String(),
		Username: user.Username(),
		Role:     string(user.Role()),
		Token:    tokenString,
	}
}
