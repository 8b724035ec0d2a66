package domain

import (
	"context"
	"time"
)

// Dates travel as YYYY-MM-DD strings end to end; the store casts them to
// and from the date columns.

type Profile struct {
	ProfileID     int64      `json:"profile_id"`
	UserID        int64      `json:"user_id"`
	DateOfBirth   string     `json:"date_of_birth"`
	Gender        string     `json:"gender"`
	CurrentSalary float64    `json:"current_salary"`
	IsAnnually    bool       `json:"is_annually"`
	CountryID     int64      `json:"country_id"`
	StateID       int64      `json:"state_id"`
	CityID        int64      `json:"city_id"`
	Zipcode       string     `json:"zipcode"`
	Address       string     `json:"address"`
	AddedDate     time.Time  `json:"added_date"`
	UpdatedDate   *time.Time `json:"updated_date,omitempty"`
}

type Education struct {
	EducationID   int64     `json:"education_id"`
	UserID        int64     `json:"user_id"`
	DegreeName    string    `json:"degree_name"`
	InstituteName string    `json:"institute_name"`
	StartDate     string    `json:"start_date"`
	EndDate       string    `json:"end_date"`
	Percentage    float64   `json:"percentage"`
	CGPA          float64   `json:"cgpa"`
	AddedDate     time.Time `json:"added_date"`
}

type Experience struct {
	ExperienceID int64     `json:"experience_id"`
	UserID       int64     `json:"user_id"`
	CompanyName  string    `json:"company_name"`
	JobTitle     string    `json:"job_title"`
	IsCurrentJob bool      `json:"is_current_job"`
	StartDate    string    `json:"start_date"`
	EndDate      string    `json:"end_date"`
	Description  string    `json:"description"`
	CountryID    int64     `json:"country_id"`
	StateID      int64     `json:"state_id"`
	CityID       int64     `json:"city_id"`
	AddedDate    time.Time `json:"added_date"`
}

type Skill struct {
	SkillID   int64  `json:"skill_id"`
	SkillName string `json:"skill_name"`
	SkillCode string `json:"skill_code,omitempty"`
}

// Input shapes for the write paths. Validated with an injected validator
// before any store access.

type ProfileInput struct {
	DateOfBirth   string  `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Gender        string  `json:"gender" validate:"omitempty,oneof=Male Female Other"`
	CurrentSalary float64 `json:"current_salary" validate:"omitempty,gte=0"`
	IsAnnually    bool    `json:"is_annually"`
	CountryID     int64   `json:"country_id" validate:"omitempty,gt=0"`
	StateID       int64   `json:"state_id" validate:"omitempty,gt=0"`
	CityID        int64   `json:"city_id" validate:"omitempty,gt=0"`
	Zipcode       string  `json:"zipcode" validate:"omitempty,max=16"`
	Address       string  `json:"address" validate:"omitempty,max=500"`
}

type EducationInput struct {
	DegreeName    string  `json:"degree_name" validate:"required,max=150"`
	InstituteName string  `json:"institute_name" validate:"required,max=200"`
	StartDate     string  `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate       string  `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Percentage    float64 `json:"percentage" validate:"omitempty,gte=0,lte=100"`
	CGPA          float64 `json:"cgpa" validate:"omitempty,gte=0,lte=10"`
}

type ExperienceInput struct {
	CompanyName  string `json:"company_name" validate:"required,max=200"`
	JobTitle     string `json:"job_title" validate:"required,max=150"`
	IsCurrentJob bool   `json:"is_current_job"`
	StartDate    string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate      string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Description  string `json:"description" validate:"omitempty,max=2000"`
	CountryID    int64  `json:"country_id" validate:"omitempty,gt=0"`
	StateID      int64  `json:"state_id" validate:"omitempty,gt=0"`
	CityID       int64  `json:"city_id" validate:"omitempty,gt=0"`
}

// SubmitDetailsInput is the composite payload for the atomic write path.
// Nil slice = section untouched, empty slice = clear, non-empty = replace.
// A nil Profile leaves the stored profile alone.
type SubmitDetailsInput struct {
	UserID     int64             `json:"user_id" validate:"required,gt=0"`
	Profile    *ProfileInput     `json:"profile" validate:"omitempty"`
	Education  []EducationInput  `json:"education" validate:"omitempty,dive"`
	Experience []ExperienceInput `json:"experience" validate:"omitempty,dive"`
	SkillIDs   []int64           `json:"skills" validate:"omitempty,dive,gt=0"`
}

type SubmitDetailsResult struct {
	UserID          int64 `json:"user_id"`
	ProfileUpdated  bool  `json:"profile_updated"`
	EducationCount  int   `json:"education_count"`
	ExperienceCount int   `json:"experience_count"`
	SkillsCount     int   `json:"skills_count"`
}

// UserInfo is the composite read for get-user-info.
type UserInfo struct {
	User       User         `json:"user"`
	Profile    *Profile     `json:"profile"`
	Education  []Education  `json:"education"`
	Experience []Experience `json:"experience"`
	Skills     []Skill      `json:"skills"`
}

// Completeness reports which resume sections are filled and the overall
// percentage (five sections, 20% each).
type Completeness struct {
	Percent    int  `json:"percent"`
	Account    bool `json:"account"`
	Profile    bool `json:"profile"`
	Education  bool `json:"education"`
	Experience bool `json:"experience"`
	Skills     bool `json:"skills"`
}

// ResumeInfo is the composite read for get-resume-info.
type ResumeInfo struct {
	UserInfo
	Resumes      []Resume     `json:"resumes"`
	Completeness Completeness `json:"completeness"`
}

type ProfileRepository interface {
	// SaveUserDetails runs the whole composite write in one transaction.
	SaveUserDetails(ctx context.Context, input *SubmitDetailsInput, actorID int64) (*SubmitDetailsResult, error)

	UpsertProfile(ctx context.Context, userID int64, in *ProfileInput, actorID int64) error
	ReplaceEducation(ctx context.Context, userID int64, entries []EducationInput) error
	ReplaceExperience(ctx context.Context, userID int64, entries []ExperienceInput) error
	ReplaceSkills(ctx context.Context, userID int64, skillIDs []int64) error

	GetProfile(ctx context.Context, userID int64) (*Profile, error)
	ListEducation(ctx context.Context, userID int64) ([]Education, error)
	ListExperience(ctx context.Context, userID int64) ([]Experience, error)
	ListSkills(ctx context.Context, userID int64) ([]Skill, error)
}

type ProfileUsecase interface {
	SubmitUserDetails(ctx context.Context, input *SubmitDetailsInput) (*SubmitDetailsResult, error)
	UpdateProfile(ctx context.Context, userID int64, in *ProfileInput) error
	UpdateSkills(ctx context.Context, userID int64, skillIDs []int64) error
	UpdateEducation(ctx context.Context, userID int64, entries []EducationInput) error
	UpdateExperience(ctx context.Context, userID int64, entries []ExperienceInput) error
	GetUserInfo(ctx context.Context, userID int64) (*UserInfo, error)
	GetResumeInfo(ctx context.Context, userID int64) (*ResumeInfo, error)
}
