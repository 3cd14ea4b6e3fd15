package domain

import "time"

// Resume is the stored résumé document for one user.
type Resume struct {
	ID           string `json:"id"            db:"id"`
	UserID       string `json:"user_id"       db:"user_id"`
	Email        string `json:"email"         db:"email"`
	FirstName    string `json:"first_name"    db:"first_name"`
	LastName     string `json:"last_name,omitempty"    db:"last_name"`
	Phone        string `json:"phone,omitempty"        db:"phone"`
	LinkedinURL  string `json:"linkedin_url,omitempty" db:"linkedin_url"`
	PortfolioURL string `json:"portfolio_url,omitempty" db:"portfolio_url"`

	WorkExperience []WorkExperience `json:"work_experience" db:"work_experience"`
	Projects       []Project        `json:"projects"        db:"projects"`
	Education      []Education      `json:"education"       db:"education"`
	Skills         []Skill          `json:"skills"          db:"skills"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// WorkExperience is one job entry on a résumé.
type WorkExperience struct {
	WorkExID           string   `json:"work_ex_id"`
	JobTitle           string   `json:"job_title"`
	CompanyName        string   `json:"company_name"`
	Location           string   `json:"location,omitempty"`
	StartDate          string   `json:"start_date,omitempty"`
	EndDate            string   `json:"end_date,omitempty"`
	DescriptionBullets []string `json:"description_bullets"`
}

// Project is one project entry on a résumé.
type Project struct {
	ProjectID          string   `json:"project_id"`
	ProjectName        string   `json:"project_name"`
	RepositoryURL      string   `json:"repository_url,omitempty"`
	DescriptionBullets []string `json:"description_bullets"`
}

// Education is one education entry on a résumé.
type Education struct {
	EducationID     string `json:"education_id"`
	InstitutionName string `json:"institution_name"`
	Degree          string `json:"degree"`
	FieldOfStudy    string `json:"field_of_study,omitempty"`
	GraduationDate  string `json:"graduation_date,omitempty"`
	StartDate       string `json:"start_date,omitempty"`
}

// Skill is one skill entry on a résumé.
type Skill struct {
	SkillID   string `json:"skill_id"`
	SkillName string `json:"skill_name"`
	Category  string `json:"category,omitempty"`
}

// --- Ingestion payload (as sent by the UI) ---

// IngestResume is the raw payload accepted by the create/update endpoints.
// Entry fields are optional; entries missing required fields are skipped
// during transformation rather than rejecting the whole payload.
type IngestResume struct {
	Personal   *IngestPersonal    `json:"personal"`
	Education  []IngestEducation  `json:"education"`
	Experience []IngestExperience `json:"experience"`
	Projects   []IngestProject    `json:"projects"`
	Skills     []IngestSkill      `json:"skills"`
}

// IngestPersonal carries contact details; name and email are required.
type IngestPersonal struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Linkedin string `json:"linkedin"`
	Github   string `json:"github"`
}

// IngestEducation is a raw education entry.
type IngestEducation struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Details     string `json:"details"`
}

// IngestExperience is a raw experience entry; description and achievements
// are free text split into bullets on newlines.
type IngestExperience struct {
	Company      string `json:"company"`
	Role         string `json:"role"`
	Start        string `json:"start"`
	End          string `json:"end"`
	Description  string `json:"description"`
	Achievements string `json:"achievements"`
}

// IngestProject is a raw project entry.
type IngestProject struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// IngestSkill is a raw skill entry.
type IngestSkill struct {
	SkillName string `json:"skill_name"`
	Category  string `json:"category"`
}
