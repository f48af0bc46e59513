package models

// RelatedLink is a titled URL attached to a technology record.
type RelatedLink struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Technology is a catalog entry identified by a caller-supplied logical id,
// distinct from the storage row id. The docket is an external unique
// reference code; trl is the Technology Readiness Level (1-9, unenforced).
type Technology struct {
	ID                      string        `json:"id" db:"id"`
	Docket                  string        `json:"docket" db:"docket"`
	Name                    string        `json:"name" db:"name"`
	Description             string        `json:"description" db:"description"`
	Overview                string        `json:"overview,omitempty" db:"overview"`
	DetailedDescription     string        `json:"detailedDescription,omitempty" db:"detailed_description"`
	Genre                   string        `json:"genre,omitempty" db:"genre"`
	TechnicalSpecifications string        `json:"technicalSpecifications,omitempty" db:"technical_specifications"`
	Innovators              []string      `json:"innovators" db:"innovators"`
	Advantages              []string      `json:"advantages" db:"advantages"`
	Applications            []string      `json:"applications" db:"applications"`
	UseCases                []string      `json:"useCases" db:"use_cases"`
	RelatedLinks            []RelatedLink `json:"relatedLinks" db:"related_links"`
	TRL                     int           `json:"trl" db:"trl"`
	Spotlight               bool          `json:"spotlight" db:"spotlight"`
}

// Event is a calendar entry whose numeric id is assigned by the server.
type Event struct {
	ID           int64  `json:"id" db:"id"`
	Title        string `json:"title" db:"title"`
	Month        string `json:"month" db:"month"`
	Day          string `json:"day" db:"day"`
	Location     string `json:"location,omitempty" db:"location"`
	Time         string `json:"time,omitempty" db:"time"`
	Description  string `json:"description,omitempty" db:"description"`
	Registration string `json:"registration,omitempty" db:"registration"`
}

// User holds a credential; the password is stored only as a bcrypt hash.
type User struct {
	ID           int64  `json:"id" db:"id"`
	Email        string `json:"email" db:"email"`
	PasswordHash string `json:"-" db:"password_hash"`
	Created      int64  `json:"created" db:"created"`
}
