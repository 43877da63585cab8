package model

// Tetel is a study topic. Its sections render in position order; the
// summary (összegzés) is optional.
type Tetel struct {
	ID   int64  `gorm:"primaryKey"                 json:"id"`
	Name string `gorm:"type:varchar(255);not null" json:"name"`
	Timestamps

	Sections  []Section  `gorm:"foreignKey:TetelID;constraint:OnDelete:CASCADE" json:"sections,omitempty"`
	Osszegzes *Osszegzes `gorm:"foreignKey:TetelID;constraint:OnDelete:CASCADE" json:"osszegzes,omitempty"`
}

// TableName maps the entity to its table.
func (Tetel) TableName() string { return "tetelek" }

// Section is one markdown block of a tétel.
type Section struct {
	ID       int64  `gorm:"primaryKey"             json:"id"`
	TetelID  int64  `gorm:"not null;index"         json:"tetel_id"`
	Content  string `gorm:"type:text;not null"     json:"content"`
	Position int    `gorm:"not null;default:0"     json:"position"`

	Subsections []Subsection `gorm:"foreignKey:SectionID;constraint:OnDelete:CASCADE" json:"subsections,omitempty"`
}

// TableName maps the entity to its table.
func (Section) TableName() string { return "sections" }

// Subsection is an optional titled fragment under a section. Both fields may
// be empty; absence is not an error.
type Subsection struct {
	ID          int64  `gorm:"primaryKey"         json:"id"`
	SectionID   int64  `gorm:"not null;index"     json:"section_id"`
	Title       string `gorm:"type:text;not null" json:"title"`
	Description string `gorm:"type:text;not null" json:"description"`
	Position    int    `gorm:"not null;default:0" json:"position"`
}

// TableName maps the entity to its table.
func (Subsection) TableName() string { return "subsections" }

// Osszegzes is the optional summary of a tétel.
type Osszegzes struct {
	ID      int64  `gorm:"primaryKey"         json:"id"`
	TetelID int64  `gorm:"not null;unique"    json:"tetel_id"`
	Content string `gorm:"type:text;not null" json:"content"`
}

// TableName maps the entity to its table.
func (Osszegzes) TableName() string { return "osszegzesek" }
