package model

// User owns the stored identity and credential hash. The hash is the output
// of bcrypt, never the plaintext; only the hash is mutable after creation.
type User struct {
	ID           int64  `gorm:"primaryKey"                          json:"id"`
	Username     string `gorm:"type:varchar(100);not null;unique"   json:"username"`
	Email        string `gorm:"type:varchar(255);not null;unique"   json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null"          json:"-"`
	Superuser    bool   `gorm:"not null;default:false"              json:"superuser"`
	Timestamps
}

// TableName maps the entity to its table.
func (User) TableName() string { return "users" }
