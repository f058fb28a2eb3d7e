package model

import "gorm.io/gorm"

const (
	RoleSuperadmin = "superadmin"
	RoleAdmin      = "admin"
	RoleEmployee   = "employee"
)

// Profile adalah data kepegawaian milik aplikasi, 1:1 dengan Identity.
// Ikut terhapus (cascade) saat Identity dihapus.
// Field opsional memakai *string agar string kosong bisa disimpan sebagai NULL.
type Profile struct {
	gorm.Model
	UserID   string `json:"user_id" gorm:"type:char(36);uniqueIndex;not null"`
	FullName string `json:"full_name"`
	Email    string `json:"email" gorm:"index"`
	Role     string `json:"role" gorm:"default:employee"`

	NIK              *string `json:"nik"`
	Division         *string `json:"division"`
	Position         *string `json:"position"`
	PhoneNumber      *string `json:"phone_number"`
	Address          *string `json:"address"`
	JoinDate         *string `json:"join_date"` // Format YYYY-MM-DD
	EmploymentStatus *string `json:"employment_status"`

	Identity Identity `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// IsAdmin: superadmin selalu lolos gate yang menerima admin.
func (p *Profile) IsAdmin() bool {
	return p.Role == RoleAdmin || p.Role == RoleSuperadmin
}
