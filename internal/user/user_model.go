package user

import "github.com/DhavalSuthar-24/internhub/internal/models"

// Profile is the public row Supabase keeps alongside each auth user. Its ID is
// the auth user id.
type Profile struct {
	models.BaseModel
	FullName  string `json:"fullName"`
	Email     string `json:"email" gorm:"uniqueIndex"`
	AvatarURL string `json:"avatarUrl"`
	Role      string `json:"role" gorm:"default:'intern'"`
}
