package models

import (
	"time"
)

// User roles
const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
	RoleAdmin   = "admin"
)

// User represents a user in the system (student, teacher or admin)
type User struct {
	ID           string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	Username     string     `json:"username" gorm:"type:varchar(255);not null;unique;index" example:"sv2011063"`
	PasswordHash string     `json:"-" gorm:"type:varchar(255);not null"`
	FullName     string     `json:"full_name" gorm:"type:varchar(255)" example:"Nguyen Van A"`
	Email        string     `json:"email" gorm:"type:varchar(255);index" example:"sv2011063@student.edu.vn"`
	Role         string     `json:"role" gorm:"type:varchar(20);not null;default:'student';index" example:"student"` // "student", "teacher", "admin"
	Faculty      string     `json:"faculty" gorm:"type:varchar(255)" example:"Information Technology"`
	MajorID      *string    `json:"major_id,omitempty" gorm:"type:uuid;index"`
	IsActive     bool       `json:"is_active" gorm:"default:true;index"`
	TokenVersion uint       `json:"token_version" gorm:"default:0"`
	LastLoginAt  *time.Time `json:"last_login_at"`

	// Relationships
	Major         *Major         `json:"major,omitempty" gorm:"foreignKey:MajorID;references:ID;constraint:OnDelete:SET NULL"`
	RefreshTokens []RefreshToken `json:"refresh_tokens,omitempty" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}

// IsTeacher reports whether the user holds the teacher role
func (u *User) IsTeacher() bool {
	return u.Role == RoleTeacher
}

// IsAdmin reports whether the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CreateUserRequest represents the request to create a user (admin only)
type CreateUserRequest struct {
	Username string  `json:"username" binding:"required" example:"sv2011063"`
	Password string  `json:"password" binding:"required,min=6" example:"secret123"`
	FullName string  `json:"full_name" example:"Nguyen Van A"`
	Email    string  `json:"email" example:"sv2011063@student.edu.vn"`
	Role     string  `json:"role" example:"student"` // defaults to "student"
	Faculty  string  `json:"faculty" example:"Information Technology"`
	MajorID  *string `json:"major_id,omitempty"`
}

// UpdateUserRequest represents the request to update a user (admin only)
type UpdateUserRequest struct {
	FullName string  `json:"full_name,omitempty"`
	Email    string  `json:"email,omitempty"`
	Role     string  `json:"role,omitempty"`
	Faculty  string  `json:"faculty,omitempty"`
	MajorID  *string `json:"major_id,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// UserResponse represents the response for user operations
type UserResponse struct {
	ID          string  `json:"id"`
	Username    string  `json:"username"`
	FullName    string  `json:"full_name"`
	Email       string  `json:"email"`
	Role        string  `json:"role"`
	Faculty     string  `json:"faculty"`
	MajorID     *string `json:"major_id,omitempty"`
	MajorName   string  `json:"major_name,omitempty"`
	IsActive    bool    `json:"is_active"`
	LastLoginAt *string `json:"last_login_at,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

// ToResponse converts a User to a UserResponse.
// A missing Major preload renders as an empty name rather than failing.
func (u *User) ToResponse() UserResponse {
	resp := UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		FullName:  u.FullName,
		Email:     u.Email,
		Role:      u.Role,
		Faculty:   u.Faculty,
		MajorID:   u.MajorID,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
	if u.Major != nil {
		resp.MajorName = u.Major.Name
	}
	if u.LastLoginAt != nil {
		lastLogin := u.LastLoginAt.Format(time.RFC3339)
		resp.LastLoginAt = &lastLogin
	}
	return resp
}
