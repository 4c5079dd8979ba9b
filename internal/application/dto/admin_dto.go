package dto

import "time"

// CreateAdminRequest form fields for creating a staff admin. Image fields
// arrive as multipart files; the handler resolves them to local paths.
type CreateAdminRequest struct {
	Name           string `json:"name" form:"name"`
	Email          string `json:"email" form:"email"`
	Password       string `json:"password" form:"password"`
	Phone          string `json:"phone" form:"phone"`
	SecondaryPhone string `json:"secondaryPhone" form:"secondaryPhone"`
	RoleID         string `json:"roleId" form:"roleId"`
	Status         string `json:"status" form:"status"`

	// Local temp paths filled in by the handler after saving the uploads.
	AvatarPath           string `json:"-" form:"-"`
	PANImagePath         string `json:"-" form:"-"`
	AadharFrontImagePath string `json:"-" form:"-"`
	AadharBackImagePath  string `json:"-" form:"-"`
	PANNumber            string `json:"panNumber" form:"panNumber"`
	AadharNumber         string `json:"aadharNumber" form:"aadharNumber"`
}

// UpdateAdminRequest partial update; empty fields are left untouched.
// Password is deliberately absent: it only changes via the session use case.
type UpdateAdminRequest struct {
	Name           string `json:"name" form:"name"`
	Email          string `json:"email" form:"email"`
	Phone          string `json:"phone" form:"phone"`
	SecondaryPhone string `json:"secondaryPhone" form:"secondaryPhone"`
	RoleID         string `json:"roleId" form:"roleId"`
	FCMToken       string `json:"fcmToken" form:"fcmToken"`
	Status         string `json:"status" form:"status"`
	AvatarPath     string `json:"-" form:"-"`
}

// AdminResponse sanitized account projection: no password hash, no refresh
// token, ever.
type AdminResponse struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Email          string        `json:"email"`
	Phone          string        `json:"phone"`
	SecondaryPhone string        `json:"secondaryPhone,omitempty"`
	RoleID         string        `json:"roleId"`
	Role           *RoleResponse `json:"role,omitempty"`
	FCMToken       string        `json:"fcmToken,omitempty"`
	Avatar         string        `json:"avatar,omitempty"`
	Status         string        `json:"status"`
	PANNumber      string        `json:"panNumber,omitempty"`
	PANImage       string        `json:"panImage,omitempty"`
	AadharNumber   string        `json:"aadharNumber,omitempty"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

// AdminListResponse paged admin list.
type AdminListResponse struct {
	Items []AdminResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
