package types

// LoginRequest for the login endpoint
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Remember bool   `json:"remember"`
}

// RefreshRequest for token refresh and logout
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// CreateUserRequest for the admin user creation endpoint
type CreateUserRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// UpdateUserRequest for partial user updates
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Role     *string `json:"role"`
	Status   *bool   `json:"status"`
	Password *string `json:"password"`
}

// UpdateProjectRequest for partial project updates
type UpdateProjectRequest struct {
	Name        *string `json:"name"`
	ClientName  *string `json:"clientName"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
}

// AddMemberRequest for attaching a user to a project
type AddMemberRequest struct {
	UserID uint `json:"userId" binding:"required"`
}

// CreateBlockRequest for manual block creation
type CreateBlockRequest struct {
	ProjectID uint   `json:"projectId" binding:"required"`
	Name      string `json:"name" binding:"required"`
}

// CreateDesignMapRequest for linking a drawn rectangle to a crack
type CreateDesignMapRequest struct {
	ProjectID     uint     `json:"projectId" binding:"required"`
	CrackRecordID uint     `json:"crackRecordId" binding:"required"`
	X             *float64 `json:"x" binding:"required"`
	Y             *float64 `json:"y" binding:"required"`
	Width         *float64 `json:"width" binding:"required"`
	Height        *float64 `json:"height" binding:"required"`
}

// UpdateDesignMapRequest for repositioning or re-associating a design map
type UpdateDesignMapRequest struct {
	X             *float64 `json:"x"`
	Y             *float64 `json:"y"`
	Width         *float64 `json:"width"`
	Height        *float64 `json:"height"`
	CrackRecordID *uint    `json:"crackRecordId"`
}

// DeleteDesignMapRequest identifies a map in a collection-level delete body
type DeleteDesignMapRequest struct {
	ID uint `json:"id" binding:"required"`
}
