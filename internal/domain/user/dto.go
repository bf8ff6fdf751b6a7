package user

type CreateUserInput struct {
	Email      string  `json:"email" form:"email" binding:"required,email,max=254" example:"resident@example.com"`
	Password   string  `json:"password" form:"password" binding:"required,min=6" example:"password123"`
	FlatNumber string  `json:"flat_number" form:"flat_number" binding:"required,max=100" example:"B-204"`
	FullName   *string `json:"full_name" form:"full_name" binding:"omitempty,max=100" example:"Jane Doe"`
}

type LoginInput struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

type UpdateUserInput struct {
	OldPassword    *string `json:"old_password" form:"old_password"`
	Password       *string `json:"password" form:"password" binding:"omitempty,min=6"`
	FlatNumber     *string `json:"flat_number" form:"flat_number" binding:"omitempty,max=100"`
	FullName       *string `json:"full_name" form:"full_name" binding:"omitempty,max=100"`
	ProfilePicture *string `json:"profile_picture" form:"profile_picture" binding:"omitempty,url"`
	Role           *string `json:"role" form:"role" binding:"omitempty,oneof=resident admin"`
}
