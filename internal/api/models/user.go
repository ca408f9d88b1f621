package models

// User represents one persisted user row.
type User struct {
	ID        int64  `db:"id" json:"id"`
	Email     string `db:"email" json:"email"`
	FirstName string `db:"first_name" json:"first_name"`
	LastName  string `db:"last_name" json:"last_name"`
	Password  string `db:"password" json:"password"`
	Avatar    string `db:"avatar" json:"avatar"`
	Token     string `db:"token" json:"token"`
}

// CreateUserRequest defines the payload for creating a user. Every field is
// required except id, which is assigned by the store when omitted.
type CreateUserRequest struct {
	ID        int64  `json:"id" binding:"omitempty,gte=1"`
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Password  string `json:"password" binding:"required"`
	Avatar    string `json:"avatar" binding:"required,url"`
	Token     string `json:"token" binding:"required"`
}

// ToUser builds the row to persist from the request payload.
func (r *CreateUserRequest) ToUser() *User {
	return &User{
		ID:        r.ID,
		Email:     r.Email,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Password:  r.Password,
		Avatar:    r.Avatar,
		Token:     r.Token,
	}
}

// UserPatch carries a partial update. A nil field was absent from the request
// body and leaves the stored value untouched.
type UserPatch struct {
	Email     *string `json:"email" binding:"omitempty,email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Password  *string `json:"password"`
	Avatar    *string `json:"avatar" binding:"omitempty,url"`
	Token     *string `json:"token"`
}

// RegisterRequest defines the payload for the registration endpoint.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterResponse is returned on successful registration.
type RegisterResponse struct {
	ID    int64  `json:"id"`
	Token string `json:"token"`
}

// AppStatus reports backing-store reachability.
type AppStatus struct {
	Database bool `json:"database"`
}
