package models

// SignupRequest is the body of POST /api/auth/signup.
type SignupRequest struct {
	Username string `json:"username" validate:"required,alphanum,min=3,max=20"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TweetRequest is the body of POST /api/tweets and PATCH /api/tweets/{id}.
// Content is validated after trimming.
type TweetRequest struct {
	Content string `json:"content" validate:"min=1,max=140"`
}

// SearchRequest carries the query string of GET /api/tweets/search.
type SearchRequest struct {
	Query string `json:"q" validate:"required,max=140"`
}
