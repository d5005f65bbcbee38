package commerce

import "context"

// AuthService handles registration, login and credential rotation.
type AuthService struct {
	client *Client
}

// SignUpRequest is the request for registering a new account.
type SignUpRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	RePassword string `json:"rePassword"`
	Phone      string `json:"phone"`
}

// SignInRequest is the request for logging in.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session is the result of a successful sign-up or sign-in.
type Session struct {
	User  User
	Token string
}

// SignUp registers a new account and returns the issued token.
//
// The caller is responsible for persisting the token; the client itself
// never writes it anywhere.
func (s *AuthService) SignUp(ctx context.Context, req SignUpRequest) (*Session, error) {
	var resp authResponse
	if err := s.client.post(ctx, "/auth/signup", req, &resp); err != nil {
		return nil, err
	}
	return &Session{User: resp.User, Token: resp.Token}, nil
}

// SignIn logs into an existing account and returns the issued token.
func (s *AuthService) SignIn(ctx context.Context, req SignInRequest) (*Session, error) {
	var resp authResponse
	if err := s.client.post(ctx, "/auth/signin", req, &resp); err != nil {
		return nil, err
	}
	return &Session{User: resp.User, Token: resp.Token}, nil
}

// ChangePasswordRequest is the request for rotating the account password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	Password        string `json:"password"`
	RePassword      string `json:"rePassword"`
}

// ChangePassword rotates the account password. The existing token stays
// valid until its natural expiry; the server's fresh token is returned but
// callers are not required to adopt it.
func (s *AuthService) ChangePassword(ctx context.Context, req ChangePasswordRequest) (*Session, error) {
	var resp authResponse
	if err := s.client.putAuthed(ctx, "/users/changeMyPassword", req, &resp); err != nil {
		return nil, err
	}
	return &Session{User: resp.User, Token: resp.Token}, nil
}
