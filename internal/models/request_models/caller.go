package request_models

// Caller is the identity resolved from the bearer token for the current request.
type Caller struct {
	UserID          string
	Role            string
	FirstName       string
	LastName        string
	Email           string
	ProfileImageURL string
}
