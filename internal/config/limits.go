package config

const (
	// MaxClientNameLength is the maximum length for a project's client name.
	MaxClientNameLength = 255

	// MaxDescriptionLength is the maximum length for a project description.
	MaxDescriptionLength = 5000

	// MaxUsernameLength is the maximum length for account usernames.
	MaxUsernameLength = 64

	// MaxPasswordLength bounds passwords forwarded to the account endpoints.
	MaxPasswordLength = 256

	// MaxFilterValueLength is the maximum length of a single filter value.
	MaxFilterValueLength = 255

	// MinSessionSecretLength is the shortest accepted HS256 session secret.
	MinSessionSecretLength = 32
)
