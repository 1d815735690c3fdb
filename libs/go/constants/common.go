package constants

// Common string constants used throughout the codebase
const (
	// Environments
	ProdEnvironment = "prod"

	// Payment providers
	StripeProvider = "stripe"

	// Profile roles
	AdminRole     = "admin"
	OrganizerRole = "organizer"
	UserRole      = "user"

	// Currencies
	USDCurrency = "USD"

	// Generic message for unexpected failures surfaced to clients
	GenericErrorMessage = "An error occurred."
)
