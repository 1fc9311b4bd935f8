package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	authHandler        authHandler
	siteContentHandler siteContentHandler
	projectHandler     projectHandler
	contactHandler     contactHandler
	analyticsHandler   analyticsHandler
	uploadHandler      uploadHandler
	healthHandler      healthHandler
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Error  string `json:"error" example:"Unauthorized"`
	Status string `json:"status" example:"error"`
	Field  string `json:"field,omitempty" example:"email"`
	Cause  string `json:"cause,omitempty" example:"Underlying error cause"`
}
