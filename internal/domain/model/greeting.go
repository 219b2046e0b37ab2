package model

type GreetingRequest struct {
	Name string `json:"name" validate:"required,min=1" example:"Alice"`
}

type GreetingResponse struct {
	Message string `json:"message" example:"Hello, Alice!"`
	Version string `json:"version" example:"0.1.0"`
}

// WelcomeResponse is the root response of the worker-style services.
type WelcomeResponse struct {
	Service string `json:"service" example:"runner"`
	Version string `json:"version" example:"1.0.0"`
	Message string `json:"message" example:"Welcome to runner service"`
}
