package greeting

import "agsys/internal/domain/model"

type UseCase interface {
	Hello() model.GreetingResponse
	Welcome() model.WelcomeResponse
	Greet(name string) model.GreetingResponse
	// Fail always returns an error, for exercising error handling end to end.
	Fail() error
}
