package greeting

import (
	"errors"
	"fmt"

	"agsys/internal/domain/model"
)

const defaultName = "World"

type greetingUseCase struct {
	service     string
	version     string
	errorDetail string
}

// NewGreetingUseCase greets on behalf of service. An empty errorDetail defaults to "This is a test error".
func NewGreetingUseCase(service, version, errorDetail string) UseCase {
	if errorDetail == "" {
		errorDetail = "This is a test error"
	}
	return &greetingUseCase{service: service, version: version, errorDetail: errorDetail}
}

func (useCase *greetingUseCase) Hello() model.GreetingResponse {
	return useCase.Greet(defaultName)
}

func (useCase *greetingUseCase) Welcome() model.WelcomeResponse {
	return model.WelcomeResponse{
		Service: useCase.service,
		Version: useCase.version,
		Message: fmt.Sprintf("Welcome to %s service", useCase.service),
	}
}

// Greet greets name as given; an empty name is not replaced by the default.
func (useCase *greetingUseCase) Greet(name string) model.GreetingResponse {
	return model.GreetingResponse{
		Message: fmt.Sprintf("Hello, %s!", name),
		Version: useCase.version,
	}
}

func (useCase *greetingUseCase) Fail() error {
	return errors.New(useCase.errorDetail)
}
