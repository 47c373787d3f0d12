package kprocessor

//go:generate mockgen -destination=mock_kprocessor_test.go -package=kprocessor . IntStringAction

// Type aliases for mock generation - mockgen requires concrete types, not generics

// IntStringAction is Action instantiated with int keys and string values for testing
type IntStringAction = Action[int, string]
