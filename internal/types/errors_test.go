package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ErrorTestSuite struct {
	suite.Suite
}

func TestErrorSuite(t *testing.T) {
	suite.Run(t, new(ErrorTestSuite))
}

func (s *ErrorTestSuite) TestNewGameError() {
	// Setup
	code := ErrInvalidState
	message := "round already dealt"

	// Execute
	err := NewGameError(code, message)

	// Assert
	s.Equal(code, err.Code, "Error code should match")
	s.Equal(message, err.Message, "Error message should match")
	s.Nil(err.Err, "Underlying error should be nil")
}

func (s *ErrorTestSuite) TestWrapError() {
	// Setup
	code := ErrDatabaseError
	message := "saving round"
	underlying := errors.New("disk full")

	// Execute
	err := WrapError(code, message, underlying)

	// Assert
	s.Equal(code, err.Code, "Error code should match")
	s.Equal(message, err.Message, "Error message should match")
	s.Equal(underlying, err.Err, "Underlying error should match")
	s.ErrorIs(err, underlying, "Unwrap should expose the cause")
}

func (s *ErrorTestSuite) TestErrorString() {
	testCases := []struct {
		name     string
		err      *GameError
		expected string
	}{
		{
			name:     "Simple error",
			err:      NewGameError(ErrInvalidState, "round is resolved"),
			expected: "INVALID_STATE: round is resolved",
		},
		{
			name:     "Wrapped error",
			err:      WrapError(ErrIndexError, "indexing round", errors.New("connection refused")),
			expected: "INDEX_ERROR: indexing round (connection refused)",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, tc.err.Error(), "Error string should match expected format")
		})
	}
}

func (s *ErrorTestSuite) TestIsGameError() {
	gameErr := NewGameError(ErrInvalidState, "wrong phase")

	testCases := []struct {
		name     string
		err      error
		code     ErrorCode
		expected bool
	}{
		{name: "matching code", err: gameErr, code: ErrInvalidState, expected: true},
		{name: "different code", err: gameErr, code: ErrDatabaseError, expected: false},
		{name: "regular error", err: errors.New("regular error"), code: ErrInvalidState, expected: false},
		{name: "nil error", err: nil, code: ErrInvalidState, expected: false},
		{name: "wrapped with fmt", err: fmt.Errorf("dealing: %w", gameErr), code: ErrInvalidState, expected: true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, IsGameError(tc.err, tc.code))
		})
	}
}

func (s *ErrorTestSuite) TestAs() {
	var target *GameError

	s.False(As(errors.New("plain"), &target))
	s.Nil(target)

	s.True(As(NewGameError(ErrDeckExhausted, "empty"), &target))
	s.Equal(ErrDeckExhausted, target.Code)

	s.False(As(NewGameError(ErrDeckExhausted, "empty"), nil))
}
