package mocks

import (
	"testing"

	"go.uber.org/mock/gomock"
)

// NewMockQuerierForTest creates a new mock Querier for testing
func NewMockQuerierForTest(t *testing.T) *MockQuerier {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockQuerier(ctrl)
}

// NewMockEmailSenderForTest creates a new mock EmailSender for testing
func NewMockEmailSenderForTest(t *testing.T) *MockEmailSender {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockEmailSender(ctrl)
}
