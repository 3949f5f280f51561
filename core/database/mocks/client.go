package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of database.Client
type Client struct {
	mock.Mock
}

func (m *Client) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *Client) InsertOne(ctx context.Context, collection string, document any) (any, error) {
	args := m.Called(ctx, collection, document)
	return args.Get(0), args.Error(1)
}

func (m *Client) DeleteByID(ctx context.Context, collection string, id any) (int64, error) {
	args := m.Called(ctx, collection, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *Client) Disconnect(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
