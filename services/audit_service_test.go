package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/blogem/shopline-auth/models"
	"github.com/blogem/shopline-auth/repositories/mocks"
)

func TestAuditService_Recent(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{"explicit", 10, 10},
		{"zero", 0, defaultAuditLimit},
		{"negative", -1, defaultAuditLimit},
		{"too large", maxAuditLimit + 1, defaultAuditLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockAuditRepository(t)
			repo.EXPECT().ListRecent(ctx, tt.wantLimit).Return([]models.AuditLogEntry{{EventID: "e"}}, nil)

			entries, err := NewAuditService(repo).Recent(ctx, tt.limit)

			assert.NoError(t, err)
			assert.Len(t, entries, 1)
		})
	}
}

func TestAuditService_RecentEmpty(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewMockAuditRepository(t)
	repo.EXPECT().ListRecent(ctx, defaultAuditLimit).Return(nil, nil)

	entries, err := NewAuditService(repo).Recent(ctx, 0)

	assert.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestAuditService_RecentError(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewMockAuditRepository(t)
	repo.EXPECT().ListRecent(ctx, defaultAuditLimit).Return(nil, errors.New("closed"))

	_, err := NewAuditService(repo).Recent(ctx, 0)

	assert.EqualError(t, err, "closed")
}
