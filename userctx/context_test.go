package userctx

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStaffID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetStaffID(ctx))

	ctx = SetStaffID(ctx, "5f3c1a")
	assert.Equal(t, "5f3c1a", GetStaffID(ctx))
}

func TestMerchantID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetMerchantID(ctx))

	ctx = SetMerchantID(SetStaffID(ctx, "s"), "m-1")
	assert.Equal(t, "m-1", GetMerchantID(ctx))
	assert.Equal(t, "s", GetStaffID(ctx))
}
