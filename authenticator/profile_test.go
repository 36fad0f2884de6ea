package authenticator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/blogem/shopline-auth/authenticator"
)

func TestProfile_StaffID(t *testing.T) {
	tests := []struct {
		name    string
		profile authenticator.Profile
		want    string
		wantErr bool
	}{
		{"string id", authenticator.Profile{"staff": map[string]interface{}{"_id": "abc"}}, "abc", false},
		{"numeric id", authenticator.Profile{"staff": map[string]interface{}{"_id": float64(42)}}, "42", false},
		{"no staff", authenticator.Profile{"foo": "bar"}, "", true},
		{"staff not an object", authenticator.Profile{"staff": "abc"}, "", true},
		{"empty id", authenticator.Profile{"staff": map[string]interface{}{"_id": ""}}, "", true},
		{"missing id", authenticator.Profile{"staff": map[string]interface{}{"name": "x"}}, "", true},
		{"nil profile", nil, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.profile.StaffID()
			if tt.wantErr {
				assert.ErrorIs(t, err, authenticator.ErrMissingStaffID)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProfile_String(t *testing.T) {
	p := authenticator.Profile{"sub": "user-1", "n": 3}
	assert.Equal(t, "user-1", p.String("sub"))
	assert.Empty(t, p.String("n"))
	assert.Empty(t, p.String("missing"))
}
