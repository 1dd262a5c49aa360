package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckPassword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		password string
		first    string
		last     string
		want     string
	}{
		{
			name:     "valid",
			password: "Sup3r$ecretOne",
			first:    "John",
			last:     "Doe",
			want:     "",
		},
		{
			name:     "too short",
			password: "Ab1!x",
			first:    "John",
			last:     "Doe",
			want:     "Password must be between 10 and 20 characters long.",
		},
		{
			name:     "too long",
			password: "Abcdefghij1!Abcdefghij",
			first:    "John",
			last:     "Doe",
			want:     "Password must be between 10 and 20 characters long.",
		},
		{
			name:     "length error wins over name inclusion",
			password: "John1!",
			first:    "John",
			last:     "Doe",
			want:     "Password must be between 10 and 20 characters long.",
		},
		{
			name:     "missing uppercase",
			password: "lowercase1!pass",
			first:    "John",
			last:     "Doe",
			want:     "Password must contain at least one uppercase letter.",
		},
		{
			name:     "missing lowercase",
			password: "UPPERCASE1!PASS",
			first:    "John",
			last:     "Doe",
			want:     "Password must contain at least one lowercase letter.",
		},
		{
			name:     "missing special",
			password: "NoSpecial123Pass",
			first:    "John",
			last:     "Doe",
			want:     "Password must contain at least one special character.",
		},
		{
			name:     "missing digit",
			password: "NoDigits!Password",
			first:    "John",
			last:     "Doe",
			want:     "Password must contain at least one number.",
		},
		{
			name:     "contains first name",
			password: "MyJonathanPass1!",
			first:    "Jonathan",
			last:     "Smith",
			want:     "Password must not contain your first or last name.",
		},
		{
			name:     "contains last name case insensitive",
			password: "BeforeSMITH123$ok",
			first:    "Jonathan",
			last:     "Smith",
			want:     "Password must not contain your first or last name.",
		},
		{
			name:     "short names are exempt",
			password: "MyAnnLiPass123!",
			first:    "Ann",
			last:     "Li",
			want:     "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, checkPassword(tt.password, tt.first, tt.last))
		})
	}
}
