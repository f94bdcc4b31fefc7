package domain

import "testing"

func TestEmailPrefix(t *testing.T) {
	tests := []struct {
		name string
		user *User
		want string
	}{
		{name: "normal email", user: &User{Email: "buyer@sparegold.in"}, want: "buyer"},
		{name: "empty email", user: &User{}, want: "Guest"},
		{name: "nil user", user: nil, want: "Guest"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.user.EmailPrefix(); got != tt.want {
				t.Errorf("EmailPrefix() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFriendlyAuthMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "wrong password",
			err:  NewAuthError(CodeWrongPassword, "wrong password"),
			want: "Incorrect password. Please try again.",
		},
		{
			name: "user not found",
			err:  NewAuthError(CodeUserNotFound, "no account"),
			want: "No account found with this email.",
		},
		{
			name: "disabled account",
			err:  NewAuthError(CodeUserDisabled, "disabled"),
			want: "This account has been disabled.",
		},
		{
			name: "unmapped code",
			err:  NewAuthError("auth/too-many-requests", "slow down"),
			want: "An error occurred. Please try again.",
		},
		{
			name: "plain error",
			err:  ErrNotFound,
			want: "An error occurred. Please try again.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FriendlyAuthMessage(tt.err); got != tt.want {
				t.Errorf("FriendlyAuthMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}
