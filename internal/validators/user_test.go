package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string {
	return &s
}

func TestValidateUser_TableTest(t *testing.T) {
	tests := []struct {
		name     string
		userName *string
		email    *string
		want     FieldErrors
	}{
		{
			name:     "valid pair",
			userName: strPtr("Al"),
			email:    strPtr("a@b.co"),
			want:     FieldErrors{},
		},
		{
			name:     "name too short",
			userName: strPtr("A"),
			email:    strPtr("a@b.co"),
			want:     FieldErrors{FieldName: {MsgNameTooShort}},
		},
		{
			name:     "name too short after trimming",
			userName: strPtr("  A  "),
			email:    strPtr("a@b.co"),
			want:     FieldErrors{FieldName: {MsgNameTooShort}},
		},
		{
			name:     "absent name",
			userName: nil,
			email:    strPtr("a@b.co"),
			want:     FieldErrors{FieldName: {MsgNameRequired}},
		},
		{
			name:     "blank name",
			userName: strPtr("   "),
			email:    strPtr("a@b.co"),
			want:     FieldErrors{FieldName: {MsgNameRequired}},
		},
		{
			name:     "invalid email",
			userName: strPtr("Al"),
			email:    strPtr("not-an-email"),
			want:     FieldErrors{FieldEmail: {MsgEmailInvalid}},
		},
		{
			name:     "absent email",
			userName: strPtr("Al"),
			email:    nil,
			want:     FieldErrors{FieldEmail: {MsgEmailRequired}},
		},
		{
			name:     "blank email",
			userName: strPtr("Al"),
			email:    strPtr(""),
			want:     FieldErrors{FieldEmail: {MsgEmailRequired}},
		},
		{
			name:     "both fields fail",
			userName: nil,
			email:    strPtr("nope"),
			want: FieldErrors{
				FieldName:  {MsgNameRequired},
				FieldEmail: {MsgEmailInvalid},
			},
		},
		{
			name:     "multi-byte name counts runes",
			userName: strPtr("Øy"),
			email:    strPtr("oy@example.no"),
			want:     FieldErrors{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateUser(tt.userName, tt.email)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, len(tt.want) == 0, got.Valid())
		})
	}
}

func TestValidateUser_EmailShapes(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"ann@example.com", true},
		{"first.last@sub.example.org", true},
		{"a@b.co", true},
		{"a@b", false},
		{"@b.co", false},
		{"a@.co", false},
		{"a@b.", false},
		{"a@@b.co", false},
		{"a@b@c.co", false},
		{"a b@c.co", false},
		{"ab@c .co", false},
		{" ab@c.co", false},
		{"ab@c.co\n", false},
		{"ann\u00a0lee@example.com", false},
		{"ann@exa\u2003mple.com", false},
		{"ann\u3000@example.com", false},
		{"ann\v@example.com", false},
		{"ann@example.com\u2028", false},
		{"ánn@exämple.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			got := ValidateUser(strPtr("Al"), strPtr(tt.email))
			_, failed := got[FieldEmail]
			assert.Equal(t, tt.valid, !failed)
		})
	}
}

func TestFieldErrors_AddKeepsOrder(t *testing.T) {
	fe := FieldErrors{}
	fe.Add(FieldName, "first")
	fe.Add(FieldName, "second")

	assert.Equal(t, []string{"first", "second"}, fe[FieldName])
	assert.False(t, fe.Valid())
}
