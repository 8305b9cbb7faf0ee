package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "staffhub/internal/domain/errors"
	"staffhub/internal/usecase"
)

func TestValidateRegisterInput(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&usecase.RegisterInput{
		UserName: "zhangsan", Password: "Passw0rd", Mobile: "13800000000", Code: "123456",
	}))

	err := v.Validate(&usecase.RegisterInput{
		UserName: "zhangsan", Password: "Passw0rd", Mobile: "13800000000",
	})
	assert.ErrorIs(t, err, domainerrors.ErrBadParams, "missing code")
}

func TestValidateLoginInput(t *testing.T) {
	v := New()

	tests := []struct {
		name  string
		input usecase.LoginInput
		ok    bool
	}{
		{
			name:  "password login",
			input: usecase.LoginInput{Type: usecase.LoginByPassword, UserName: "zhangsan", Password: "Passw0rd"},
			ok:    true,
		},
		{
			name:  "code login",
			input: usecase.LoginInput{Type: usecase.LoginByCode, Mobile: "13800000000", Code: "123456"},
			ok:    true,
		},
		{
			name:  "password login without password",
			input: usecase.LoginInput{Type: usecase.LoginByPassword, UserName: "zhangsan"},
		},
		{
			name:  "code login without mobile",
			input: usecase.LoginInput{Type: usecase.LoginByCode, Code: "123456"},
		},
		{
			name:  "unknown type",
			input: usecase.LoginInput{Type: 7, UserName: "zhangsan", Password: "Passw0rd"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.input)
			if tt.ok {
				assert.NoError(t, err)

				return
			}
			assert.ErrorIs(t, err, domainerrors.ErrBadParams)
		})
	}
}

func TestValidateAddStaffInput(t *testing.T) {
	v := New()

	err := v.Validate(&usecase.AddStaffInput{Name: "李四", UserName: "lisi"})
	assert.ErrorIs(t, err, domainerrors.ErrBadParams, "missing password")

	require.NoError(t, v.Validate(&usecase.AddStaffInput{
		Name: "李四", UserName: "lisi", Password: "Passw0rd",
	}))
}
