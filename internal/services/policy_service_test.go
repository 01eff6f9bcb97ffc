package services_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasansisik/kurstanbul-kos-server/internal/mocks"
	"github.com/hasansisik/kurstanbul-kos-server/internal/services"
)

func TestAddPolicy_SavesAfterAdd(t *testing.T) {
	enf := &mocks.MockCasbinEnforcer{}

	var added []interface{}
	enf.AddPolicyFunc = func(params ...interface{}) (bool, error) {
		added = params
		return true, nil
	}
	saved := false
	enf.SavePolicyFunc = func() error {
		saved = true
		return nil
	}

	svc := services.NewPolicyServiceWithEnforcer(enf)
	require.NoError(t, svc.AddPolicy("role_admin", "/v1/course/*", "(PUT|DELETE)"))

	assert.Equal(t, []interface{}{"role_admin", "/v1/course/*", "(PUT|DELETE)"}, added)
	assert.True(t, saved)
}

func TestAddPolicy_Error(t *testing.T) {
	enf := &mocks.MockCasbinEnforcer{}
	enf.AddPolicyFunc = func(params ...interface{}) (bool, error) {
		return false, errors.New("adapter down")
	}
	saved := false
	enf.SavePolicyFunc = func() error {
		saved = true
		return nil
	}

	svc := services.NewPolicyServiceWithEnforcer(enf)
	assert.Error(t, svc.AddPolicy("role_admin", "/v1/course/*", "PUT"))
	assert.False(t, saved)
}

func TestRemovePolicy_SavesAfterRemove(t *testing.T) {
	enf := &mocks.MockCasbinEnforcer{}
	saved := false
	enf.SavePolicyFunc = func() error {
		saved = true
		return nil
	}

	svc := services.NewPolicyServiceWithEnforcer(enf)
	require.NoError(t, svc.RemovePolicy("role_admin", "/v1/course/*", "PUT"))
	assert.True(t, saved)
}

func TestCheckPermission(t *testing.T) {
	enf := &mocks.MockCasbinEnforcer{}
	enf.EnforceFunc = func(rvals ...interface{}) (bool, error) {
		return rvals[0] == "role_admin", nil
	}

	svc := services.NewPolicyServiceWithEnforcer(enf)

	ok, err := svc.CheckPermission("role_admin", "/v1/course/3", "DELETE")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.CheckPermission("role_user", "/v1/course/3", "DELETE")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGetPolicies(t *testing.T) {
	enf := &mocks.MockCasbinEnforcer{}
	enf.GetPolicyFunc = func() ([][]string, error) {
		return [][]string{{"role_admin", "/admin/*", "(GET|POST|PUT|DELETE)"}}, nil
	}

	svc := services.NewPolicyServiceWithEnforcer(enf)
	policies := svc.GetPolicies()
	require.Len(t, policies, 1)
	assert.Equal(t, "role_admin", policies[0][0])
}
