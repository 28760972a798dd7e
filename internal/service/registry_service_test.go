package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterReturnsSameCodeOnRepeat(t *testing.T) {
	_, registry, _ := newServices(t)

	code1, outcome := registry.Register(100, "alice", "Alice", "", nil)
	require.Equal(t, OutcomeOK, outcome)
	require.Len(t, code1, 8)

	code2, outcome := registry.Register(100, "alice", "Alice", "", nil)
	require.Equal(t, OutcomeOK, outcome)
	assert.Equal(t, code1, code2)
}

func TestRegisterDropsUnknownReferrer(t *testing.T) {
	_, registry, _ := newServices(t)

	unknown := int64(999)
	_, outcome := registry.Register(1, "alice", "", "", &unknown)
	require.Equal(t, OutcomeOK, outcome)

	u, outcome := registry.Profile(1)
	require.Equal(t, OutcomeOK, outcome)
	assert.Nil(t, u.ReferrerID)
}

func TestRegisterKeepsKnownReferrer(t *testing.T) {
	_, registry, _ := newServices(t)

	_, outcome := registry.Register(1, "referrer", "", "", nil)
	require.Equal(t, OutcomeOK, outcome)

	referrer := int64(1)
	_, outcome = registry.Register(2, "referred", "", "", &referrer)
	require.Equal(t, OutcomeOK, outcome)

	u, outcome := registry.Profile(2)
	require.Equal(t, OutcomeOK, outcome)
	require.NotNil(t, u.ReferrerID)
	assert.Equal(t, int64(1), *u.ReferrerID)
}

func TestRegisterIgnoresSelfReferral(t *testing.T) {
	_, registry, _ := newServices(t)

	self := int64(5)
	_, outcome := registry.Register(5, "narcissus", "", "", &self)
	require.Equal(t, OutcomeOK, outcome)

	u, outcome := registry.Profile(5)
	require.Equal(t, OutcomeOK, outcome)
	assert.Nil(t, u.ReferrerID)
}

func TestProfileAbsentUser(t *testing.T) {
	_, registry, _ := newServices(t)

	u, outcome := registry.Profile(404)
	assert.Equal(t, OutcomeNotFound, outcome)
	assert.Nil(t, u)
}

func TestRegisterStoreUnavailable(t *testing.T) {
	db, registry, _ := newServices(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, outcome := registry.Register(1, "alice", "", "", nil)
	assert.Equal(t, OutcomeStoreUnavailable, outcome)
}
