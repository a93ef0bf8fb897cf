// Copyright (c) 2026 GamerGrid. All rights reserved.
// Author: GamerGrid Team

package uuid_test

import (
	"testing"

	googleuuid "github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DavidGolding200238/GamerGrid-2.0-sub000/pkg/uuid"
)

/*
TestNew_Version7 verifies generated IDs parse as distinct version 7 UUIDs.
*/
func TestNew_Version7(t *testing.T) {
	first := uuid.New()
	second := uuid.New()

	parsed, err := googleuuid.Parse(first)
	require.NoError(t, err)
	assert.Equal(t, googleuuid.Version(7), parsed.Version())
	assert.NotEqual(t, first, second)
}
