package utils

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthMonitorMemoryStore(t *testing.T) {
	m := NewHealthMonitor(nil, nil)
	status := m.Check(context.Background())

	assert.Equal(t, "memory", status.Database)
	assert.True(t, status.Healthy())
	assert.Equal(t, status, m.Status())
}

func TestHealthMonitorReportsDatabaseFailure(t *testing.T) {
	m := NewHealthMonitor(func(context.Context) error { return errors.New("down") }, nil)
	status := m.Check(context.Background())

	assert.Equal(t, "error", status.Database)
	assert.False(t, status.Healthy())
}

func TestHealthStatusJSONKeys(t *testing.T) {
	status := NewHealthMonitor(nil, nil).Check(context.Background())
	b, err := json.Marshal(status)
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &fields))
	assert.Contains(t, fields, "checked_at")
	assert.NotContains(t, fields, "checkedAt")
}
