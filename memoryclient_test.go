package memoryclient_test

import (
	"testing"

	"github.com/habiliai/memoryclient"
	"github.com/habiliai/memoryclient/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	c, err := memoryclient.New(map[string]any{
		"serverUrl": "http://localhost:9010",
		"namespace": "agents",
	})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9010", c.Config().ServerURL)
	assert.Equal(t, "agents", c.Config().Namespace)
}

func TestNew_InvalidConfig(t *testing.T) {
	_, err := memoryclient.New(map[string]any{"bogusField": true})
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrUnknownField)
}
