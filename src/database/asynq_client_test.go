package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitAsynq(t *testing.T) {
	t.Run("TestEmptyURIDisablesQueue", func(t *testing.T) {
		assert.Nil(t, InitAsynq(""))
		assert.Nil(t, AsynqClient)
	})

	t.Run("TestClientUsesGivenURI", func(t *testing.T) {
		// the client dials lazily, nothing has to listen here
		c := InitAsynq("127.0.0.1:6399")
		require.NotNil(t, c)
		assert.Same(t, c, AsynqClient)
		assert.NoError(t, c.Close())
		AsynqClient = nil
	})
}
