package addr_test

import (
	"testing"

	"github.com/expotools/expourl/internal/addr"
	"github.com/stretchr/testify/assert"
)

func TestParsePort(t *testing.T) {
	t.Run("parses valid port numbers", func(t *testing.T) {
		port, err := addr.ParsePort("8081")

		assert.NoError(t, err)
		assert.Equal(t, uint16(8081), port)
	})

	t.Run("reports an error on port numbers out of range", func(t *testing.T) {
		_, err := addr.ParsePort("65536")
		assert.Error(t, err)
	})

	t.Run("reports an error on non-numeric input", func(t *testing.T) {
		_, err := addr.ParsePort("en0")
		assert.Error(t, err)
	})
}
