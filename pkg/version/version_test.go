package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetVersion(t *testing.T) {
	assert.NotEmpty(t, GetVersion())

	saved := version
	t.Cleanup(func() { version = saved })

	version = "v1.2.3"
	assert.Equal(t, "v1.2.3", GetVersion())
}
