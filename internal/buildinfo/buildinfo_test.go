package buildinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShortPrefersVersion(t *testing.T) {
	defer func(v, c string) { Version, Commit = v, c }(Version, Commit)

	Version, Commit = "v1.2.0", "abcdef1"
	assert.Equal(t, "v1.2.0", Short())

	Version = "dev"
	assert.Equal(t, "abcdef1", Short())

	Commit = "unknown"
	assert.NotEmpty(t, Short())
}
