package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersion(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("version")
	env.contains(out, "Build Tag:    dev")
	env.contains(out, "Go Version:")

	var got map[string]string
	env.runJSON(&got, "version")
	assert.Equal(t, "dev", got["build_tag"])
}
