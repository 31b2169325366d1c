package branding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmbeddedValues(t *testing.T) {
	assert.Equal(t, "xcpp", CLIName())
	assert.Equal(t, "xcpp", ConfigDir())
	assert.Equal(t, "config.yaml", ConfigFile())
	assert.Equal(t, "XCPP", EnvPrefix())
}

func TestEnvVar(t *testing.T) {
	assert.Equal(t, "XCPP_CONFIG_DIR", EnvVar("config_dir"))
	assert.Equal(t, "XCPP_LOG", EnvVar("log"))
}
