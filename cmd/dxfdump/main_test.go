package main

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfiguration_FlagsOverrideConfig(t *testing.T) {
	flags := rootCmd.Flags()
	require.NoError(t, flags.Set("config", t.TempDir()))
	require.NoError(t, flags.Set("failsafe", "false"))
	require.NoError(t, flags.Set("codepage", "ANSI_936"))
	require.NoError(t, flags.Set("format", formatYAML))

	cfg := configuration()
	assert.False(t, cfg.Failsafe)
	assert.Equal(t, "ANSI_936", cfg.CodePage)
	// 没有设置的参数保留配置文件的默认值
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, formatYAML, viper.GetString("format"))
}
