package options

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvNamingConvention(t *testing.T) {
	t.Parallel()
	naming := &envNamingConvention{}
	assert.Equal(t, "SWIMBOARD_API_HOST", naming.Replace("api-host"))
	assert.Equal(t, "SWIMBOARD_VERBOSE", naming.Replace("verbose"))
	assert.PanicsWithError(t, "flag name cannot be empty", func() {
		naming.Replace("")
	})
}

func TestValidateMissing(t *testing.T) {
	t.Parallel()
	options := &Options{}
	errs := options.Validate([]string{"ApiHost", "Username", "Password", "MeetId"})
	assert.Contains(t, errs, `- Missing api host. Please use "--api-host" flag or ENV variable "SWIMBOARD_API_HOST".`)
	assert.Contains(t, errs, `- Missing username. Please use "--username" flag or ENV variable "SWIMBOARD_USERNAME".`)
	assert.Contains(t, errs, `- Missing password. Please use "--password" flag or ENV variable "SWIMBOARD_PASSWORD".`)
	assert.Contains(t, errs, `- Missing meet id. Please use "--meet-id" flag or ENV variable "SWIMBOARD_MEET_ID".`)
}

func TestValidateOk(t *testing.T) {
	t.Parallel()
	options := &Options{
		ApiHost:  "api.swimtopia.org",
		Username: "coach",
		Password: "secret",
		MeetId:   "12345",
	}
	assert.Empty(t, options.Validate([]string{"ApiHost", "Username", "Password", "MeetId"}))
}

func TestLoadNormalizesValues(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	options := &Options{}
	options.BindPersistentFlags(flags)
	require.NoError(t, flags.Parse([]string{
		"--working-dir", t.TempDir(),
		"--api-host", "https://api.example.com/",
		"--username", "  coach  ",
	}))

	warnings, err := options.Load(flags)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, "api.example.com", options.ApiHost)
	assert.Equal(t, "coach", options.Username)
	assert.Equal(t, "api_cache", options.CacheDir)
}

func TestDumpHidesPassword(t *testing.T) {
	t.Parallel()
	options := &Options{Password: "super-secret"}
	dump := options.Dump()
	assert.NotContains(t, dump, "super-secret")
	assert.Contains(t, dump, `Password:"su*****"`)
}
