package cmd

import (
	"encoding/json"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	info := BuildInfo{Version: "v0.4.1", CommitID: "3f2a9c1", BuildTime: "2026-10-19T08:00:00Z"}

	t.Run("text", func(t *testing.T) {
		require := require.New(t)
		cli, out, _ := newTestCli(t)
		cli.SetBuildInfo(info)

		require.NoError(execute(cli, "version"))
		require.Equal("v0.4.1-3f2a9c1 2026-10-19T08:00:00Z\n", out.String())
	})

	t.Run("json", func(t *testing.T) {
		require := require.New(t)
		cli, out, _ := newTestCli(t)
		cli.SetBuildInfo(info)

		require.NoError(execute(cli, "version", "--json"))
		var got map[string]string
		require.NoError(json.Unmarshal(out.Bytes(), &got))
		require.Equal("v0.4.1", got["version"])
		require.Equal("3f2a9c1", got["commit"])
		require.Equal("2026-10-19T08:00:00Z", got["buildTime"])
		require.Equal(runtime.Version(), got["go"])
		require.Equal(runtime.GOOS, got["os"])
		require.Equal(runtime.GOARCH, got["arch"])
	})

	t.Run("flag", func(t *testing.T) {
		require := require.New(t)
		cli, out, _ := newTestCli(t)
		cli.SetBuildInfo(info)

		require.NoError(execute(cli, "--version"))
		require.Contains(out.String(), "v0.4.1-3f2a9c1 2026-10-19T08:00:00Z")
	})

	t.Run("extra args", func(t *testing.T) {
		require := require.New(t)
		cli, _, _ := newTestCli(t)

		err := execute(cli, "version", "now")
		require.ErrorIs(err, ErrInvalidArgumentCount)
		require.Equal(exitUsage, ExitCode(err))
	})
}
