package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestOneShot(t *testing.T) {
	t.Run("weak pin", func(t *testing.T) {
		out := runCommand(t, "", "--pin", "1234")
		assert.Contains(t, out, "WEAK")
		assert.Contains(t, out, "SEQUENTIAL")
	})

	t.Run("strong pin", func(t *testing.T) {
		out := runCommand(t, "", "--pin", "7391", "--length", "4")
		assert.Contains(t, out, "STRONG")
		assert.Contains(t, out, "No weaknesses detected")
	})

	t.Run("birthdate flag feeds the validator", func(t *testing.T) {
		out := runCommand(t, "", "--pin", "0209", "--birthdate", "1995-02-09")
		assert.Contains(t, out, "WEAK")
		assert.Contains(t, out, "BIRTHDATE")
	})

	t.Run("malformed date is rejected", func(t *testing.T) {
		cmd := newRootCommand()
		cmd.SetOut(new(bytes.Buffer))
		cmd.SetErr(new(bytes.Buffer))
		cmd.SetArgs([]string{"--pin", "0209", "--birthdate", "09-02-1995"})
		assert.Error(t, cmd.Execute())
	})
}

func TestInteractiveSession(t *testing.T) {
	t.Run("full session with demographics", func(t *testing.T) {
		stdin := strings.Join([]string{
			"1995-02-09", // birth date
			"",           // spouse skipped
			"",           // anniversary skipped
			"4",
			"9020",
			"n",
		}, "\n") + "\n"
		out := runCommand(t, stdin)
		assert.Contains(t, out, "MPIN Security Validator")
		assert.Contains(t, out, "WEAK")
		assert.Contains(t, out, "BIRTHDATE_REVERSED")
	})

	t.Run("re-prompts on malformed date", func(t *testing.T) {
		stdin := strings.Join([]string{
			"not-a-date",
			"1995-02-09",
			"",
			"",
			"4",
			"7391",
			"no",
		}, "\n") + "\n"
		out := runCommand(t, stdin)
		assert.Contains(t, out, "Invalid date")
		assert.Contains(t, out, "STRONG")
	})

	t.Run("exit quits at any prompt", func(t *testing.T) {
		out := runCommand(t, "exit\n")
		assert.Contains(t, out, "date of birth")
		assert.NotContains(t, out, "PIN Strength")
	})

	t.Run("re-prompts on bad length and pin", func(t *testing.T) {
		stdin := strings.Join([]string{
			"", "", "",
			"5",
			"4",
			"12",
			"12a4",
			"1234",
			"n",
		}, "\n") + "\n"
		out := runCommand(t, stdin)
		assert.Contains(t, out, "PIN length must be either 4 or 6.")
		assert.Contains(t, out, "PIN must be exactly 4 digits.")
		assert.Contains(t, out, "PIN must contain only digits.")
		assert.Contains(t, out, "SEQUENTIAL")
	})
}
