package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/cipherlab/internal/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate gives each test an empty HOME and no CIPHERLAB_* overrides.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	for _, k := range []string{"CONFIG", "CIPHER", "VERBOSE", "LOG_LEVEL", "HISTORY", "NO_COLOR"} {
		t.Setenv("CIPHERLAB_"+k, "")
	}

	return home
}

// run executes the command line with stdin set to input.
func run(t *testing.T, input string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := cli.NewRootCommand(cli.Streams{In: strings.NewReader(input), Out: &out, Err: &errOut})
	root.SetArgs(args)
	err = root.Execute()

	return out.String(), errOut.String(), err
}

// TestFlags_Golden runs each cipher fully from flags.
func TestFlags_Golden(t *testing.T) {
	isolate(t)
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"--cipher=playfair", "--key=Monarchy", "--message=Instruments", "--encrypt"}, "Encrypted message: gatlmzclrqtx"},
		{[]string{"--cipher=playfair", "--key=monarchy", "--message=gatlmzclrqtx", "--decrypt"}, "Decrypted message: instrumentsz"},
		{[]string{"--cipher=hill", "--key=GYB NQK URP", "--message=act", "--encrypt"}, "Encrypted message: poh"},
		{[]string{"-c", "hill", "-k", "gybnqkurp", "-m", "poh", "-d"}, "Decrypted message: act"},
		{[]string{"--cipher=railfence", "--key=3", "--message=wearediscoveredfleeatonce", "--encrypt"}, "Encrypted message: wecrlteerdsoeefeaocXaivdenX"},
	}
	for _, tc := range cases {
		out, _, err := run(t, "", tc.args...)
		require.NoError(t, err, tc.args)
		assert.Contains(t, out, tc.want)
		assert.NotContains(t, out, "\x1b[", "no colour on a non-terminal")
	}
}

// TestFlags_Verbose prints the trace before the result.
func TestFlags_Verbose(t *testing.T) {
	isolate(t)
	out, _, err := run(t, "", "--cipher=railfence", "--key=3", "--message=We are", "--encrypt", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, out, "railfence encrypt trace")
	assert.Contains(t, out, "Padded message:")
	assert.Contains(t, out, "\tWe areX")
	assert.Less(t, strings.Index(out, "Matrix:"), strings.Index(out, "Encrypted message:"))
}

// TestInteractive_AllPrompts answers every question from piped input.
func TestInteractive_AllPrompts(t *testing.T) {
	isolate(t)
	out, _, err := run(t, "hill\ngybnqkurp\nact\nno\nyes\n")
	require.NoError(t, err)
	for _, p := range []string{"cipher> ", "key> ", "message> ", "verbose> ", "encrypt/decrypt> "} {
		assert.Contains(t, out, p)
	}
	assert.Contains(t, out, "Encrypted message: poh")
}

// TestInteractive_Reprompts loops until each answer is valid.
func TestInteractive_Reprompts(t *testing.T) {
	isolate(t)
	input := strings.Join([]string{
		"enigma", "railfence", // cipher
		"three", "0", "3", // key
		"hello world!", "we are discovered", // message
		"perhaps", "y", // verbose
		"n", // decrypt
	}, "\n") + "\n"
	out, _, err := run(t, input)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "Error: \"enigma\""))
	assert.Contains(t, out, "Error: \"three\"")
	assert.Contains(t, out, "Error: railfence.ParseKey(\"0\")")
	assert.Contains(t, out, "Error: \"hello world!\"")
	assert.Contains(t, out, "Error: \"perhaps\"")
	assert.Contains(t, out, "Decrypted message:")
	assert.Contains(t, out, "Ciphertext:")
}

// TestPartialFlags asks only for what is missing and skips the verbose question.
func TestPartialFlags(t *testing.T) {
	isolate(t)
	out, _, err := run(t, "instruments\ny\n", "--cipher=playfair", "--key=monarchy")
	require.NoError(t, err)
	assert.Contains(t, out, "message> ")
	assert.NotContains(t, out, "verbose> ")
	assert.Contains(t, out, "gatlmzclrqtx")
}

// TestNoInput fails instead of prompting.
func TestNoInput(t *testing.T) {
	isolate(t)
	_, _, err := run(t, "", "--cipher=hill", "--key=gybnqkurp", "--no-input", "--encrypt")
	assert.ErrorIs(t, err, cli.ErrMissingInput)
	assert.ErrorContains(t, err, "--message")
}

// TestAbortedInput ends the session on EOF.
func TestAbortedInput(t *testing.T) {
	isolate(t)
	_, _, err := run(t, "hill\n")
	assert.ErrorIs(t, err, cli.ErrAborted)
}

// TestErrors covers bad flags and engine failures.
func TestErrors(t *testing.T) {
	isolate(t)

	_, _, err := run(t, "", "--cipher=hill", "--key=abcdefghi", "--message=poh", "--decrypt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no inverse modulo 26")

	_, _, err = run(t, "", "--cipher=playfair", "--key=monarchy", "--message=abc", "--decrypt")
	assert.ErrorContains(t, err, "cannot decrypt")

	_, _, err = run(t, "", "--cipher=playfair", "--key=monarchy", "--message=abc1", "--encrypt")
	assert.ErrorIs(t, err, cli.ErrInvalidMessage)

	_, _, err = run(t, "", "--cipher=railfence", "--key=abc", "--message=abc", "--encrypt")
	assert.ErrorIs(t, err, cli.ErrInvalidKey)

	_, _, err = run(t, "", "--cipher=railfence", "--key=0", "--message=abc", "--encrypt")
	assert.ErrorContains(t, err, "cannot be used with the railfence cipher")

	_, _, err = run(t, "", "--cipher=playfair", "--key=k", "--message=abc", "--encrypt", "--decrypt")
	assert.Error(t, err)

	_, _, err = run(t, "", "--cipher=enigma", "--key=k", "--message=abc", "--encrypt")
	assert.Error(t, err)
}

// TestConfigDefaults preselects cipher, direction and Hill behaviour.
func TestConfigDefaults(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "c.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
cipher = "hill"
direction = "encrypt"

[hill]
minimal_padding = true
`), 0o600))

	out, _, err := run(t, "", "--config", path, "--key=gybnqkurp", "--message=hello")
	require.NoError(t, err)
	// five letters pad to six instead of nine
	line := out[strings.Index(out, "Encrypted message: "):]
	assert.Len(t, strings.TrimSpace(strings.TrimPrefix(line, "Encrypted message: ")), 6)
}

// TestHistory records runs without text or key and lists them.
func TestHistory(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	hist := filepath.Join(dir, "runs.jsonl")
	cfgPath := filepath.Join(dir, "c.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[history]\nenabled = true\npath = \""+filepath.ToSlash(hist)+"\"\n"), 0o600))

	_, _, err := run(t, "", "--config", cfgPath, "--cipher=playfair", "--key=monarchy", "--message=instruments", "--encrypt")
	require.NoError(t, err)
	_, _, err = run(t, "", "--config", cfgPath, "--cipher=hill", "--key=abcdefghi", "--message=abc", "--decrypt")
	require.Error(t, err)

	raw, err := os.ReadFile(hist)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "monarchy")
	assert.NotContains(t, string(raw), "instruments")
	assert.Equal(t, 2, strings.Count(string(raw), "\n"))

	out, _, err := run(t, "", "history", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "playfair")
	assert.Contains(t, out, "invalid_key")

	out, _, err = run(t, "", "history", "--config", cfgPath, "-n", "1")
	require.NoError(t, err)
	assert.NotContains(t, out, "playfair")
}

// TestConfigShow prints the effective TOML.
func TestConfigShow(t *testing.T) {
	isolate(t)
	t.Setenv("CIPHERLAB_CIPHER", "railfence")
	out, _, err := run(t, "", "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, `cipher = "railfence"`)
	assert.Contains(t, out, "[hill]")
}

// TestLogLevel writes diagnostics to stderr only when asked.
func TestLogLevel(t *testing.T) {
	isolate(t)
	_, errOut, err := run(t, "", "--log-level=debug", "--cipher=hill", "--key=gybnqkurp", "--message=act", "--encrypt")
	require.NoError(t, err)
	assert.Contains(t, errOut, "running cipher")
	assert.NotContains(t, errOut, "gybnqkurp")

	_, errOut, err = run(t, "", "--cipher=hill", "--key=gybnqkurp", "--message=act", "--encrypt")
	require.NoError(t, err)
	assert.Empty(t, errOut)
}

// TestExecute maps errors to exit code 1.
func TestExecute(t *testing.T) {
	isolate(t)
	var out, errOut bytes.Buffer
	s := cli.Streams{In: strings.NewReader(""), Out: &out, Err: &errOut}
	assert.Equal(t, 0, cli.Execute([]string{"--cipher=hill", "--key=gybnqkurp", "--message=act", "-e"}, s))
	assert.Equal(t, 1, cli.Execute([]string{"--cipher=hill", "--key=abcdefghi", "--message=act", "-d"}, s))
	assert.Contains(t, errOut.String(), "Error:")
}
