/*
File    : jackc/driver/driver_test.go
Author  : Rajat Verma
Contact : rajatverma27(@outlook.com)
*/
package driver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeTempJack(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRun_SingleFileParseMode(t *testing.T) {
	dir := t.TempDir()
	path := writeTempJack(t, dir, "Main.jack", "class Main {}")

	err := Run(path, Options{}, nil)
	assert.NoError(t, err)

	out, err := os.ReadFile(filepath.Join(dir, "Main.xml"))
	assert.NoError(t, err)
	assert.Contains(t, string(out), "<class>")
	assert.Contains(t, string(out), "<identifier>Main</identifier>")
}

func TestRun_SingleFileTokensOnlyMode(t *testing.T) {
	dir := t.TempDir()
	path := writeTempJack(t, dir, "Main.jack", "class Main {}")

	err := Run(path, Options{TokensOnly: true}, nil)
	assert.NoError(t, err)

	out, err := os.ReadFile(filepath.Join(dir, "Main.xml"))
	assert.NoError(t, err)
	assert.Contains(t, string(out), "<tokens>")
	assert.Contains(t, string(out), "<keyword>class</keyword>")
	assert.NotContains(t, string(out), "<class>")
}

func TestRun_TokensOnlyModeStripsLeadingZerosFromIntegerConstants(t *testing.T) {
	dir := t.TempDir()
	path := writeTempJack(t, dir, "Main.jack", "class Main { function void f() { let x = 007; return; } }")

	err := Run(path, Options{TokensOnly: true}, nil)
	assert.NoError(t, err)

	out, err := os.ReadFile(filepath.Join(dir, "Main.xml"))
	assert.NoError(t, err)
	assert.Contains(t, string(out), "<integerConstant>7</integerConstant>")
	assert.NotContains(t, string(out), "007")
}

func TestRun_DirectoryProcessesOnlyJackFiles(t *testing.T) {
	dir := t.TempDir()
	writeTempJack(t, dir, "A.jack", "class A {}")
	writeTempJack(t, dir, "B.jack", "class B {}")
	writeTempJack(t, dir, "notes.txt", "ignore me")

	err := Run(dir, Options{}, nil)
	assert.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "A.xml"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "B.xml"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "notes.xml"))
	assert.True(t, os.IsNotExist(err))
}

func TestRun_DirectoryOneFailureDoesNotBlockOthers(t *testing.T) {
	dir := t.TempDir()
	writeTempJack(t, dir, "Good.jack", "class Good {}")
	writeTempJack(t, dir, "Bad.jack", "class ( }")

	var logged []string
	err := Run(dir, Options{}, func(format string, a ...any) {
		logged = append(logged, format)
	})
	assert.Error(t, err)
	assert.NotEmpty(t, logged)

	_, statErr := os.Stat(filepath.Join(dir, "Good.xml"))
	assert.NoError(t, statErr)
	_, statErr = os.Stat(filepath.Join(dir, "Bad.xml"))
	assert.True(t, os.IsNotExist(statErr), "a failing file must not leave a partial .xml behind")
}

func TestRun_MissingPathIsIoError(t *testing.T) {
	err := Run("/no/such/path.jack", Options{}, nil)
	assert.Error(t, err)

	var ioErr *IoError
	assert.ErrorAs(t, err, &ioErr)
}

func TestRun_OverwritesExistingOutput(t *testing.T) {
	dir := t.TempDir()
	path := writeTempJack(t, dir, "Main.jack", "class Main {}")
	outPath := filepath.Join(dir, "Main.xml")
	assert.NoError(t, os.WriteFile(outPath, []byte("stale"), 0o644))

	assert.NoError(t, Run(path, Options{}, nil))

	out, err := os.ReadFile(outPath)
	assert.NoError(t, err)
	assert.NotEqual(t, "stale", string(out))
}
