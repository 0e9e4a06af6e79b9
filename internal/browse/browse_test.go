package browse

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSystem_Command verifies the per-platform command selection.
func TestSystem_Command(t *testing.T) {
	tests := []struct {
		goos string
		want string
	}{
		{"linux", "xdg-open"},
		{"darwin", "open"},
		{"windows", "explorer"},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			cmd, err := System{GOOS: tt.goos}.Command("/tmp/project")
			require.NoError(t, err)
			assert.Equal(t, []string{tt.want, "/tmp/project"}, cmd.Args)
		})
	}

	_, err := System{GOOS: "plan9"}.Command("/tmp")
	assert.Error(t, err)
}

// TestSystem_Open verifies that Open starts the selected command and
// propagates start failures.
func TestSystem_Open(t *testing.T) {
	var started []string
	s := System{GOOS: "linux", start: func(cmd *exec.Cmd) error {
		started = cmd.Args
		return nil
	}}
	require.NoError(t, s.Open("/srv"))
	assert.Equal(t, []string{"xdg-open", "/srv"}, started)

	failing := System{GOOS: "linux", start: func(*exec.Cmd) error { return errors.New("no display") }}
	assert.EqualError(t, failing.Open("/srv"), "no display")
}

// TestOpenerFunc checks the adapter.
func TestOpenerFunc(t *testing.T) {
	var got string
	var o Opener = OpenerFunc(func(p string) error { got = p; return nil })
	require.NoError(t, o.Open("/x"))
	assert.Equal(t, "/x", got)
}

// TestStartDetached runs the test binary itself with no tests selected and
// checks that the started process is released without error.
func TestStartDetached(t *testing.T) {
	cmd := exec.Command(os.Args[0], "-test.run=^$")
	require.NoError(t, startDetached(cmd))
	assert.NotNil(t, cmd.Process)

	missing := exec.Command(filepath.Join(t.TempDir(), "no-such-binary"))
	assert.Error(t, startDetached(missing))
}
