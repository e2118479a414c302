//go:build linux

package daemon

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestInjector_FeedRequiresCapSysAdmin(t *testing.T) {
	inj, err := newInjector()
	if err != nil {
		t.Skipf("cannot open %s: %v", randomDevicePath, err)
	}
	defer func() {
		_ = inj.Close()
	}()

	err = inj.feed([]byte{1, 2, 3, 4})
	if err != nil {
		// RNDADDENTROPY needs CAP_SYS_ADMIN; under an unprivileged test
		// runner this is the expected outcome, not a bug.
		assert.ErrorIs(t, errors.Unwrap(err), unix.EPERM)
		return
	}
}

func TestInjector_FeedEmptyIsNoop(t *testing.T) {
	inj, err := newInjector()
	if err != nil {
		t.Skipf("cannot open %s: %v", randomDevicePath, err)
	}
	defer func() {
		_ = inj.Close()
	}()

	require.NoError(t, inj.feed(nil))
}

func TestInjector_CloseNilIsNoop(t *testing.T) {
	var inj *injector
	assert.NoError(t, inj.Close())
}
