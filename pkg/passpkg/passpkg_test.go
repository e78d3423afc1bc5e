package passpkg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPin(t *testing.T) {
	pin := "1234"

	hashedPin1, err := Hash(pin)
	require.NoError(t, err)
	require.NotEmpty(t, hashedPin1)
	require.NotContains(t, hashedPin1, pin)

	err = Check(pin, hashedPin1)
	require.NoError(t, err)

	wrongPin := "4321"
	err = Check(wrongPin, hashedPin1)
	require.EqualError(t, err, bcrypt.ErrMismatchedHashAndPassword.Error())

	// Test for random salt generation
	hashedPin2, err := Hash(pin)
	require.NoError(t, err)
	require.NotEmpty(t, hashedPin2)
	require.NotEqual(t, hashedPin1, hashedPin2)
}

func TestHashTooLong(t *testing.T) {
	_, err := Hash(strings.Repeat("1234", 100))
	require.Error(t, err)
}
