package messaging

import (
	"crypto/rand"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scriptor-ai/scriptor/pkg/fault"
)

func testKey(t *testing.T) []byte {
	t.Helper()
	key := make([]byte, masterKeyLen)
	_, err := rand.Read(key)
	require.NoError(t, err)
	return key
}

func TestCipher_RoundTrip(t *testing.T) {
	cipher, err := NewCipher(testKey(t), 1)
	require.NoError(t, err)

	env, err := cipher.Encrypt([]byte("hello, room"))
	require.NoError(t, err)
	assert.Equal(t, 1, env.KeyVersion)
	assert.NotContains(t, string(env.Ciphertext), "hello")

	plaintext, err := cipher.Decrypt(env)
	require.NoError(t, err)
	assert.Equal(t, "hello, room", string(plaintext))
}

func TestCipher_UniqueEnvelopes(t *testing.T) {
	cipher, err := NewCipher(testKey(t), 1)
	require.NoError(t, err)

	a, err := cipher.Encrypt([]byte("same body"))
	require.NoError(t, err)
	b, err := cipher.Encrypt([]byte("same body"))
	require.NoError(t, err)

	assert.NotEqual(t, a.Ciphertext, b.Ciphertext, "fresh DEK and nonce per message")
	assert.NotEqual(t, a.WrappedDEK, b.WrappedDEK)
}

func TestCipher_TamperDetection(t *testing.T) {
	cipher, err := NewCipher(testKey(t), 1)
	require.NoError(t, err)

	env, err := cipher.Encrypt([]byte("secret"))
	require.NoError(t, err)
	env.Ciphertext[0] ^= 0xff

	_, err = cipher.Decrypt(env)
	require.Error(t, err)
}

func TestCipher_KeyVersionMismatch(t *testing.T) {
	key := testKey(t)
	v1, err := NewCipher(key, 1)
	require.NoError(t, err)
	v2, err := NewCipher(key, 2)
	require.NoError(t, err)

	env, err := v1.Encrypt([]byte("body"))
	require.NoError(t, err)

	_, err = v2.Decrypt(env)
	require.Error(t, err)
	assert.Equal(t, fault.KindBadInput, fault.KindOf(err))
}

func TestCipher_WrongMasterKey(t *testing.T) {
	a, err := NewCipher(testKey(t), 1)
	require.NoError(t, err)
	b, err := NewCipher(testKey(t), 1)
	require.NoError(t, err)

	env, err := a.Encrypt([]byte("body"))
	require.NoError(t, err)

	_, err = b.Decrypt(env)
	require.Error(t, err)
}

func TestLoadMasterKey(t *testing.T) {
	const envVar = "SCRIPTOR_TEST_MASTER_KEY"

	t.Run("unset", func(t *testing.T) {
		t.Setenv(envVar, "")
		_, err := LoadMasterKey(envVar)
		require.Error(t, err)
		assert.Equal(t, fault.KindFatalConfig, fault.KindOf(err))
	})

	t.Run("not base64", func(t *testing.T) {
		t.Setenv(envVar, "not-base-64!!!")
		_, err := LoadMasterKey(envVar)
		require.Error(t, err)
	})

	t.Run("wrong length", func(t *testing.T) {
		t.Setenv(envVar, base64.StdEncoding.EncodeToString([]byte("short")))
		_, err := LoadMasterKey(envVar)
		require.Error(t, err)
	})

	t.Run("valid", func(t *testing.T) {
		key := testKey(t)
		t.Setenv(envVar, base64.StdEncoding.EncodeToString(key))
		got, err := LoadMasterKey(envVar)
		require.NoError(t, err)
		assert.Equal(t, key, got)
	})
}
