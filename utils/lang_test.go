package utils

import (
	"io/ioutil"
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalizeDefaults(t *testing.T) {
	require.NoError(t, InitI18NBundle(""))

	msg := Localize("en", "notification.help_accepted.content", map[string]interface{}{
		"Helper":    "bob",
		"RequestID": 7,
	})
	assert.Equal(t, "bob will help you with request #7", msg)

	assert.Equal(t, "no.such.message", Localize("en", "no.such.message", nil))
}

func TestLocalizeFromMessageFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "i18n")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	content := []byte("notification.account_registered.heading: 歡迎\n")
	require.NoError(t, ioutil.WriteFile(path.Join(dir, "zh_tw.yaml"), content, 0644))

	require.NoError(t, InitI18NBundle(dir))
	defer InitI18NBundle("")

	assert.Equal(t, "歡迎", Localize("zh-TW", "notification.account_registered.heading", nil))
	assert.Equal(t, "Welcome", Localize("en", "notification.account_registered.heading", nil))
	assert.Equal(t, "Welcome", Localize("fr", "notification.account_registered.heading", nil))
}
