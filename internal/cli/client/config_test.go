package client

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConfigDir(t *testing.T) {
	dir, err := GetConfigDir()
	require.NoError(t, err)
	assert.NotEmpty(t, dir)
	assert.True(t, filepath.IsAbs(dir))
	assert.True(t, strings.HasSuffix(dir, "docfaq"))
}

func TestGetConfigPath(t *testing.T) {
	path, err := GetConfigPath()
	require.NoError(t, err)
	assert.NotEmpty(t, path)
	assert.True(t, filepath.IsAbs(path))
	assert.True(t, strings.HasSuffix(path, "config.json"))
}

func TestLoadGlobalConfig_FileNotExists(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	oldGetConfigPath := getConfigPathFunc
	getConfigPathFunc = func() (string, error) {
		return configPath, nil
	}
	defer func() { getConfigPathFunc = oldGetConfigPath }()

	config, err := LoadGlobalConfig()
	require.NoError(t, err)
	assert.Nil(t, config)
}

func TestLoadGlobalConfig_ValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	testConfig := GlobalConfig{
		APIKey: "supersecret",
		APIURL: "http://localhost:8080",
	}
	data, _ := json.MarshalIndent(testConfig, "", "  ")
	require.NoError(t, os.WriteFile(configPath, data, 0600))

	oldGetConfigPath := getConfigPathFunc
	getConfigPathFunc = func() (string, error) {
		return configPath, nil
	}
	defer func() { getConfigPathFunc = oldGetConfigPath }()

	config, err := LoadGlobalConfig()
	require.NoError(t, err)
	require.NotNil(t, config)
	assert.Equal(t, "supersecret", config.APIKey)
	assert.Equal(t, "http://localhost:8080", config.APIURL)
}

func TestLoadGlobalConfig_InvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")
	require.NoError(t, os.WriteFile(configPath, []byte("{nope"), 0600))

	oldGetConfigPath := getConfigPathFunc
	getConfigPathFunc = func() (string, error) {
		return configPath, nil
	}
	defer func() { getConfigPathFunc = oldGetConfigPath }()

	_, err := LoadGlobalConfig()
	assert.Error(t, err)
}

func TestSaveAndDeleteGlobalConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configDir := filepath.Join(tmpDir, "docfaq")
	configPath := filepath.Join(configDir, "config.json")

	oldGetConfigDir := getConfigDirFunc
	oldGetConfigPath := getConfigPathFunc
	getConfigDirFunc = func() (string, error) { return configDir, nil }
	getConfigPathFunc = func() (string, error) { return configPath, nil }
	defer func() {
		getConfigDirFunc = oldGetConfigDir
		getConfigPathFunc = oldGetConfigPath
	}()

	err := SaveGlobalConfig(&GlobalConfig{APIKey: "k", APIURL: "http://example.com"})
	require.NoError(t, err)

	info, err := os.Stat(configPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	config, err := LoadGlobalConfig()
	require.NoError(t, err)
	require.NotNil(t, config)
	assert.Equal(t, "k", config.APIKey)

	require.NoError(t, DeleteGlobalConfig())
	_, err = os.Stat(configPath)
	assert.True(t, os.IsNotExist(err))

	// Deleting again is a no-op
	require.NoError(t, DeleteGlobalConfig())
}

func TestSaveGlobalConfig_Nil(t *testing.T) {
	assert.Error(t, SaveGlobalConfig(nil))
}

func TestGetCredentialSource_FlagWins(t *testing.T) {
	source, key, url := GetCredentialSource("flagkey", "http://flag.example.com")
	assert.Equal(t, SourceFlag, source)
	assert.Equal(t, "flagkey", key)
	assert.Equal(t, "http://flag.example.com", url)
}

func TestGetCredentialSource_Env(t *testing.T) {
	t.Setenv(envAPIKey, "envkey")
	t.Setenv(envAPIURL, "http://env.example.com")

	source, key, url := GetCredentialSource("", "")
	assert.Equal(t, SourceEnvFile, source)
	assert.Equal(t, "envkey", key)
	assert.Equal(t, "http://env.example.com", url)
}
