package configs_test

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"

	"luppolo.dev/Luppolo/configs"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (suite *ConfigTestSuite) TestGetConfig_GetsNamedFile() {
	logger := zaptest.NewLogger(suite.T())

	config, err := configs.GetConfig("testdata/config.toml", logger)

	suite.Require().NoError(err)
	suite.Equal("test.local", config.DB.Host)
	suite.Equal(1234, config.DB.Port)
	suite.Equal("testuser", config.DB.User)
	suite.Equal("test123", config.DB.Password)
	suite.Equal("testdb", config.DB.Database)
	suite.Equal(5, config.DB.MaxIdleConnections)
	suite.Equal(7, config.DB.MaxOpenConnections)
	suite.Equal(666, config.Server.Port)
	suite.Equal("secret", config.Auth.SecretKey)
	suite.Equal([]string{"untappd_web"}, config.Integrations.Beer)
	suite.Equal("/tmp/luppolo-uploads", config.Uploads.Directory)
	suite.Equal("https://cdn.luppolo.test", config.Uploads.BaseURL)
	suite.Equal(30, config.Moderation.PubEditCooldownDays)
}

func (suite *ConfigTestSuite) TestGetConfig_GetsEnv() {
	logger := zaptest.NewLogger(suite.T())

	suite.T().Setenv("LUPPOLO_DB_HOST", "env.local")
	suite.T().Setenv("LUPPOLO_DB_PASSWORD", "env123")
	suite.T().Setenv("LUPPOLO_AUTH_SECRETKEY", "envsecret")
	suite.T().Setenv("LUPPOLO_SERVER_PORT", "9999")
	suite.T().Setenv("LUPPOLO_MODERATION_PUBEDITCOOLDOWNDAYS", "7")

	config, err := configs.GetConfig("", logger)

	suite.Require().NoError(err)
	suite.Equal("env.local", config.DB.Host)
	suite.Equal("env123", config.DB.Password)
	suite.Equal("envsecret", config.Auth.SecretKey)
	suite.Equal(9999, config.Server.Port)
	suite.Equal(7, config.Moderation.PubEditCooldownDays)
	suite.Equal(10, config.DB.MaxIdleConnections)
	suite.Equal("./uploads", config.Uploads.Directory)
}

func (suite *ConfigTestSuite) TestGetConfig_EnvOverridesFile() {
	logger := zaptest.NewLogger(suite.T())

	suite.T().Setenv("LUPPOLO_DB_HOST", "env.local")
	suite.T().Setenv("LUPPOLO_DB_USER", "envuser")
	suite.T().Setenv("LUPPOLO_AUTH_SECRETKEY", "envsecret")

	config, err := configs.GetConfig("testdata/config.toml", logger)

	suite.Require().NoError(err)
	suite.Equal("env.local", config.DB.Host)
	suite.Equal("envuser", config.DB.User)
	suite.Equal("test123", config.DB.Password)
	suite.Equal("envsecret", config.Auth.SecretKey)
	suite.Equal(666, config.Server.Port)
}

func (suite *ConfigTestSuite) TestGetConfig_MissingFileReturnsError() {
	logger := zaptest.NewLogger(suite.T())

	config, err := configs.GetConfig("testdata/missing.toml", logger)

	suite.Nil(config)
	suite.Error(err)
}

func (suite *ConfigTestSuite) TestGetConfig_MissingValues() {
	logger := zaptest.NewLogger(suite.T())

	config, err := configs.GetConfig("", logger)

	suite.Nil(config)
	suite.EqualError(err, "DB.Host: required validation failed, DB.Password: required validation failed, Auth.SecretKey: required validation failed")
}
