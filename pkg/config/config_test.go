// Copyright 2025 PelicanDB, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigLoad(t *testing.T) {
	confFile := filepath.Join(t.TempDir(), "config.toml")
	content := `
sql-mode = "STRICT_ALL_TABLES,NO_ZERO_DATE"
max-warning-count = 10
`
	require.NoError(t, os.WriteFile(confFile, []byte(content), 0o644))

	conf := NewConfig()
	require.NoError(t, conf.Load(confFile))
	require.Equal(t, 10, conf.MaxWarningCnt)

	cfg, err := conf.EvalConfig()
	require.NoError(t, err)
	require.True(t, cfg.SQLMode.HasStrictMode())
	require.True(t, cfg.SQLMode.HasNoZeroDateMode())
	require.Equal(t, 10, cfg.MaxWarningCnt)
}

func TestConfigDefaults(t *testing.T) {
	conf := NewConfig()
	require.NoError(t, conf.Valid())

	cfg, err := conf.EvalConfig()
	require.NoError(t, err)
	require.False(t, cfg.SQLMode.HasStrictMode())
	require.Equal(t, 64, cfg.MaxWarningCnt)
}

func TestConfigInvalid(t *testing.T) {
	conf := NewConfig()
	conf.SQLMode = "NOT_A_MODE"
	err := conf.Valid()
	require.Error(t, err)
	require.True(t, ErrInvalidConfig.Equal(err))

	confFile := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(confFile, []byte("no-such-option = 1\n"), 0o644))
	require.Error(t, NewConfig().Load(confFile))
}
