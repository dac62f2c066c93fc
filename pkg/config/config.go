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
	"github.com/BurntSushi/toml"
	"github.com/pingcap/errors"

	"github.com/pelicandb/pelican/pkg/expression"
	"github.com/pelicandb/pelican/pkg/parser/mysql"
	"github.com/pelicandb/pelican/pkg/parser/terror"
	"github.com/pelicandb/pelican/pkg/util/dbterror"
)

// Config holds the evaluator settings a deployment can override.
type Config struct {
	// SQLMode is the sql_mode value applied to every statement, in the
	// comma-separated MySQL notation.
	SQLMode string `toml:"sql-mode" json:"sql-mode"`
	// MaxWarningCnt is the cap on warnings kept per statement.
	MaxWarningCnt int `toml:"max-warning-count" json:"max-warning-count"`
}

var defaultConf = Config{
	SQLMode:       "",
	MaxWarningCnt: mysql.DefaultMaxWarningCnt,
}

// NewConfig creates a new config instance with default value.
func NewConfig() *Config {
	conf := defaultConf
	return &conf
}

// ErrInvalidConfig is returned when a config file fails validation.
var ErrInvalidConfig = dbterror.ClassConfig.NewStdErr(terror.ErrCode(mysql.ErrWrongValueForVar), mysql.MySQLErrName[mysql.ErrWrongValueForVar])

// Load loads config options from a toml file.
func (c *Config) Load(confFile string) error {
	metaData, err := toml.DecodeFile(confFile, c)
	if err != nil {
		return errors.Trace(err)
	}
	if undecoded := metaData.Undecoded(); len(undecoded) > 0 {
		return errors.Errorf("config file %s contained unknown configuration options: %v", confFile, undecoded)
	}
	return c.Valid()
}

// Valid checks whether the config is workable.
func (c *Config) Valid() error {
	if _, err := mysql.GetSQLMode(mysql.FormatSQLModeStr(c.SQLMode)); err != nil {
		return errors.Trace(ErrInvalidConfig.GenWithStackByArgs("sql-mode", c.SQLMode))
	}
	if c.MaxWarningCnt < 0 {
		return errors.Trace(ErrInvalidConfig.GenWithStackByArgs("max-warning-count", c.MaxWarningCnt))
	}
	return nil
}

// EvalConfig builds the per-statement evaluation config described by c.
func (c *Config) EvalConfig() (*expression.EvalConfig, error) {
	mode, err := mysql.GetSQLMode(mysql.FormatSQLModeStr(c.SQLMode))
	if err != nil {
		return nil, errors.Trace(err)
	}
	cfg := expression.NewEvalConfig().SetSQLMode(mode)
	if c.MaxWarningCnt > 0 {
		cfg.MaxWarningCnt = c.MaxWarningCnt
	}
	return cfg, nil
}
