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

package logutil

import (
	"github.com/pingcap/errors"
	"github.com/pingcap/log"
	"go.uber.org/zap"
)

// DefaultLogLevel is the default log level.
const DefaultLogLevel = "info"

// InitLogger initializes the global logger.
func InitLogger(cfg *log.Config) error {
	gl, props, err := log.InitLogger(cfg, zap.AddStacktrace(zap.FatalLevel))
	if err != nil {
		return errors.Trace(err)
	}
	log.ReplaceGlobals(gl, props)
	return nil
}

// BgLogger returns the default global logger. It is meant for background
// activity not tied to an executing statement.
func BgLogger() *zap.Logger {
	return log.L()
}
