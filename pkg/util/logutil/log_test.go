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
	"testing"

	"github.com/pingcap/log"
	"github.com/stretchr/testify/require"
)

func TestInitLogger(t *testing.T) {
	conf := &log.Config{Level: DefaultLogLevel, File: log.FileLogConfig{}}
	require.NoError(t, InitLogger(conf))

	logger := BgLogger()
	require.NotNil(t, logger)
	logger.Info("logger initialized")
}
