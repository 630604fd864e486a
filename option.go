/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package pinotsql

import (
	"io"

	"github.com/rulego/pinotsql/logger"
	"github.com/rulego/pinotsql/types"
)

// Option 表示对 Translator 默认行为的修改配置。
type Option func(*Translator)

// WithConfig 使用完整配置，覆盖之前的配置类选项。
//
// 示例:
//
//	cfg, err := types.LoadConfigFile("pinotsql.yaml")
//	t, err := pinotsql.New(pinotsql.WithConfig(cfg))
func WithConfig(config types.Config) Option {
	return func(t *Translator) {
		t.config = config
	}
}

// WithPercentileFunction 设置 PERCENTILE 转换使用的聚合函数名，空字符串表示默认的 PERCENTILETDIGEST。
// 名称必须是标识符，否则 New 返回错误。
func WithPercentileFunction(name string) Option {
	return func(t *Translator) {
		t.config.PercentileAggregationFunction = name
	}
}

// WithColumnMapping 设置逻辑列名到物理列名的映射。
func WithColumnMapping(columns map[string]string) Option {
	return func(t *Translator) {
		t.config.ColumnMapping = columns
	}
}

// WithStrictColumns 未映射的列名报错，而不是原样输出。
func WithStrictColumns() Option {
	return func(t *Translator) {
		t.config.StrictColumns = true
	}
}

// WithLogger 设置自定义日志记录器。
//
// 示例:
//
//	t, err := pinotsql.New(pinotsql.WithLogger(logger.NewLogger(logger.DEBUG, os.Stderr)))
func WithLogger(log logger.Logger) Option {
	return func(t *Translator) {
		t.logger = log
	}
}

// WithLogLevel 设置日志级别，只作用于本 Translator，不会修改共享的日志记录器。
func WithLogLevel(level logger.Level) Option {
	return func(t *Translator) {
		t.config.LogLevel = level.String()
	}
}

// WithLogOutput 设置日志输出目标和级别。
func WithLogOutput(output io.Writer, level logger.Level) Option {
	return func(t *Translator) {
		t.logger = logger.NewLogger(level, output)
	}
}

// WithDiscardLog 禁用日志输出
func WithDiscardLog() Option {
	return func(t *Translator) {
		t.logger = logger.NewDiscardLogger()
	}
}
