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
	"github.com/rulego/pinotsql/functions"
	"github.com/rulego/pinotsql/logger"
	"github.com/rulego/pinotsql/rsql"
	"github.com/rulego/pinotsql/types"
)

// Translator 是函数语法转换的入口。
// 它把抽象函数调用转换为 Pinot 的函数调用语法，构造后不可变，可并发使用。
//
// 使用示例:
//
//	t, err := pinotsql.New(pinotsql.WithPercentileFunction("PERCENTILEEST"))
//	out, err := t.ConvertString(types.RangeOf(time.Hour), "PERCENTILE95(duration)")
//	// out == "PERCENTILEEST95(duration)"
type Translator struct {
	config    types.Config
	logger    logger.Logger
	converter *functions.FunctionConverter
	renderer  *functions.ExpressionRenderer
}

// New 创建一个新的 Translator。选项按顺序应用，后面的覆盖前面的。
// 最终配置不合法时（例如百分位函数名不是标识符）返回错误。
func New(options ...Option) (*Translator, error) {
	t := &Translator{
		config: types.NewConfig(),
	}
	for _, option := range options {
		option(t)
	}
	if err := t.config.Validate(); err != nil {
		return nil, err
	}
	if t.logger == nil {
		t.logger = logger.GetDefault()
	}
	if t.config.LogLevel != "" {
		// the level applies to this translator only, never to a shared logger
		level, _ := logger.ParseLevel(t.config.LogLevel)
		t.logger = t.logger.WithLevel(level)
	}

	t.converter = functions.NewFunctionConverter(t.config.PercentileFunction(),
		functions.WithConverterLogger(t.logger.Named("functions")))

	rendererOptions := []functions.RendererOption{functions.WithColumnMapping(t.config.ColumnMapping)}
	if t.config.StrictColumns {
		rendererOptions = append(rendererOptions, functions.WithStrictColumns())
	}
	t.renderer = functions.NewExpressionRenderer(t.converter, rendererOptions...)
	return t, nil
}

// Convert converts fn with a caller-supplied argument converter.
func (t *Translator) Convert(ctx types.ExecutionContext, fn *types.Function, argumentConverter functions.ArgumentConverter) (string, error) {
	return t.converter.Convert(ctx, fn, argumentConverter)
}

// ConvertFunction converts fn rendering arguments with the built-in renderer,
// which applies the configured column mapping.
func (t *Translator) ConvertFunction(ctx types.ExecutionContext, fn *types.Function) (string, error) {
	return t.converter.Convert(ctx, fn, t.renderer.ArgumentConverter(ctx))
}

// ConvertString parses text as a function call and converts it.
func (t *Translator) ConvertString(ctx types.ExecutionContext, text string) (string, error) {
	fn, err := rsql.ParseFunction(text)
	if err != nil {
		return "", err
	}
	return t.ConvertFunction(ctx, fn)
}

// Converter returns the underlying FunctionConverter.
func (t *Translator) Converter() *functions.FunctionConverter {
	return t.converter
}

// Config returns the configuration the translator was built with.
func (t *Translator) Config() types.Config {
	return t.config
}
