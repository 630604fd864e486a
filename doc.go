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

/*
Package pinotsql 把与执行引擎无关的查询函数调用转换为 Apache Pinot 的函数调用语法。

查询规划器产出的函数节点（函数名 + 有序参数）在编译阶段逐个交给转换器，得到 Pinot SQL
片段。转换处理命名差异、引擎不支持的函数以及语义差异。

# 转换规则

• COUNT(x) 总是输出 COUNT(*)
• PERCENTILE(95, col) 输出 PERCENTILETDIGEST95(col)，聚合函数名可配置
• PERCENTILE95(col) 这类旧式写法先规范化为 PERCENTILE(95, col)
• CONCAT 改写为 CONCATSKIPNULL，忽略 null 输入
• AVGRATE(col, 'PT5S') 按查询时间窗口换算为 SUM(DIV(col, 窗口秒数/区间秒数))
• 其他函数原样输出

# 入门示例

	package main

	import (
		"fmt"
		"time"

		"github.com/rulego/pinotsql"
		"github.com/rulego/pinotsql/types"
	)

	func main() {
		t, err := pinotsql.New(pinotsql.WithColumnMapping(map[string]string{
			"API_TRACE.bytes": "bytes_received",
		}))
		if err != nil {
			panic(err)
		}

		// 60 秒的查询时间窗口
		ctx := types.RangeOf(time.Minute)

		out, err := t.ConvertString(ctx, `AVGRATE(API_TRACE.bytes, 'PT5S')`)
		if err != nil {
			panic(err)
		}
		fmt.Println(out) // SUM(DIV(bytes_received,12))
	}

# 错误处理

转换失败返回 *functions.ConversionError，可以用 errors.Is 匹配 functions.ErrArgument、
functions.ErrFormat 和 functions.ErrContextState。所有错误都是输入导致的，不应重试。

# 配置

配置可以通过选项或 YAML 文件提供，参见 types.Config 和 types.LoadConfigFile:

	percentileAggregationFunction: PERCENTILETDIGEST
	strictColumns: false
	logLevel: warn
	columnMapping:
	  API_TRACE.duration: duration_millis
*/
package pinotsql
