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
Package functions translates abstract query function calls into Apache Pinot function syntax.

A FunctionConverter is built once with the percentile aggregate to emit and is then used for
every function node of every query. Arguments are rendered by a caller-supplied
ArgumentConverter; ExpressionRenderer is the reference implementation.

# Rewrites

	COUNT(x)                 -> COUNT(*)
	PERCENTILE(95, col)      -> PERCENTILETDIGEST95(col)
	PERCENTILE95(col)        -> PERCENTILETDIGEST95(col)
	CONCAT(a, b)             -> CONCATSKIPNULL(a,b)
	AVGRATE(col, 'PT5S')     -> SUM(DIV(col,12))        over a 60s window
	FOO(a, b)                -> FOO(a,b)

Function names are matched case-insensitively. The generic form keeps the name as written.

# Errors

Failures are *ConversionError values and match ErrArgument, ErrFormat or ErrContextState
through errors.Is:

	out, err := converter.Convert(ctx, fn, renderer.ArgumentConverter(ctx))
	if errors.Is(err, functions.ErrArgument) {
		// PERCENTILE without a leading integer literal
	}
*/
package functions
