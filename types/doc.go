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
Package types defines the abstract function model, the execution context and the translator
configuration.

# Function Model

A Function is a name plus ordered argument Expressions. An Expression is a literal Value, a
column reference or a nested Function:

	fn := types.NewFunction("PERCENTILE",
		types.Literal(types.IntValue(95)),
		types.Column("API_TRACE.duration"),
	)

Functions are treated as values: WithName, WithoutArgument and WithArgumentAt return new
descriptors and never modify the receiver's argument slice.

# Execution Context

ExecutionContext exposes the optional time-series period and time-range duration of the query
being compiled. TimeWindow is the usual implementation:

	ctx := types.NewTimeWindow(start, end).WithPeriod(time.Minute)

# Configuration

	type Config struct {
		PercentileAggregationFunction string            // default PERCENTILETDIGEST
		ColumnMapping                 map[string]string // logical -> physical column
		StrictColumns                 bool              // reject unmapped columns
		LogLevel                      string            // DEBUG, INFO, WARN, ERROR, OFF
	}

LoadConfig and LoadConfigFile read YAML; unknown keys are rejected.
*/
package types
