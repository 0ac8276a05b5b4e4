// Copyright 2026 Tavlit Labs
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


package search

import "errors"

var (
	// ErrEmptyPrefixWord is returned when a configured locality prefix word
	// normalizes to the empty string.
	ErrEmptyPrefixWord = errors.New("prefix word cannot be empty")

	// ErrEmptyStopKeyword is returned when a configured stop keyword
	// normalizes to the empty string.
	ErrEmptyStopKeyword = errors.New("stop keyword cannot be empty")
)
