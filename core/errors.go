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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidItem indicates an Item failed validation.
	ErrInvalidItem = errors.New("invalid item")

	// ErrInvalidRegion indicates a Region failed validation.
	ErrInvalidRegion = errors.New("invalid region")

	// ErrEmptyItem indicates all of the item's text fields are empty.
	ErrEmptyItem = errors.New("item has no text content")

	// ErrEmptyRegionName indicates the region Name field is empty.
	ErrEmptyRegionName = errors.New("region name cannot be empty")
)
