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

import "fmt"

// ValidateItem validates an Item according to domain rules.
//
// Validation rules:
//   - At least one of Name, Description, Location must be non-empty
//
// NOT validated (every shape is a defined input for search):
//   - Types / Tags (may be empty or absent)
//   - ID (0 is valid before ingestion assigns a content hash)
func ValidateItem(item *Item) error {
	if item == nil {
		return fmt.Errorf("%w: item is nil", ErrInvalidItem)
	}

	if item.Name == "" && item.Description == "" && item.Location == "" {
		return fmt.Errorf("%w: %w", ErrInvalidItem, ErrEmptyItem)
	}

	return nil
}

// ValidateRegion validates a Region according to domain rules.
//
// Validation rules:
//   - Name must not be empty
//
// Settlements may be empty; a region with no settlements still participates
// in region-name matching.
func ValidateRegion(region *Region) error {
	if region == nil {
		return fmt.Errorf("%w: region is nil", ErrInvalidRegion)
	}

	if region.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRegion, ErrEmptyRegionName)
	}

	return nil
}
