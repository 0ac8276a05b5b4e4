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


// Package search ranks location-tagged records against free-text Hebrew
// queries.
//
// The Engine type implements a multi-signal scoring algorithm that combines:
//   - Loose substring matching on name, description and location fields
//   - Geography-aware boosting keyed on a region/settlement dataset
//   - A heuristic gate deciding when geographic context applies at all
//
// Matching items are scored, ranked and returned in descending relevance
// order. Every comparison runs on text normalized by the hebrew package.
package search
