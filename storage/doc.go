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


// Package storage defines the repository interfaces for catalogue data and
// the binary serialization of domain records.
//
// The search engine itself is in-memory; repositories are the dataset
// sourcing collaborator that loads items and regions into it. Insertion
// order is preserved, because the engine's tie-breaking depends on dataset
// order.
package storage
