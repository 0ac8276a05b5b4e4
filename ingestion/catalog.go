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


package ingestion

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/tavlit/mekomit/core"
)

// catalogItem is the JSON shape of an item record in a catalogue document.
// The type and tags fields accept either a single string or a list of
// strings; core.Labels handles both at decode time.
type catalogItem struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Location    string      `json:"location"`
	Types       core.Labels `json:"type"`
	Tags        core.Labels `json:"tags"`
}

// catalogRegion is the JSON shape of a region record.
type catalogRegion struct {
	Name        string   `json:"name"`
	Settlements []string `json:"settlements"`
}

type catalog struct {
	Items   []catalogItem   `json:"items"`
	Regions []catalogRegion `json:"regions"`
}

// ParseCatalog decodes a JSON catalogue document of the form
// {"items": [...], "regions": [...]}. Items with no name, description, or
// location are skipped with a warning rather than failing the parse.
// A nil logger falls back to slog.Default().
func ParseCatalog(r io.Reader, logger *slog.Logger) ([]*core.Item, []*core.Region, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var doc catalog
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	items := make([]*core.Item, 0, len(doc.Items))
	for i, entry := range doc.Items {
		item := &core.Item{
			Name:        entry.Name,
			Description: entry.Description,
			Location:    entry.Location,
			Types:       entry.Types,
			Tags:        entry.Tags,
		}
		if err := core.ValidateItem(item); err != nil {
			logger.Warn("skipping invalid catalogue item", "index", i, "err", err)
			continue
		}
		items = append(items, item)
	}

	regions := make([]*core.Region, 0, len(doc.Regions))
	for i, entry := range doc.Regions {
		region := &core.Region{
			Name:        entry.Name,
			Settlements: entry.Settlements,
		}
		if err := core.ValidateRegion(region); err != nil {
			logger.Warn("skipping invalid catalogue region", "index", i, "err", err)
			continue
		}
		regions = append(regions, region)
	}

	return items, regions, nil
}
