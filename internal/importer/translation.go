// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package importer

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/taibuivan/canon/internal/core/bible"
)

/*
ReadTranslation loads a translation document from a JSON file.

Description: The file is either a full translation object carrying a
"data" member, or the bare document itself. Non-empty id, name and
abbreviation arguments override the values found in the file.
*/
func ReadTranslation(path, id, name, abbreviation string) (*bible.Translation, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("importer: read %s: %w", path, err)
	}
	return ParseTranslation(content, id, name, abbreviation)
}

// ParseTranslation is [ReadTranslation] over bytes already in memory.
func ParseTranslation(content []byte, id, name, abbreviation string) (*bible.Translation, error) {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(content, &members); err != nil {
		return nil, fmt.Errorf("importer: translation is not a JSON object: %w", err)
	}

	translation := &bible.Translation{}
	if data, wrapped := members["data"]; wrapped {
		if err := json.Unmarshal(content, translation); err != nil {
			return nil, fmt.Errorf("importer: decode translation: %w", err)
		}
		translation.Data = data
	} else {
		translation.Data = json.RawMessage(content)
	}

	if id != "" {
		translation.ID = id
	}
	if name != "" {
		translation.Name = name
	}
	if abbreviation != "" {
		translation.Abbreviation = abbreviation
	}
	return translation, nil
}
