package shamir

import (
	"encoding/json"
	"fmt"
)

// ParseDocument parses the JSON testcase format:
//
//	{
//	  "keys": {"n": 4, "k": 3},
//	  "1": {"base": "10", "value": "4"},
//	  "2": {"base": 2, "value": "111"},
//	  ...
//	  "provided_shares": ["1", "2"]
//	}
//
// Every top-level entry other than "keys" and the optional
// "provided_shares" list is a share, keyed by its decimal x coordinate.
// Bases may be given as JSON strings or numbers. The raw document shape is
// fully resolved here; [Solve] only ever sees the typed Config and share
// mapping.
func ParseDocument(data []byte) (Config, map[string]EncodedShare, error) {

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return Config{}, nil, fmt.Errorf("cannot ParseDocument: %w", err)
	}

	keysMsg, ok := raw["keys"]
	if !ok {
		return Config{}, nil, fmt.Errorf(`cannot ParseDocument: missing "keys" entry`)
	}

	var cfg Config
	if err := json.Unmarshal(keysMsg, &cfg); err != nil {
		return Config{}, nil, fmt.Errorf(`cannot ParseDocument: invalid "keys" entry: %w`, err)
	}

	if msg, ok := raw["provided_shares"]; ok {
		if err := json.Unmarshal(msg, &cfg.Use); err != nil {
			return Config{}, nil, fmt.Errorf(`cannot ParseDocument: invalid "provided_shares" entry: %w`, err)
		}
	}

	shares := make(map[string]EncodedShare, len(raw))

	for id, msg := range raw {

		if id == "keys" || id == "provided_shares" {
			continue
		}

		var rec struct {
			Base  flexString `json:"base"`
			Value string     `json:"value"`
		}
		if err := json.Unmarshal(msg, &rec); err != nil {
			return Config{}, nil, fmt.Errorf("cannot ParseDocument: share %q: %w", id, err)
		}

		shares[id] = EncodedShare{Base: string(rec.Base), Value: rec.Value}
	}

	return cfg, shares, nil
}

// flexString decodes a JSON string or number into its literal text.
type flexString string

func (s *flexString) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = flexString(v)
		return nil
	}
	*s = flexString(data)
	return nil
}
