package profile

import (
	"encoding/json"

	"github.com/rotisserie/eris"
)

// ToJSONSafe renders the profile as a generically-typed document with every
// null, empty string, and empty list pruned, recursively. Storage and API
// responses both persist this form so that clients never see placeholder
// values for fields the application simply did not contain.
func (p *Profile) ToJSONSafe() (map[string]any, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, eris.Wrap(err, "marshaling profile")
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, eris.Wrap(err, "decoding profile document")
	}
	return pruneMap(doc), nil
}

func pruneMap(m map[string]any) map[string]any {
	for k, v := range m {
		cleaned, keep := pruneValue(v)
		if !keep {
			delete(m, k)
			continue
		}
		m[k] = cleaned
	}
	return m
}

func pruneValue(v any) (any, bool) {
	switch t := v.(type) {
	case nil:
		return nil, false
	case string:
		return t, t != ""
	case map[string]any:
		return pruneMap(t), true
	case []any:
		if len(t) == 0 {
			return nil, false
		}
		kept := make([]any, 0, len(t))
		for _, elem := range t {
			if cleaned, keep := pruneValue(elem); keep {
				kept = append(kept, cleaned)
			}
		}
		if len(kept) == 0 {
			return nil, false
		}
		return kept, true
	default:
		return v, true
	}
}
