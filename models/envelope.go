package models

import "encoding/json"

// ListEnvelope absorbs the two list shapes the platform serves: a bare JSON
// array, or a paginated {"results": [...]} wrapper. Either way the decoded
// items come out as a plain ordered slice; nothing past the API boundary
// sees the raw shape.
type ListEnvelope[T any] struct {
	Results []T
	Count   int
}

func (e *ListEnvelope[T]) UnmarshalJSON(data []byte) error {
	var plain []T
	if err := json.Unmarshal(data, &plain); err == nil {
		e.Results = plain
		e.Count = len(plain)
		return nil
	}

	var paginated struct {
		Count   int `json:"count"`
		Results []T `json:"results"`
	}
	if err := json.Unmarshal(data, &paginated); err != nil {
		return err
	}
	e.Results = paginated.Results
	e.Count = paginated.Count
	if e.Count == 0 {
		e.Count = len(e.Results)
	}
	return nil
}
