package postgres

import "encoding/json"

func marshalDates(dates []string) []byte {
	if dates == nil {
		dates = []string{}
	}
	b, err := json.Marshal(dates)
	if err != nil {
		return []byte("[]")
	}
	return b
}

func unmarshalDates(raw []byte) []string {
	if len(raw) == 0 {
		return nil
	}
	var dates []string
	if err := json.Unmarshal(raw, &dates); err != nil {
		return nil
	}
	return dates
}

// limitArg turns a requested page size into a LIMIT argument. Zero (no limit
// requested) maps to NULL, which Postgres treats as unlimited; only an
// explicitly requested limit gets clamped. Aggregation callers such as the
// dashboard list with a zero limit and must see every row.
func limitArg(limit int) interface{} {
	if limit <= 0 {
		return nil
	}
	if limit > 100 {
		limit = 100
	}
	return limit
}
