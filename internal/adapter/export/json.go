package export

import (
	"encoding/json"

	"classroom/internal/domain"
)

// Payload is the JSON shape shared by the CLI and the browser bindings.
type Payload struct {
	Error   string              `json:"error,omitempty"`
	Empty   bool                `json:"empty"`
	Message string              `json:"message,omitempty"`
	Names   []string            `json:"names,omitempty"`
	Rows    []domain.Assignment `json:"rows,omitempty"`
	Pairs   []domain.Pair       `json:"pairs,omitempty"`
	CSV     string              `json:"csv,omitempty"`
}

func ColdCallPayload(res domain.ColdCallResult) Payload {
	if res.Empty {
		return Payload{Empty: true, Message: res.Message}
	}
	return Payload{Names: res.Names, CSV: ColdCallCSV(res.Names)}
}

func GroupingPayload(res domain.GroupingResult) Payload {
	if res.Empty {
		return Payload{Empty: true, Message: res.Message}
	}
	rows := res.Assignments()
	return Payload{Rows: rows, CSV: AssignmentsCSV(rows)}
}

func PeerReviewPayload(res domain.PeerReviewResult) Payload {
	if res.Empty {
		return Payload{Empty: true, Message: res.Message}
	}
	return Payload{Pairs: res.Pairs, CSV: PairsCSV(res.Pairs)}
}

func ErrorPayload(err error) Payload {
	return Payload{Error: err.Error()}
}

// JSON marshals p with indentation.
func (p Payload) JSON() (string, error) {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
