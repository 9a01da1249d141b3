package model

// Status is the fetch/load state of a resource.
type Status string

const (
	StatusNotFetched Status = "not-fetched"
	StatusFetching   Status = "fetching"
	StatusSuccess    Status = "success"
	StatusError      Status = "error"
)

// CombineStatus reduces a collection of statuses to one summary status.
// Precedence: any error wins, then fetching, then not-fetched; a group is
// success only when every member is success. An empty collection reduces to
// success, so callers that care about "no members at all" must check for that
// before combining.
func CombineStatus(statuses ...Status) Status {
	anyFetching := false
	anyNotFetched := false

	for _, s := range statuses {
		switch s {
		case StatusError:
			return StatusError
		case StatusFetching:
			anyFetching = true
		case StatusNotFetched:
			anyNotFetched = true
		}
	}

	if anyFetching {
		return StatusFetching
	}
	if anyNotFetched {
		return StatusNotFetched
	}
	return StatusSuccess
}
