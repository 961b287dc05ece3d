package model

// OperationError is a failure of a single repository operation. It never aborts a run.
type OperationError struct {
	Subject string
	Message string
}

func (x OperationError) String() string {
	if x.Subject == "" {
		return x.Message
	}
	return x.Subject + ": " + x.Message
}

// SyncResult summarizes a synchronization of the sync root.
type SyncResult struct {
	Updated  []string
	Cloned   []string
	Orphaned []string
	Errors   []OperationError
}

// CommitCount is the number of non-merge commits in a period over all local clones.
type CommitCount struct {
	Period CommitPeriod
	Total  int
	Errors []OperationError
}

type SearchCodeInput struct {
	Pattern string
	Dir     string
}
