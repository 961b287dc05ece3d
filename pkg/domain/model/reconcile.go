package model

import "sort"

// ReconcileResult classifies repository names. ToUpdate exists both remotely and locally,
// ToClone only remotely and Orphaned only locally.
type ReconcileResult struct {
	ToUpdate []string
	ToClone  []string
	Orphaned []string
}

// Reconcile diffs remote repository names against local directory names.
func Reconcile(remote, local []string) *ReconcileResult {
	remoteSet := toSet(remote)
	localSet := toSet(local)

	result := &ReconcileResult{
		ToUpdate: []string{},
		ToClone:  []string{},
		Orphaned: []string{},
	}

	for name := range remoteSet {
		if _, ok := localSet[name]; ok {
			result.ToUpdate = append(result.ToUpdate, name)
		} else {
			result.ToClone = append(result.ToClone, name)
		}
	}
	for name := range localSet {
		if _, ok := remoteSet[name]; !ok {
			result.Orphaned = append(result.Orphaned, name)
		}
	}

	sort.Strings(result.ToUpdate)
	sort.Strings(result.ToClone)
	sort.Strings(result.Orphaned)

	return result
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}
