package domain

import (
	"bytes"
)

// ReconcileResult is the outcome of merging declared records with a lock document.
type ReconcileResult struct {
	Records []DependencyRecord
	// LockSources names the lock documents that contributed. Nil when none did.
	LockSources []string
	// LockErr is set when the lock data could not be decoded. Records are
	// then returned unannotated.
	LockErr error
}

// Reconcile annotates records with the versions resolved in lockData.
//
// Empty or undecodable lock data leaves the records unchanged and the decode
// failure is reported in LockErr. The caller receives a copy either way and
// the input slice is never modified.
func Reconcile(records []DependencyRecord, lockFileName string, lockData []byte) ReconcileResult {
	if len(bytes.TrimSpace(lockData)) == 0 {
		return ReconcileResult{Records: cloneRecords(records)}
	}
	doc, err := ParseLockDocument(lockData)
	if err != nil {
		return ReconcileResult{Records: cloneRecords(records), LockErr: err}
	}
	return ApplyLockDocument(records, lockFileName, doc)
}

// ApplyLockDocument annotates records with the versions in doc.
//
// Every record whose name is locked receives LockedVersion. Locked names
// without a declaring record are appended in the order they first appear in
// the document, as transitive records whose current and locked values are the
// locked version.
func ApplyLockDocument(records []DependencyRecord, lockFileName string, doc *LockDocument) ReconcileResult {
	out := cloneRecords(records)
	if doc == nil {
		return ReconcileResult{Records: out}
	}

	locked := doc.Versions()
	declared := make(map[string]struct{}, len(out))
	for i := range out {
		declared[out[i].DepName] = struct{}{}
		if version, ok := locked[out[i].DepName]; ok {
			out[i].LockedVersion = version
		}
	}

	transitive := make([]string, 0, len(locked))
	for _, arch := range doc.Archs {
		for _, pkg := range arch.Packages {
			if _, ok := declared[pkg.Name]; ok {
				continue
			}
			declared[pkg.Name] = struct{}{}
			transitive = append(transitive, pkg.Name)
		}
	}

	for _, name := range transitive {
		out = append(out, DependencyRecord{
			Datasource:    DatasourceAPK,
			DepName:       name,
			CurrentValue:  locked[name],
			LockedVersion: locked[name],
			Versioning:    VersioningAPK,
		})
	}

	return ReconcileResult{Records: out, LockSources: []string{lockFileName}}
}
