package rules

import (
	"strings"

	"standby-builder/internal/core/domain"
)

// Severity decides whether a fired rule blocks a dispatch.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

// Rule is one cross-field check. Fires reports whether the rule applies to
// the given configuration; Message is what the operator sees when it does.
type Rule struct {
	Name     string
	Severity Severity
	Message  string
	Fires    func(cfg *domain.NormalizedConfig) bool
}

const (
	storageFilesystem     = "filesystem"
	methodActiveDuplicate = "active_duplicate"
)

// DefaultRules returns the standby rules in evaluation order. New rules go
// at the end of their severity group.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name:     "same-instance",
			Severity: SeverityError,
			Message:  "Primary and Standby cannot have the same SID on the same host",
			Fires: func(cfg *domain.NormalizedConfig) bool {
				return sameIdentity(cfg.Primary.SID, cfg.Standby.SID, false) &&
					sameIdentity(cfg.Primary.Host, cfg.Standby.Host, true)
			},
		},
		{
			Name:     "db-unique-name",
			Severity: SeverityError,
			Message:  "DB_UNIQUE_NAME must be different between primary and standby",
			Fires: func(cfg *domain.NormalizedConfig) bool {
				return sameIdentity(cfg.Primary.DBUniqueName, cfg.Standby.DBUniqueName, true)
			},
		},
		{
			Name:     "backup-location",
			Severity: SeverityError,
			Message:  "Backup location is required for backup-based duplicate",
			Fires: func(cfg *domain.NormalizedConfig) bool {
				method := strings.ToLower(cfg.ReplicationMethod.Method)
				return strings.Contains(method, "backup") && cfg.ReplicationMethod.BackupLocation == ""
			},
		},
		{
			Name:     "standby-data-dir",
			Severity: SeverityError,
			Message:  "Standby data directory is required for filesystem storage",
			Fires: func(cfg *domain.NormalizedConfig) bool {
				return strings.EqualFold(cfg.Standby.StorageType, storageFilesystem) && cfg.Standby.DataDir == ""
			},
		},
		{
			Name:     "pdb-list",
			Severity: SeverityWarning,
			Message:  "No PDB names specified: PDBs won't be opened on standby automatically",
			Fires: func(cfg *domain.NormalizedConfig) bool {
				return cfg.Primary.IsCDB && cfg.Primary.PDBList == ""
			},
		},
		{
			Name:     "active-duplicate-bandwidth",
			Severity: SeverityWarning,
			Message:  "Active duplicate requires network bandwidth: ensure sufficient bandwidth between primary and standby",
			Fires: func(cfg *domain.NormalizedConfig) bool {
				return strings.EqualFold(cfg.ReplicationMethod.Method, methodActiveDuplicate)
			},
		},
		{
			Name:     "file-name-convert",
			Severity: SeverityWarning,
			Message:  "Different storage types detected: DB_FILE_NAME_CONVERT is recommended",
			Fires: func(cfg *domain.NormalizedConfig) bool {
				return !strings.EqualFold(cfg.Primary.StorageType, cfg.Standby.StorageType) &&
					cfg.ReplicationMethod.DBFileNameConvert == ""
			},
		},
	}
}

// sameIdentity compares two identifiers. Blank values identify nothing and
// never collide; missing identities are reported by CheckRequired.
func sameIdentity(a, b string, foldCase bool) bool {
	if a == "" || b == "" {
		return false
	}
	if foldCase {
		return strings.EqualFold(a, b)
	}
	return a == b
}
