package normalizer

// Kind is the declared type of a field after coercion.
type Kind string

const (
	KindString Kind = "string"
	KindBool   Kind = "bool"
	KindInt    Kind = "int"
)

// Field is one row of the field table: where an input key lands in
// domain.NormalizedConfig, what type it has and what it defaults to.
type Field struct {
	Key     string   `json:"key"`
	Aliases []string `json:"aliases,omitempty"`
	Section string   `json:"section"`
	Name    string   `json:"name"`
	Kind    Kind     `json:"kind"`
	Default any      `json:"default"`
}

func str(key, section, name, def string) Field {
	return Field{Key: key, Section: section, Name: name, Kind: KindString, Default: def}
}

func integer(key, section, name string, def int) Field {
	return Field{Key: key, Section: section, Name: name, Kind: KindInt, Default: def}
}

func boolean(key, section, name string, def bool) Field {
	return Field{Key: key, Section: section, Name: name, Kind: KindBool, Default: def}
}

func (f Field) withAliases(aliases ...string) Field {
	f.Aliases = aliases
	return f
}

const (
	sectionPrimary       = "primary"
	sectionStandby       = "standby"
	sectionReplication   = "replicationMethod"
	sectionNetwork       = "network"
	sectionOptions       = "options"
	sectionNotifications = "notifications"
	sectionApprovalGates = "approvalGates"
)

const (
	defaultOracleBase = "/u01/app/oracle"
	defaultSSHPort    = 22
	defaultListener   = 1521
)

// fieldTable is the single source of every input key and default. Its rows
// must match the fields of domain.NormalizedConfig one to one; that is
// checked when the package is loaded.
var fieldTable = []Field{
	str("primary_host", sectionPrimary, "host", ""),
	integer("primary_ssh_port", sectionPrimary, "ssh_port", defaultSSHPort),
	str("primary_sid", sectionPrimary, "sid", ""),
	str("primary_db_unique_name", sectionPrimary, "db_unique_name", ""),
	integer("primary_listener_port", sectionPrimary, "listener_port", defaultListener),
	str("primary_oracle_home", sectionPrimary, "oracle_home", ""),
	str("primary_oracle_base", sectionPrimary, "oracle_base", defaultOracleBase),
	str("oracle_version", sectionPrimary, "oracle_version", "19c"),
	str("primary_db_role", sectionPrimary, "db_role", "single"),
	boolean("is_cdb", sectionPrimary, "is_cdb", false),
	str("pdb_list", sectionPrimary, "pdb_list", ""),
	str("primary_storage", sectionPrimary, "storage_type", "asm"),
	str("primary_asm_data", sectionPrimary, "asm_dg_data", "+DATA"),
	str("primary_asm_fra", sectionPrimary, "asm_dg_fra", "+FRA"),
	str("primary_data_dir", sectionPrimary, "data_dir", ""),
	str("primary_ssh_user", sectionPrimary, "ssh_user", "oracle"),

	str("standby_host", sectionStandby, "host", ""),
	integer("standby_ssh_port", sectionStandby, "ssh_port", defaultSSHPort),
	str("standby_sid", sectionStandby, "sid", ""),
	str("standby_db_unique_name", sectionStandby, "db_unique_name", ""),
	integer("standby_listener_port", sectionStandby, "listener_port", defaultListener),
	str("standby_oracle_home", sectionStandby, "oracle_home", ""),
	str("standby_oracle_base", sectionStandby, "oracle_base", defaultOracleBase),
	str("standby_db_role", sectionStandby, "db_role", "single"),
	str("standby_storage", sectionStandby, "storage_type", "asm"),
	str("standby_asm_data", sectionStandby, "asm_dg_data", "+DATA"),
	str("standby_asm_fra", sectionStandby, "asm_dg_fra", "+FRA"),
	str("standby_data_dir", sectionStandby, "data_dir", ""),
	str("standby_fra_dir", sectionStandby, "fra_dir", ""),
	str("standby_ssh_user", sectionStandby, "ssh_user", "oracle"),

	str("rman_method", sectionReplication, "method", "active_duplicate"),
	integer("rman_parallelism", sectionReplication, "parallelism", 4),
	str("rman_compression", sectionReplication, "compression", "NONE"),
	integer("rman_section_size", sectionReplication, "section_size_mb", 0).withAliases("rman_section_size_mb"),
	str("rman_backup_location", sectionReplication, "backup_location", ""),
	str("rman_backup_tag", sectionReplication, "backup_tag", ""),
	str("db_file_name_convert", sectionReplication, "db_file_name_convert", ""),
	str("log_file_name_convert", sectionReplication, "log_file_name_convert", ""),
	boolean("nofilenamecheck", sectionReplication, "nofilenamecheck", true),
	str("rman_additional", sectionReplication, "additional_commands", ""),

	str("redo_transport", sectionNetwork, "redo_transport", "ASYNC"),
	integer("standby_redo_groups", sectionNetwork, "standby_redo_groups", 4),
	integer("standby_redo_size", sectionNetwork, "standby_redo_size_mb", 200).withAliases("standby_redo_size_mb"),
	integer("net_timeout", sectionNetwork, "net_timeout", 30),

	boolean("force_logging", sectionOptions, "force_logging", true),
	boolean("flashback", sectionOptions, "flashback", true),
	boolean("archivelog_check", sectionOptions, "archivelog_check", true),
	boolean("standby_file_mgmt", sectionOptions, "standby_file_mgmt", true),
	boolean("start_mrp", sectionOptions, "start_mrp", true),
	boolean("open_readonly", sectionOptions, "open_readonly", false),
	boolean("real_time_apply", sectionOptions, "real_time_apply", false),
	str("protection_mode", sectionOptions, "protection_mode", "MAX_PERFORMANCE"),

	str("email_to", sectionNotifications, "email_to", ""),
	str("smtp_server", sectionNotifications, "smtp_server", ""),
	str("slack_webhook", sectionNotifications, "slack_webhook", ""),

	// Gates default to enabled: skipping a manual confirmation must be asked for.
	boolean("gate_precheck", sectionApprovalGates, "gate_precheck", true),
	boolean("gate_primary", sectionApprovalGates, "gate_primary", true),
	boolean("gate_rman", sectionApprovalGates, "gate_rman", true),
	boolean("gate_golive", sectionApprovalGates, "gate_golive", true),
}

// Fields returns a copy of the field table in declaration order.
func Fields() []Field {
	out := make([]Field, len(fieldTable))
	copy(out, fieldTable)
	return out
}
